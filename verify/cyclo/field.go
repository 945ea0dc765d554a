package cyclo

import (
	"fmt"
	"math"
	"math/big"
	"sync"
)

// Elem is an element of the cyclotomic field Q(ζ_N), represented in the
// power basis 1, ζ_N, ζ_N², …, ζ_N^(deg-1) where deg = Totient(N) and ζ_N
// is a primitive N-th root of unity. Coeffs always has length Totient(N).
//
// Two Elems may only be combined if they share the same N: callers pick
// one N per verification instance (the lcm of 4 and 2·n_f over every face
// gon n_f appearing along the path, ) and embed every quantity into
// it before combining. Mixing Ns is a programming error, not a data error.
type Elem struct {
	N      int
	Coeffs []*big.Rat
}

func ratZero() *big.Rat { return new(big.Rat) }

// Zero returns the additive identity of Q(ζ_N).
func Zero(N int) Elem {
	c := make([]*big.Rat, Totient(N))
	for i := range c {
		c[i] = ratZero()
	}
	return Elem{N: N, Coeffs: c}
}

// One returns the multiplicative identity of Q(ζ_N).
func One(N int) Elem {
	e := Zero(N)
	e.Coeffs[0] = big.NewRat(1, 1)
	return e
}

// FromRat embeds a rational constant into Q(ζ_N).
func FromRat(N int, r *big.Rat) Elem {
	e := Zero(N)
	e.Coeffs[0] = new(big.Rat).Set(r)
	return e
}

// FromInt embeds an integer constant into Q(ζ_N).
func FromInt(N int, v int64) Elem {
	return FromRat(N, big.NewRat(v, 1))
}

var (
	powerMu    sync.RWMutex
	powerCache = make(map[int][]Elem) // powerCache[N][k] = x^k mod Phi_N(x), k = 0..N-1
)

func powerBasis(N int) []Elem {
	powerMu.RLock()
	if table, ok := powerCache[N]; ok {
		powerMu.RUnlock()
		return table
	}
	powerMu.RUnlock()

	phi := cyclotomicPoly(N)
	deg := Totient(N)
	table := make([]Elem, N)
	for k := 0; k < N; k++ {
		xk := make(polynomial, k+1)
		for i := range xk {
			xk[i] = ratZero()
		}
		xk[k] = big.NewRat(1, 1)

		_, rem := polyDivMod(xk, phi)
		coeffs := make([]*big.Rat, deg)
		for i := range coeffs {
			if i < len(rem) {
				coeffs[i] = new(big.Rat).Set(rem[i])
			} else {
				coeffs[i] = ratZero()
			}
		}
		table[k] = Elem{N: N, Coeffs: coeffs}
	}

	powerMu.Lock()
	defer powerMu.Unlock()
	powerCache[N] = table
	return table
}

// Root returns ζ_N^k, for any integer k (reduced mod N internally, since
// ζ_N^N = 1 always holds modulo Φ_N).
func Root(N, k int) Elem {
	table := powerBasis(N)
	idx := k % N
	if idx < 0 {
		idx += N
	}
	return table[idx]
}

func (a Elem) requireSameField(b Elem) {
	if a.N != b.N {
		panic(fmt.Sprintf("cyclo: mismatched fields Q(zeta_%d) and Q(zeta_%d)", a.N, b.N))
	}
}

// Add returns a+b.
func (a Elem) Add(b Elem) Elem {
	a.requireSameField(b)
	out := Zero(a.N)
	for i := range out.Coeffs {
		out.Coeffs[i].Add(a.Coeffs[i], b.Coeffs[i])
	}
	return out
}

// Sub returns a-b.
func (a Elem) Sub(b Elem) Elem {
	a.requireSameField(b)
	out := Zero(a.N)
	for i := range out.Coeffs {
		out.Coeffs[i].Sub(a.Coeffs[i], b.Coeffs[i])
	}
	return out
}

// Neg returns -a.
func (a Elem) Neg() Elem {
	out := Zero(a.N)
	for i := range out.Coeffs {
		out.Coeffs[i].Neg(a.Coeffs[i])
	}
	return out
}

// Scale returns a scaled by the rational r.
func (a Elem) Scale(r *big.Rat) Elem {
	out := Zero(a.N)
	for i := range out.Coeffs {
		out.Coeffs[i].Mul(a.Coeffs[i], r)
	}
	return out
}

// Mul returns a*b, via raw polynomial convolution reduced through the
// cached power-basis table.
func (a Elem) Mul(b Elem) Elem {
	a.requireSameField(b)
	raw := polyMul(polynomial(a.Coeffs), polynomial(b.Coeffs))

	out := Zero(a.N)
	table := powerBasis(a.N)
	for k, c := range raw {
		if c.Sign() == 0 {
			continue
		}
		idx := k % a.N
		basis := table[idx]
		for i := range out.Coeffs {
			term := new(big.Rat).Mul(c, basis.Coeffs[i])
			out.Coeffs[i].Add(out.Coeffs[i], term)
		}
	}
	return out
}

// IsZero reports whether a is exactly the additive identity.
func (a Elem) IsZero() bool {
	for _, c := range a.Coeffs {
		if c.Sign() != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether a and b are exactly the same field element.
func (a Elem) Equal(b Elem) bool {
	a.requireSameField(b)
	return a.Sub(b).IsZero()
}

// Inverse returns a's multiplicative inverse, computed by solving
// M·x = e_0 where M is the matrix of the regular representation of
// multiplication-by-a (column j is a*basis_j), via exact Gaussian
// elimination over big.Rat. Every nonzero element of a field has an
// inverse; a zero element returns an error.
func (a Elem) Inverse() (Elem, error) {
	if a.IsZero() {
		return Elem{}, fmt.Errorf("cyclo: cannot invert the zero element of Q(zeta_%d)", a.N)
	}
	deg := len(a.Coeffs)
	table := powerBasis(a.N)

	// Build the augmented matrix [M | e_0].
	m := make([][]*big.Rat, deg)
	for i := range m {
		m[i] = make([]*big.Rat, deg+1)
		for j := range m[i] {
			m[i][j] = ratZero()
		}
	}
	for j := 0; j < deg; j++ {
		col := a.Mul(table[j])
		for i := 0; i < deg; i++ {
			m[i][j].Set(col.Coeffs[i])
		}
	}
	m[0][deg] = big.NewRat(1, 1)

	// Gaussian elimination with exact rational pivoting.
	for col := 0; col < deg; col++ {
		pivot := -1
		for row := col; row < deg; row++ {
			if m[row][col].Sign() != 0 {
				pivot = row
				break
			}
		}
		if pivot < 0 {
			return Elem{}, fmt.Errorf("cyclo: singular regular representation for a nonzero field element (this is a bug)")
		}
		m[col], m[pivot] = m[pivot], m[col]

		inv := new(big.Rat).Inv(m[col][col])
		for k := col; k <= deg; k++ {
			m[col][k].Mul(m[col][k], inv)
		}
		for row := 0; row < deg; row++ {
			if row == col || m[row][col].Sign() == 0 {
				continue
			}
			factor := new(big.Rat).Set(m[row][col])
			for k := col; k <= deg; k++ {
				term := new(big.Rat).Mul(factor, m[col][k])
				m[row][k].Sub(m[row][k], term)
			}
		}
	}

	coeffs := make([]*big.Rat, deg)
	for i := 0; i < deg; i++ {
		coeffs[i] = new(big.Rat).Set(m[i][deg])
	}
	return Elem{N: a.N, Coeffs: coeffs}, nil
}

// Div returns a/b.
func (a Elem) Div(b Elem) (Elem, error) {
	inv, err := b.Inverse()
	if err != nil {
		return Elem{}, err
	}
	return a.Mul(inv), nil
}

// Conj returns the complex conjugate of a: the Galois automorphism
// ζ_N ↦ ζ_N^(-1), exact.
func Conj(a Elem) Elem {
	table := powerBasis(a.N)
	out := Zero(a.N)
	for k, c := range a.Coeffs {
		if c.Sign() == 0 {
			continue
		}
		negK := ((-k)%a.N + a.N) % a.N
		basis := table[negK]
		for i := range out.Coeffs {
			term := new(big.Rat).Mul(c, basis.Coeffs[i])
			out.Coeffs[i].Add(out.Coeffs[i], term)
		}
	}
	return out
}

// Re returns (a+conj(a))/2, always fixed by Conj — i.e. a genuine real
// number of the field's maximal real subfield, whatever a was.
func Re(a Elem) Elem {
	return a.Add(Conj(a)).Scale(big.NewRat(1, 2))
}

// Im returns (a-conj(a))/(2i), likewise always real-valued regardless of
// a. Requires N divisible by 4 so that i = ζ_N^(N/4) is exactly
// representable; every N this package is asked to use in this module is
// constructed that way (per-instance N always includes the
// factor 4 needed for the imaginary unit).
func Im(a Elem) Elem {
	if a.N%4 != 0 {
		panic(fmt.Sprintf("cyclo: Im requires 4 | N, got N=%d", a.N))
	}
	negI := Root(a.N, 3*a.N/4)
	return a.Sub(Conj(a)).Mul(negI).Scale(big.NewRat(1, 2))
}

// Eval returns a numeric complex128 approximation of a, substituting
// ζ_N = exp(2πi/N). Used only for the final strict-sign / ordering
// decisions the exact field arithmetic itself cannot make (see
// DESIGN.md): every equality and boundary-coincidence test in this
// package is decided exactly via IsZero/Equal, never via Eval.
func (a Elem) Eval() complex128 {
	var sum complex128
	for k, c := range a.Coeffs {
		if c.Sign() == 0 {
			continue
		}
		angle := 2 * math.Pi * float64(k) / float64(a.N)
		zk := complex(math.Cos(angle), math.Sin(angle))
		cf, _ := c.Float64()
		sum += complex(cf, 0) * zk
	}
	return sum
}
