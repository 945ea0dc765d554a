// Package cyclo implements the domain-specific algebraic-number engine
// E3 needs: exact arithmetic in a cyclotomic field
// Q(ζ_N), the field generated by an N-th root of unity, built directly on
// math/big.Rat. No computer-algebra or algebraic-number library appears
// anywhere in the retrieved example pack, so this package is written from
// the field axioms up (see DESIGN.md for the justification).
package cyclo

import (
	"fmt"
	"math/big"
	"sync"
)

// polynomial is a dense coefficient vector, lowest degree first.
type polynomial []*big.Rat

func ratPoly(coeffs ...int64) polynomial {
	p := make(polynomial, len(coeffs))
	for i, c := range coeffs {
		p[i] = big.NewRat(c, 1)
	}
	return p
}

func (p polynomial) degree() int {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i].Sign() != 0 {
			return i
		}
	}
	return -1
}

func (p polynomial) trim() polynomial {
	d := p.degree()
	if d < 0 {
		return polynomial{}
	}
	return p[:d+1]
}

func polyMul(a, b polynomial) polynomial {
	if len(a) == 0 || len(b) == 0 {
		return polynomial{}
	}
	out := make(polynomial, len(a)+len(b)-1)
	for i := range out {
		out[i] = new(big.Rat)
	}
	for i, ai := range a {
		if ai.Sign() == 0 {
			continue
		}
		for j, bj := range b {
			if bj.Sign() == 0 {
				continue
			}
			term := new(big.Rat).Mul(ai, bj)
			out[i+j].Add(out[i+j], term)
		}
	}
	return out.trim()
}

// polyDivMod divides a by monic b, returning quotient and remainder. b must
// be monic (leading coefficient 1); every division this package performs
// (cyclotomic polynomials, and x^n-1 by a product of them) satisfies this.
func polyDivMod(a, b polynomial) (q, r polynomial) {
	b = b.trim()
	bd := b.degree()
	if bd < 0 {
		panic("cyclo: division by the zero polynomial")
	}
	if b[bd].Cmp(big.NewRat(1, 1)) != 0 {
		panic("cyclo: polyDivMod requires a monic divisor")
	}

	rem := make(polynomial, len(a))
	for i, c := range a {
		rem[i] = new(big.Rat).Set(c)
	}
	rem = rem.trim()

	qCoeffs := make([]*big.Rat, 0)
	for rem.degree() >= bd {
		rd := rem.degree()
		shift := rd - bd
		coef := new(big.Rat).Set(rem[rd])

		for len(qCoeffs) <= shift {
			qCoeffs = append(qCoeffs, new(big.Rat))
		}
		qCoeffs[shift].Add(qCoeffs[shift], coef)

		for i, bc := range b {
			term := new(big.Rat).Mul(coef, bc)
			rem[shift+i].Sub(rem[shift+i], term)
		}
		rem = rem.trim()
	}
	return polynomial(qCoeffs).trim(), rem
}

func polySub(a, b polynomial) polynomial {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make(polynomial, n)
	for i := 0; i < n; i++ {
		out[i] = new(big.Rat)
		if i < len(a) {
			out[i].Add(out[i], a[i])
		}
		if i < len(b) {
			out[i].Sub(out[i], b[i])
		}
	}
	return out.trim()
}

var (
	cycloMu    sync.RWMutex
	cycloCache = make(map[int]polynomial)
)

// divisorsBelow returns every divisor of n strictly less than n.
func divisorsBelow(n int) []int {
	var out []int
	for d := 1; d < n; d++ {
		if n%d == 0 {
			out = append(out, d)
		}
	}
	return out
}

// cyclotomicPoly returns Φ_n(x), the n-th cyclotomic polynomial, computed
// via Φ_n(x) = (x^n - 1) / ∏_{d|n, d<n} Φ_d(x) and cached per n (// "cache simplified symbolic constants per n-gon size", applied here to
// the cyclotomic polynomials that underlie every per-n-gon constant).
func cyclotomicPoly(n int) polynomial {
	if n < 1 {
		panic(fmt.Sprintf("cyclo: invalid cyclotomic index %d", n))
	}

	cycloMu.RLock()
	if p, ok := cycloCache[n]; ok {
		cycloMu.RUnlock()
		return p
	}
	cycloMu.RUnlock()

	var result polynomial
	if n == 1 {
		result = ratPoly(-1, 1) // x - 1
	} else {
		xn1 := make(polynomial, n+1)
		for i := range xn1 {
			xn1[i] = new(big.Rat)
		}
		xn1[0] = big.NewRat(-1, 1)
		xn1[n] = big.NewRat(1, 1)

		denom := ratPoly(1) // the constant polynomial 1
		for _, d := range divisorsBelow(n) {
			denom = polyMul(denom, cyclotomicPoly(d))
		}
		q, r := polyDivMod(xn1, denom)
		if r.degree() >= 0 {
			panic(fmt.Sprintf("cyclo: non-zero remainder computing Phi_%d", n))
		}
		result = q
	}

	cycloMu.Lock()
	defer cycloMu.Unlock()
	cycloCache[n] = result
	return result
}

// Totient returns Euler's totient of n, the degree of Φ_n.
func Totient(n int) int {
	result := n
	m := n
	for p := 2; p*p <= m; p++ {
		if m%p == 0 {
			for m%p == 0 {
				m /= p
			}
			result -= result / p
		}
	}
	if m > 1 {
		result -= result / m
	}
	return result
}
