package cyclo

import (
	"math/big"
	"testing"
)

func polyEqual(t *testing.T, got, want polynomial) {
	t.Helper()
	got, want = got.trim(), want.trim()
	if len(got) != len(want) {
		t.Fatalf("degree mismatch: got %v (deg %d), want %v (deg %d)", got, got.degree(), want, want.degree())
	}
	for i := range got {
		if got[i].Cmp(want[i]) != 0 {
			t.Fatalf("coefficient %d mismatch: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCyclotomicPolyKnownCases(t *testing.T) {
	polyEqual(t, cyclotomicPoly(1), ratPoly(-1, 1))          // x - 1
	polyEqual(t, cyclotomicPoly(2), ratPoly(1, 1))            // x + 1
	polyEqual(t, cyclotomicPoly(3), ratPoly(1, 1, 1))         // x^2+x+1
	polyEqual(t, cyclotomicPoly(4), ratPoly(1, 0, 1))         // x^2+1
	polyEqual(t, cyclotomicPoly(6), ratPoly(1, -1, 1))        // x^2-x+1
	polyEqual(t, cyclotomicPoly(5), ratPoly(1, 1, 1, 1, 1))   // x^4+x^3+x^2+x+1
}

func TestTotientMatchesCyclotomicDegree(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 5, 6, 8, 12, 18, 24, 30} {
		got := Totient(n)
		want := cyclotomicPoly(n).degree()
		if got != want {
			t.Errorf("Totient(%d) = %d, want %d (matching Phi_%d's degree)", n, got, want, n)
		}
	}
}

func TestPolyDivModExactDivision(t *testing.T) {
	// (x-1)(x+1) = x^2-1, dividing back by (x-1) must leave zero remainder.
	a := ratPoly(-1, 0, 1) // x^2 - 1
	b := ratPoly(-1, 1)    // x - 1
	q, r := polyDivMod(a, b)
	polyEqual(t, q, ratPoly(1, 1)) // x + 1
	if r.degree() >= 0 {
		t.Errorf("expected zero remainder, got %v", r)
	}
}

func TestRatPolyHelper(t *testing.T) {
	p := ratPoly(2, 0, -3)
	if p[0].Cmp(big.NewRat(2, 1)) != 0 || p[2].Cmp(big.NewRat(-3, 1)) != 0 {
		t.Errorf("unexpected coefficients: %v", p)
	}
}
