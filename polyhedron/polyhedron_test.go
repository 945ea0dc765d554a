package polyhedron

import (
	"math"
	"testing"
)

func TestInradiusCircumradiusTriangle(t *testing.T) {
	// A unit equilateral triangle has well-known exact apothem/circumradius.
	const n = 3
	wantInradius := 1.0 / (2.0 * math.Sqrt(3))
	wantCircumradius := 1.0 / math.Sqrt(3)

	if got := Inradius(n); math.Abs(got-wantInradius) > 1e-9 {
		t.Errorf("Inradius(3) = %v, want %v", got, wantInradius)
	}
	if got := Circumradius(n); math.Abs(got-wantCircumradius) > 1e-9 {
		t.Errorf("Circumradius(3) = %v, want %v", got, wantCircumradius)
	}
}

func TestRadiiPositive(t *testing.T) {
	for n := 3; n <= 20; n++ {
		if Inradius(n) <= 0 {
			t.Errorf("Inradius(%d) not positive", n)
		}
		if Circumradius(n) <= 0 {
			t.Errorf("Circumradius(%d) not positive", n)
		}
		if Circumradius(n) <= Inradius(n) {
			t.Errorf("Circumradius(%d) should exceed Inradius(%d)", n, n)
		}
	}
}

func TestPolyhedronRadiusCache(t *testing.T) {
	p := Cube()
	a := p.Inradius(4)
	b := p.Inradius(4)
	if a != b {
		t.Errorf("cached Inradius differs across calls: %v != %v", a, b)
	}
	if a != Inradius(4) {
		t.Errorf("cached Inradius(4) = %v, want %v", a, Inradius(4))
	}
}

func TestNewRejectsShapeMismatch(t *testing.T) {
	_, err := New(2, []int{3}, [][]int{{0, 1, 2}}, [][]int{{1, 1, 1}})
	if err == nil {
		t.Fatal("expected an error for mismatched table lengths")
	}
}

func TestSharesEdge(t *testing.T) {
	p := Cube()
	top, bottomSide := 0, 2
	if !p.SharesEdge(top, bottomSide) {
		t.Errorf("expected face 0 and face 2 to be adjacent on the cube")
	}
	if p.SharesEdge(0, 1) {
		t.Errorf("top and bottom caps of a prism should not be adjacent")
	}
}
