package sample

import (
	"math/rand"
	"testing"
)

func TestDraw_Reproducible(t *testing.T) {
	a := Draw(rand.New(rand.NewSource(42)), 1000, 150)
	b := Draw(rand.New(rand.NewSource(42)), 1000, 150)

	if len(a) != 150 || len(b) != 150 {
		t.Fatalf("lens = %d, %d, want 150", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("draw %d differs: %d vs %d", i, a[i], b[i])
		}
	}
}

func TestDraw_SeedChangesSequence(t *testing.T) {
	a := Draw(rand.New(rand.NewSource(1)), 1000, 150)
	b := Draw(rand.New(rand.NewSource(2)), 1000, 150)

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical sequences")
	}
}

func TestDraw_InRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, n := range []int{1, 3, 151, 10000} {
		for _, idx := range Draw(rng, n, 150) {
			if idx < 0 || idx >= n {
				t.Fatalf("index %d out of range [0,%d)", idx, n)
			}
		}
	}
}

func TestDraw_DegenerateArgs(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	if got := Draw(rng, 0, 150); got != nil {
		t.Errorf("Draw(n=0) = %v, want nil", got)
	}
	if got := Draw(rng, 10, 0); got != nil {
		t.Errorf("Draw(k=0) = %v, want nil", got)
	}
}
