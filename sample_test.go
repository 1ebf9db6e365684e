package obskit

import (
	"math"
	"testing"
)

func TestStats(t *testing.T) {
	var s Stats
	for _, x := range []float64{2, 4, 4, 4, 5, 5, 7, 9} {
		s.Add(x)
	}

	if got := s.Mean(); got != 5.0 {
		t.Errorf("Mean = %g, want 5", got)
	}
	// unbiased variance of the classic sample: Σ(x-5)² = 32, n-1 = 7
	if got, want := s.Variance(), 32.0/7.0; math.Abs(got-want) > 1e-12 {
		t.Errorf("Variance = %g, want %g", got, want)
	}
	if got, want := s.StdErr(), s.Stddev()/math.Sqrt(8); math.Abs(got-want) > 1e-12 {
		t.Errorf("StdErr = %g, want %g", got, want)
	}
}

func TestStats_Degenerate(t *testing.T) {
	var s Stats
	if s.Mean() != 0 || s.Variance() != 0 || s.StdErr() != 0 {
		t.Error("empty accumulator must report zeros")
	}

	s.Add(3)
	if s.Variance() != 0 {
		t.Error("a single sample has no spread")
	}
}

func TestFromSamples(t *testing.T) {
	q := FromSamples([]float64{2, 4, 4, 4, 5, 5, 7, 9})

	if q.Value() != 5.0 {
		t.Errorf("value = %g, want 5", q.Value())
	}
	if want := math.Sqrt(32.0 / 7.0); math.Abs(q.Error()-want) > 1e-12 {
		t.Errorf("error = %g, want %g (sample stddev)", q.Error(), want)
	}
	if q.Identity().IsEmpty() {
		t.Error("a measured quantity must carry a fresh identity")
	}
}

func TestFromSamples_Constant(t *testing.T) {
	q := FromSamples([]float64{3, 3, 3})
	if q.Error() != 0 {
		t.Errorf("constant series error = %g, want 0", q.Error())
	}
	if !q.Identity().IsEmpty() {
		t.Error("zero-error quantity must have the empty identity")
	}
}

func TestMean(t *testing.T) {
	cfg := DefaultAssertionConfig()
	a := New(2.0, 1.0)

	independent := Mean(a, a.Copy(), a.Copy())
	AssertQuantity(t, independent, 2.0, math.Sqrt(3)/3, cfg)

	aliased := Mean(a, a.DeepCopy(), a.DeepCopy())
	AssertQuantity(t, aliased, 2.0, 1.0, cfg)

	single := Mean(a)
	AssertQuantity(t, single, 2.0, 1.0, cfg)

	empty := Mean()
	if empty.Value() != 0 || empty.Error() != 0 {
		t.Errorf("Mean() = %v, want the zero Quantity", empty)
	}
}
