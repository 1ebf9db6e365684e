package obskit

import "math"

// Stats accumulates count, sum and sum of squares over a sample stream.
// It is the cheap single-pass way to get a mean and a spread without
// holding the samples.
type Stats struct {
	Count int
	Sum   float64
	SumSq float64
}

// Add records one sample.
func (s *Stats) Add(x float64) {
	s.Count++
	s.Sum += x
	s.SumSq += x * x
}

// Mean returns the sample mean, 0 for an empty accumulator.
func (s *Stats) Mean() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.Sum / float64(s.Count)
}

// Variance returns the unbiased sample variance. Fewer than two samples
// yield 0, and accumulated rounding that would drive the raw moment
// negative is clamped to 0.
func (s *Stats) Variance() float64 {
	if s.Count < 2 {
		return 0
	}
	mean := s.Mean()
	v := s.SumSq - float64(s.Count)*mean*mean
	if v < 0 {
		return 0
	}
	return v / float64(s.Count-1)
}

// Stddev returns the sample standard deviation.
func (s *Stats) Stddev() float64 {
	return math.Sqrt(s.Variance())
}

// StdErr returns the standard error of the mean, Stddev/√n.
func (s *Stats) StdErr() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.Stddev() / math.Sqrt(float64(s.Count))
}

// Quantity returns the accumulated observable as a Quantity: mean with the
// sample standard deviation as its error and a fresh identity.
func (s *Stats) Quantity() Quantity {
	return New(s.Mean(), s.Stddev())
}

// FromSamples builds a Quantity straight from raw observations: the value
// is the sample mean, the error is the sample standard deviation (the
// spread of the data, not the standard error of the mean — use
// Stats.StdErr for that). A constant series yields zero error and hence
// the empty identity.
func FromSamples(samples []float64) Quantity {
	var s Stats
	for _, x := range samples {
		s.Add(x)
	}
	return s.Quantity()
}

// Mean averages quantities with full error propagation: the fold of Add
// divided by the count. For n independent measurements of equal error e
// the result's error is e/√n; for n aliases of the SAME measurement it
// stays e, since summing a with itself is fully correlated.
//
// The zero Quantity is returned for an empty argument list.
func Mean(qs ...Quantity) Quantity {
	if len(qs) == 0 {
		return Quantity{}
	}
	sum := qs[0]
	for _, q := range qs[1:] {
		sum = sum.Add(q)
	}
	return sum.Div(len(qs))
}
