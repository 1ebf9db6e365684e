package obskit

import "github.com/cockroachdb/errors"

// Cmp compares values three-way: -1 if q < v, 0 if equal, +1 if q > v.
//
// Comparison is value-only. Error bars are ignored entirely, and the
// stored confidence level is not consulted — this is NOT a statistical
// test of compatibility, just an ordering of the estimates. Kept that way
// deliberately; an interval-aware comparison would silently change the
// meaning of existing orderings.
//
// Panics with ErrNonNumeric if v is neither a real number nor a Quantity.
func (q Quantity) Cmp(v any) int {
	val, _, _, _, ok := astuple(v)
	if !ok {
		panic(errors.Wrapf(ErrNonNumeric, "cannot compare Quantity with %T", v))
	}
	switch {
	case q.value < val:
		return -1
	case q.value > val:
		return 1
	}
	return 0
}

// Equal reports q.Cmp(v) == 0 (value equality, error bars ignored).
func (q Quantity) Equal(v any) bool {
	return q.Cmp(v) == 0
}

// Less reports q.Cmp(v) < 0.
func (q Quantity) Less(v any) bool {
	return q.Cmp(v) < 0
}
