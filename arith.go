package obskit

import (
	"math"
	"reflect"

	"github.com/cockroachdb/errors"
)

// astuple coerces an operand into its (value, error, identity) triple.
// Observables yield their own triple; plain real numbers yield zero error
// and empty identity. isObs distinguishes a genuine Quantity-like operand
// from a bare number; ok is false for non-numeric input.
func astuple(v any) (val, errv float64, qid QID, isObs, ok bool) {
	switch x := v.(type) {
	case Quantity:
		return x.value, x.Error(), x.qid, true, true
	case *Quantity:
		if x == nil {
			return 0, 0, QID{}, false, false
		}
		return x.value, x.Error(), x.qid, true, true
	case Observable:
		return x.Value(), x.Error(), x.Identity(), true, true
	case float64:
		return x, 0, QID{}, false, true
	case float32:
		return float64(x), 0, QID{}, false, true
	case int:
		return float64(x), 0, QID{}, false, true
	case int8:
		return float64(x), 0, QID{}, false, true
	case int16:
		return float64(x), 0, QID{}, false, true
	case int32:
		return float64(x), 0, QID{}, false, true
	case int64:
		return float64(x), 0, QID{}, false, true
	case uint:
		return float64(x), 0, QID{}, false, true
	case uint8:
		return float64(x), 0, QID{}, false, true
	case uint16:
		return float64(x), 0, QID{}, false, true
	case uint32:
		return float64(x), 0, QID{}, false, true
	case uint64:
		return float64(x), 0, QID{}, false, true
	}

	// Named numeric types (type Celsius float64, ...) still count as
	// plain numbers.
	if v != nil {
		rv := reflect.ValueOf(v)
		switch {
		case rv.CanFloat():
			return rv.Float(), 0, QID{}, false, true
		case rv.CanInt():
			return float64(rv.Int()), 0, QID{}, false, true
		case rv.CanUint():
			return float64(rv.Uint()), 0, QID{}, false, true
		}
	}
	return 0, 0, QID{}, false, false
}

// mustTuple is astuple for operator positions, where a type failure has no
// error return to flow through: it panics with ErrNonNumeric.
func mustTuple(v any) (val, errv float64, qid QID) {
	val, errv, qid, _, ok := astuple(v)
	if !ok {
		panic(errors.Wrapf(ErrNonNumeric, "invalid operand %T", v))
	}
	return val, errv, qid
}

// dist is the quadrature combination √(x²+y²) used by every
// independent-branch propagation formula.
func dist(x, y float64) float64 {
	return math.Sqrt(x*x + y*y)
}

// Add returns q + v.
//
// Independent: error √(e1²+e2²), identity union. Same observable: error
// |e1+e2| (fully correlated, so a+a carries twice the error, not √2 of
// it), identity conserved.
func (q Quantity) Add(v any) Quantity {
	val, errv, qid := mustTuple(v)
	if q.IsSame(v) {
		return New(q.value+val, math.Abs(q.Error()+errv), WithIdentity(q.qid))
	}
	return New(q.value+val, dist(q.Error(), errv), WithIdentity(q.qid.Union(qid)))
}

// Sub returns q - v.
//
// Independent: error √(e1²+e2²), identity union. Same observable: error
// |e1-e2|, so a-a comes out as exactly 0 (0) with identity conserved.
func (q Quantity) Sub(v any) Quantity {
	val, errv, qid := mustTuple(v)
	if q.IsSame(v) {
		return New(q.value-val, math.Abs(q.Error()-errv), WithIdentity(q.qid))
	}
	return New(q.value-val, dist(q.Error(), errv), WithIdentity(q.qid.Union(qid)))
}

// Mul returns q * v.
//
// Independent: error √((v2·e1)²+(v1·e2)²), identity union. Same
// observable: error |e1·e2| — an approximation that is not correct in the
// general case but is the model's documented behavior for a*a.
func (q Quantity) Mul(v any) Quantity {
	val, errv, qid := mustTuple(v)
	if q.IsSame(v) {
		return New(q.value*val, math.Abs(q.Error()*errv), WithIdentity(q.qid))
	}
	return New(q.value*val, dist(val*q.Error(), errv*q.value), WithIdentity(q.qid.Union(qid)))
}

// Div returns q / v.
//
// Independent: error √((e1/v2)²+(e2·v1/v2²)²), identity union. Same
// observable: error 0, exact for a/a. Division by a zero-valued operand
// follows float64 semantics (±Inf, or NaN for 0/0).
func (q Quantity) Div(v any) Quantity {
	val, errv, qid := mustTuple(v)
	if q.IsSame(v) {
		return New(q.value/val, 0, WithIdentity(q.qid))
	}
	return New(q.value/val, dist(q.Error()/val, errv*q.value/(val*val)), WithIdentity(q.qid.Union(qid)))
}

// Pow returns q ** v.
//
// Independent, with f = v1^v2: error √((e1·f·v2/v1)² + (e2·f·ln v1)²),
// identity union. Same observable (the x^x case): error |e1·f·(1+ln v1)|,
// identity conserved — an approximation of unclear validity for chains
// like a**a**a, kept as documented behavior. A non-positive base makes the
// ln term NaN, which propagates uncaught.
func (q Quantity) Pow(v any) Quantity {
	x, dx := q.value, q.Error()
	y, dy, yqid := mustTuple(v)
	f := math.Pow(x, y)
	if q.IsSame(v) {
		return New(f, math.Abs(dx*f*(1+math.Log(x))), WithIdentity(q.qid))
	}
	return New(f, dist(dx*f*y/x, dy*f*math.Log(x)), WithIdentity(q.qid.Union(yqid)))
}

// PowMod would be three-argument modular exponentiation. Error propagation
// through a modulus is not defined in this model, so the operation is
// rejected outright.
func (q Quantity) PowMod(_, _ any) (Quantity, error) {
	return Quantity{}, errors.WithStack(ErrModularPow)
}

// Neg returns -q. Negation never breaks correlation: the error and the
// identity are unchanged.
func (q Quantity) Neg() Quantity {
	return New(-q.value, q.Error(), WithIdentity(q.qid))
}

// Abs returns |q| with error and identity unchanged.
func (q Quantity) Abs() Quantity {
	return New(math.Abs(q.value), q.Error(), WithIdentity(q.qid))
}
