package obskit

import (
	"fmt"
	"math"

	"github.com/cockroachdb/errors"
)

// DefaultConfidence is the confidence level attached to new quantities.
// It is carried for future interval-aware comparison; Cmp does not consult
// it today.
const DefaultConfidence = 0.99

// Observable is the capability an operand must expose to take part in
// correlated arithmetic. Anything that is not an Observable is treated as
// a bare number with zero error and empty identity.
type Observable interface {
	Value() float64
	Error() float64
	Identity() QID
}

// Quantity is a number with a Gaussian error and an identity.
//
// The estimate is Value, the error is the square root of the stored
// variance (variance is the canonical field; propagation formulas square
// and un-square errors constantly, and keeping the variance avoids a
// gratuitous sqrt/square round trip at every step).
//
// Quantities behave as immutable values: every operator returns a new
// Quantity and never touches its operands. The one deliberate exception is
// SetError, which adjusts the receiver in place the way a read/write
// property would.
//
// Cross-quantity covariance is NOT tracked. Each Quantity records only its
// self-covariance ({identity: variance}); all other correlation is assumed
// zero except when two operands share their whole identity, in which case
// the operators switch to the correlated branch. This is a documented
// limitation of the model, not an oversight.
type Quantity struct {
	value      float64
	variance   float64
	qid        QID
	confidence float64
	covariance map[string]float64
}

// Option configures construction. See WithError, WithIdentity and
// WithConfidence.
type Option func(*buildOpts)

type buildOpts struct {
	err        *float64
	qid        *QID
	confidence *float64
}

// WithError forces the error of the new quantity, overriding any error
// absorbed from a source Quantity.
func WithError(e float64) Option {
	return func(o *buildOpts) { o.err = &e }
}

// WithIdentity forces the identity of the new quantity. v follows NewQID
// coercion: a bare Token, a QID, an iterable of tokens, or nil for the
// empty identity. An explicit identity always beats both the absorbed
// identity and fresh-token generation.
func WithIdentity(v any) Option {
	return func(o *buildOpts) { q := NewQID(v); o.qid = &q }
}

// WithConfidence sets the stored confidence level (default 0.99).
func WithConfidence(c float64) Option {
	return func(o *buildOpts) { o.confidence = &c }
}

// New constructs a Quantity from a value and an error.
//
//	a := obskit.New(2.0, 1.0)
//
// A nonzero error with no explicit identity mints a fresh session-unique
// token; a zero error yields the empty identity (a plain number).
func New(value, errv float64, opts ...Option) Quantity {
	return construct(value, errv, EmptyQID(), opts)
}

// From constructs a Quantity from an arbitrary operand: an existing
// Quantity (or any Observable), whose value, error and identity are
// absorbed, or any Go real-number kind. Absorbing an existing Quantity is
// the coercion/copy path: the result shares the source's identity, so it
// stays correlated with it.
//
// Resolution order for the error: WithError wins, else the absorbed error,
// else zero. For the identity: WithIdentity wins, else the absorbed
// identity, else a fresh token iff the resolved error is nonzero.
//
// Returns ErrNonNumeric for anything that is neither Observable nor a real
// number.
func From(v any, opts ...Option) (Quantity, error) {
	val, errv, qid, _, ok := astuple(v)
	if !ok {
		return Quantity{}, errors.Wrapf(ErrNonNumeric, "cannot build Quantity from %T", v)
	}
	return construct(val, errv, qid, opts), nil
}

// construct applies the resolution rules shared by New and From.
// absorbed is the identity extracted from a source Observable (empty for
// plain numbers).
func construct(value, errv float64, absorbed QID, opts []Option) Quantity {
	var o buildOpts
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		errv = *o.err
	}

	qid := absorbed
	switch {
	case o.qid != nil:
		qid = *o.qid
	case qid.IsEmpty() && errv != 0:
		qid = FreshQID()
	}

	confidence := DefaultConfidence
	if o.confidence != nil {
		confidence = *o.confidence
	}

	variance := errv * errv
	return Quantity{
		value:      value,
		variance:   variance,
		qid:        qid,
		confidence: confidence,
		covariance: map[string]float64{qid.Key(): variance},
	}
}

// Value returns the estimate.
func (q Quantity) Value() float64 {
	return q.value
}

// Error returns the Gaussian error, the non-negative square root of the
// stored variance.
func (q Quantity) Error() float64 {
	return math.Sqrt(q.variance)
}

// SetError overwrites the error, storing its square as the new variance.
func (q *Quantity) SetError(e float64) {
	q.variance = e * e
}

// Variance returns the stored variance.
func (q Quantity) Variance() float64 {
	return q.variance
}

// Identity returns the QID of the quantity.
func (q Quantity) Identity() QID {
	return q.qid
}

// Confidence returns the stored confidence level.
func (q Quantity) Confidence() float64 {
	return q.confidence
}

// Covariance returns a copy of the self-covariance record, a map from
// canonical identity key (QID.Key) to variance. It holds exactly one
// entry: the quantity's own identity.
func (q Quantity) Covariance() map[string]float64 {
	out := make(map[string]float64, len(q.covariance))
	for k, v := range q.covariance {
		out[k] = v
	}
	return out
}

// AsTuple returns (value, error).
func (q Quantity) AsTuple() (float64, float64) {
	return q.value, q.Error()
}

// IsSame reports whether v is the same observable: a Quantity-like operand
// whose identity set equals q's. It is also true when v was derived from q
// without involving any other independent quantity with error (identity is
// conserved through such operations). Plain numbers are never the same
// observable.
//
// IsSame is the correlation test every binary operator consults to choose
// between the correlated and the independent propagation branch.
func (q Quantity) IsSame(v any) bool {
	obs, ok := v.(Observable)
	if !ok {
		return false
	}
	return q.qid.Equal(obs.Identity())
}

// Copy returns a new quantity with the same value and error but a fresh
// identity: the equivalent of an independent re-measurement. Arithmetic
// between the copy and the original combines errors in quadrature.
func (q Quantity) Copy() Quantity {
	return New(q.value, q.Error())
}

// DeepCopy returns an exact clone with the same identity and confidence.
// Arithmetic between the clone and the original takes the correlated
// branch, exactly as q with itself would.
func (q Quantity) DeepCopy() Quantity {
	return New(q.value, q.Error(), WithIdentity(q.qid), WithConfidence(q.confidence))
}

// String renders "<value> (<error>)" with 6 significant digits.
func (q Quantity) String() string {
	return fmt.Sprintf("%.6g (%.6g)", q.value, q.Error())
}
