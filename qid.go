package obskit

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Token is one opaque identity mark. Each Token stands for a single
// independently measured source quantity. Tokens are unique within a
// process run; they are not meaningful across runs (identity is
// session-scoped, never persisted).
type Token string

// mintToken returns a fresh, session-unique Token.
//
// An explicit generator is used instead of any address-based identity:
// memory addresses get recycled, which would silently alias two unrelated
// measurements. uuid.NewString is safe for concurrent use, so minting needs
// no locking of its own.
func mintToken() Token {
	return Token(uuid.NewString())
}

// QID is the identity of a Quantity: an immutable set of Tokens.
//
// The zero value is the empty identity, carried by plain numbers and
// zero-error quantities. A non-empty QID accumulates through arithmetic:
// combining two independent quantities unions their identity sets, so a
// QID is the flattened history of every independent measurement that went
// into a value.
//
// QID values are never mutated; Union and friends return new sets.
type QID struct {
	tokens []Token // sorted, deduplicated
}

// EmptyQID returns the empty identity.
func EmptyQID() QID {
	return QID{}
}

// FreshQID returns an identity holding one newly minted token.
func FreshQID() QID {
	return QID{tokens: []Token{mintToken()}}
}

// NewQID builds an identity from v, which may be nil (empty identity), a
// single Token or string, a QID, or any iterable of those. Nil elements
// inside an iterable are skipped. Strings are treated as single tokens,
// never iterated character by character.
//
// Any other scalar collapses to the token of its fmt string form, so
// distinct values that print alike (int(1) and float64(1) both print "1")
// alias to one token. Tokens are opaque marks, not values; callers who
// need distinct identities must supply distinct Token or string forms.
func NewQID(v any) QID {
	set := make(map[Token]struct{})
	collectTokens(set, v)
	return qidFromSet(set)
}

// collectTokens flattens v into set. One level of nesting is enough in
// practice (a QID inside a slice of operand identities).
func collectTokens(set map[Token]struct{}, v any) {
	switch x := v.(type) {
	case nil:
	case Token:
		set[x] = struct{}{}
	case string:
		set[Token(x)] = struct{}{}
	case QID:
		for _, t := range x.tokens {
			set[t] = struct{}{}
		}
	default:
		if !IsIterable(v) {
			// Any other scalar becomes a single token via its string
			// form, never decomposed further.
			set[Token(fmt.Sprint(v))] = struct{}{}
			return
		}
		for _, e := range AsIterable(v) {
			if e == nil {
				continue
			}
			collectTokens(set, e)
		}
	}
}

func qidFromSet(set map[Token]struct{}) QID {
	if len(set) == 0 {
		return QID{}
	}
	tokens := make([]Token, 0, len(set))
	for t := range set {
		tokens = append(tokens, t)
	}
	sort.Slice(tokens, func(i, j int) bool { return tokens[i] < tokens[j] })
	return QID{tokens: tokens}
}

// Union returns a new QID holding every token of q plus every token in v.
// v follows the same coercion rules as NewQID: a bare Token, a QID, an
// iterable of tokens, or nil (which leaves q unchanged).
func (q QID) Union(v any) QID {
	set := make(map[Token]struct{}, len(q.tokens))
	for _, t := range q.tokens {
		set[t] = struct{}{}
	}
	collectTokens(set, v)
	return qidFromSet(set)
}

// IsEmpty reports whether q is the empty identity.
func (q QID) IsEmpty() bool {
	return len(q.tokens) == 0
}

// Len returns the number of tokens in q.
func (q QID) Len() int {
	return len(q.tokens)
}

// Has reports whether q contains t.
func (q QID) Has(t Token) bool {
	i := sort.Search(len(q.tokens), func(i int) bool { return q.tokens[i] >= t })
	return i < len(q.tokens) && q.tokens[i] == t
}

// Equal reports set equality with other, order-irrelevant by construction
// since tokens are kept sorted.
func (q QID) Equal(other QID) bool {
	if len(q.tokens) != len(other.tokens) {
		return false
	}
	for i, t := range q.tokens {
		if other.tokens[i] != t {
			return false
		}
	}
	return true
}

// Tokens returns a copy of the token set in sorted order.
func (q QID) Tokens() []Token {
	out := make([]Token, len(q.tokens))
	copy(out, q.tokens)
	return out
}

// Key returns a canonical string for use as a map key. Two QIDs have the
// same Key iff they are Equal. The empty identity keys as "".
func (q QID) Key() string {
	if len(q.tokens) == 0 {
		return ""
	}
	parts := make([]string, len(q.tokens))
	for i, t := range q.tokens {
		parts[i] = string(t)
	}
	return strings.Join(parts, "\x1f")
}

// String renders the identity for debugging.
func (q QID) String() string {
	return fmt.Sprintf("QID%v", q.Tokens())
}
