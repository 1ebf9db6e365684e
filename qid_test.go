package obskit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQID(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  []Token
	}{
		{name: "nil is the empty identity", input: nil, want: nil},
		{name: "bare token", input: Token("a"), want: []Token{"a"}},
		{name: "bare string is one token, not characters", input: "abc", want: []Token{"abc"}},
		{name: "slice of tokens deduplicates", input: []Token{"b", "a", "b"}, want: []Token{"a", "b"}},
		{name: "slice of strings", input: []string{"y", "x"}, want: []Token{"x", "y"}},
		{name: "existing QID", input: NewQID([]Token{"a", "b"}), want: []Token{"a", "b"}},
		{name: "mixed slice with nils skipped", input: []any{Token("a"), nil, "b"}, want: []Token{"a", "b"}},
		{name: "nested operand identities flatten", input: []any{NewQID("a"), NewQID("b")}, want: []Token{"a", "b"}},
		{name: "other scalars collapse to their string form", input: []any{1, 1.0, "1"}, want: []Token{"1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewQID(tt.input)
			require.Equal(t, len(tt.want), got.Len())
			for _, tok := range tt.want {
				assert.True(t, got.Has(tok), "missing token %q", tok)
			}
		})
	}
}

func TestQID_Union(t *testing.T) {
	base := NewQID([]Token{"a", "b"})

	t.Run("bare token", func(t *testing.T) {
		u := base.Union(Token("c"))
		assert.Equal(t, []Token{"a", "b", "c"}, u.Tokens())
	})

	t.Run("collection", func(t *testing.T) {
		u := base.Union([]Token{"c", "a"})
		assert.Equal(t, 3, u.Len())
	})

	t.Run("another QID", func(t *testing.T) {
		u := base.Union(NewQID("c"))
		assert.True(t, u.Has("a") && u.Has("b") && u.Has("c"))
	})

	t.Run("nil leaves the set unchanged", func(t *testing.T) {
		assert.True(t, base.Union(nil).Equal(base))
	})

	t.Run("union never mutates the receiver", func(t *testing.T) {
		_ = base.Union(Token("z"))
		assert.Equal(t, []Token{"a", "b"}, base.Tokens())
	})
}

func TestQID_Equal(t *testing.T) {
	assert.True(t, NewQID([]Token{"a", "b"}).Equal(NewQID([]Token{"b", "a"})), "order irrelevant")
	assert.False(t, NewQID("a").Equal(NewQID("b")))
	assert.True(t, EmptyQID().Equal(NewQID(nil)))
	assert.False(t, EmptyQID().Equal(NewQID("a")))
}

func TestQID_Key(t *testing.T) {
	require.Equal(t, "", EmptyQID().Key())
	assert.Equal(t, NewQID([]Token{"b", "a"}).Key(), NewQID([]Token{"a", "b"}).Key())
	assert.NotEqual(t, NewQID("a").Key(), NewQID("b").Key())

	// Key must be injective for distinct sets so the covariance map
	// cannot alias two identities.
	assert.NotEqual(t, NewQID([]Token{"a", "b"}).Key(), NewQID(Token("ab")).Key())
}

func TestFreshQID(t *testing.T) {
	a := FreshQID()
	b := FreshQID()
	require.Equal(t, 1, a.Len())
	assert.False(t, a.Equal(b), "minted tokens must be unique within the session")
}

func TestIsIterable(t *testing.T) {
	assert.False(t, IsIterable(nil))
	assert.False(t, IsIterable("abc"), "strings are scalars here")
	assert.False(t, IsIterable(3.14))
	assert.False(t, IsIterable(Token("t")))
	assert.True(t, IsIterable([]Token{"a"}))
	assert.True(t, IsIterable([2]string{"a", "b"}))
	assert.True(t, IsIterable(map[Token]struct{}{"a": {}}))
}

func TestAsIterable(t *testing.T) {
	assert.Equal(t, []any{5}, AsIterable(5))
	assert.Equal(t, []any{"abc"}, AsIterable("abc"))
	assert.Equal(t, []any{nil}, AsIterable(nil))
	assert.Equal(t, []any{Token("a"), Token("b")}, AsIterable([]Token{"a", "b"}))

	keys := AsIterable(map[Token]struct{}{"a": {}})
	assert.Equal(t, []any{Token("a")}, keys)
}
