package obskit

import "reflect"

// IsIterable reports whether v can be ranged over element-wise. Strings
// report false: a string used as an identity token must stay one token,
// not decompose into characters. Nil reports false.
func IsIterable(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return true
	}
	return false
}

// AsIterable normalizes v into a slice of elements. Iterables (per
// IsIterable) are expanded; anything else, including strings and nil, is
// wrapped as a single element. Map values iterate over keys, matching set
// semantics (map[Token]struct{} is the conventional Go set).
//
// Used only to normalize identity-token arguments before building a QID.
func AsIterable(v any) []any {
	if !IsIterable(v) {
		return []any{v}
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = rv.Index(i).Interface()
		}
		return out
	case reflect.Map:
		out := make([]any, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out = append(out, iter.Key().Interface())
		}
		return out
	}
	return []any{v}
}
