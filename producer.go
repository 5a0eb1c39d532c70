package pinview

import "reflect"

// produce resolves a lazily evaluated input.
//
// Producers that accept a fresh instance may mutate it in place and return
// nil; the fresh instance then stands in for the result. Producers without a
// parameter return their result directly and nil means "nothing". The second
// return value reports whether input was a producer at all.
func produce[T any](input any, fresh T) (any, bool) {
	switch fn := input.(type) {
	case func(T) any:
		if v := fn(fresh); !isNil(v) {
			return v, true
		}
		return fresh, true
	case func(T):
		fn(fresh)
		return fresh, true
	case func() any:
		return fn(), true
	case func() string:
		return fn(), true
	}
	return input, false
}

// isNil reports whether v is nil or a typed nil.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
