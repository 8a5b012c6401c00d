// Package funcs provides function-shaping helpers: fixed-arity currying and
// bounded memoization.
package funcs

// Curry2 turns a two-argument function into a chain of single-argument
// functions.
func Curry2[A, B, R any](fn func(A, B) R) func(A) func(B) R {
	return func(a A) func(B) R {
		return func(b B) R {
			return fn(a, b)
		}
	}
}

// Curry3 turns a three-argument function into a chain of single-argument
// functions.
func Curry3[A, B, C, R any](fn func(A, B, C) R) func(A) func(B) func(C) R {
	return func(a A) func(B) func(C) R {
		return func(b B) func(C) R {
			return func(c C) R {
				return fn(a, b, c)
			}
		}
	}
}

// Uncurry2 is the inverse of Curry2.
func Uncurry2[A, B, R any](fn func(A) func(B) R) func(A, B) R {
	return func(a A, b B) R {
		return fn(a)(b)
	}
}

// Uncurry3 is the inverse of Curry3.
func Uncurry3[A, B, C, R any](fn func(A) func(B) func(C) R) func(A, B, C) R {
	return func(a A, b B, c C) R {
		return fn(a)(b)(c)
	}
}
