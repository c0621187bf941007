// Package parsec is a small parser-combinator engine with the consumption-based
// alternation semantics expression grammars need: an alternative that fails
// after consuming input commits the whole choice, while an alternative that
// fails without consuming anything lets the next one run.
//
// Parsers are plain functions, so they compose with ordinary Go code. The expr
// subpackage builds precedence-table expression parsers on top of this engine.
package parsec

// A Parser consumes input starting at pos and either succeeds with a value and
// the position after it, or fails with a non-nil *Error.
//
// On failure the returned position tells callers how much input the parser
// consumed before giving up: a position greater than pos is a committed
// failure, equal to pos a no-progress failure. Choice only recovers from the
// latter.
type Parser[T any] func(input string, pos int) (T, int, *Error)

// Pure succeeds with v without consuming any input.
func Pure[T any](v T) Parser[T] {
	return func(input string, pos int) (T, int, *Error) {
		return v, pos, nil
	}
}

// Map transforms the result of p with f.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(input string, pos int) (U, int, *Error) {
		v, next, err := p(input, pos)
		if err != nil {
			var zero U
			return zero, next, err
		}

		return f(v), next, nil
	}
}

// Choice tries each alternative in order and returns the first success.
// An alternative that fails after consuming input decides the whole choice;
// only no-progress failures fall through to the next alternative. If every
// alternative fails without progress, the failure carries the union of their
// expected labels.
func Choice[T any](parsers ...Parser[T]) Parser[T] {
	if len(parsers) == 0 {
		panic("parsec: Choice requires at least one alternative")
	}

	return func(input string, pos int) (T, int, *Error) {
		var err *Error

		for _, p := range parsers {
			v, next, e := p(input, pos)
			if e == nil {
				return v, next, nil
			}

			if next > pos {
				var zero T
				return zero, next, e
			}

			err = mergeErrors(err, e)
		}

		var zero T
		return zero, pos, err
	}
}

// Label renames what p reports as expected when it fails without consuming
// input. Committed failures keep their original, more precise report.
func Label[T any](p Parser[T], name string) Parser[T] {
	return func(input string, pos int) (T, int, *Error) {
		v, next, err := p(input, pos)
		if err != nil && next == pos {
			err = &Error{Pos: pos, Expected: []string{name}}
		}

		return v, next, err
	}
}

// Many applies p zero or more times and collects the results.
// It stops at the first no-progress failure; a committed failure of p aborts
// the whole repetition.
func Many[T any](p Parser[T]) Parser[[]T] {
	return func(input string, pos int) ([]T, int, *Error) {
		var out []T

		for {
			v, next, err := p(input, pos)
			if err != nil {
				if next > pos {
					return nil, next, err
				}

				return out, pos, nil
			}

			// A zero-width success would repeat forever.
			if next == pos {
				return out, pos, nil
			}

			out = append(out, v)
			pos = next
		}
	}
}

// Many1 applies p one or more times.
func Many1[T any](p Parser[T]) Parser[[]T] {
	return func(input string, pos int) ([]T, int, *Error) {
		first, next, err := p(input, pos)
		if err != nil {
			return nil, next, err
		}

		rest, next, err := Many(p)(input, next)
		if err != nil {
			return nil, next, err
		}

		return append([]T{first}, rest...), next, nil
	}
}

// Between parses open, then p, then close, and returns p's result.
func Between[O, T, C any](open Parser[O], p Parser[T], close Parser[C]) Parser[T] {
	return func(input string, pos int) (T, int, *Error) {
		var zero T

		_, next, err := open(input, pos)
		if err != nil {
			return zero, next, err
		}

		v, next, err := p(input, next)
		if err != nil {
			return zero, next, err
		}

		_, next, err = close(input, next)
		if err != nil {
			return zero, next, err
		}

		return v, next, nil
	}
}

// Lazy defers the construction of a parser until it runs, allowing recursive
// grammars to reference a parser that is not built yet.
func Lazy[T any](f func() Parser[T]) Parser[T] {
	return func(input string, pos int) (T, int, *Error) {
		return f()(input, pos)
	}
}

// Parse runs p against input and requires it to consume all of it.
func Parse[T any](p Parser[T], input string) (T, error) {
	v, next, err := p(input, 0)
	if err != nil {
		var zero T
		return zero, err
	}

	if next != len(input) {
		var zero T
		return zero, &Error{Pos: next, Expected: []string{"end of input"}}
	}

	return v, nil
}
