package expr

import (
	"github.com/croddy/parsec"
)

// The chaining algorithms below share one failure rule: an operator that has
// consumed input commits the operand that must follow it. A failure after
// that point is returned as a committed failure, so no enclosing alternation
// or repetition recovers from it. Only a no-progress failure of the operator
// itself ends the level cleanly.

// chainLeft parses `p (op p)*` and folds the applications left to right:
// acc = f(acc, rhs) in encounter order.
func chainLeft[A any](p parsec.Parser[A], op parsec.Parser[func(A, A) A]) parsec.Parser[A] {
	return func(input string, pos int) (A, int, *parsec.Error) {
		acc, next, err := p(input, pos)
		if err != nil {
			return acc, next, err
		}

		for {
			f, opNext, opErr := op(input, next)
			if opErr != nil {
				if opNext > next {
					var zero A
					return zero, opNext, opErr
				}

				return acc, next, nil
			}

			rhs, rhsNext, rhsErr := p(input, opNext)
			if rhsErr != nil {
				if rhsNext > next {
					var zero A
					return zero, rhsNext, rhsErr
				}

				return acc, next, nil
			}

			acc = f(acc, rhs)
			next = rhsNext
		}
	}
}

// chainRight parses `p (op chainRight)?`, grouping right to left.
func chainRight[A any](p parsec.Parser[A], op parsec.Parser[func(A, A) A]) parsec.Parser[A] {
	var rec parsec.Parser[A]

	rec = func(input string, pos int) (A, int, *parsec.Error) {
		lhs, next, err := p(input, pos)
		if err != nil {
			return lhs, next, err
		}

		f, opNext, opErr := op(input, next)
		if opErr != nil {
			if opNext > next {
				var zero A
				return zero, opNext, opErr
			}

			return lhs, next, nil
		}

		rhs, rhsNext, rhsErr := rec(input, opNext)
		if rhsErr != nil {
			if rhsNext > next {
				var zero A
				return zero, rhsNext, rhsErr
			}

			return lhs, next, nil
		}

		return f(lhs, rhs), rhsNext, nil
	}

	return rec
}

// chainNon parses `p (op p)?`. A second application at the same level is not
// attempted; the leftover input surfaces as a syntax error at the enclosing
// level instead of being silently reassociated.
func chainNon[A any](p parsec.Parser[A], op parsec.Parser[func(A, A) A]) parsec.Parser[A] {
	return func(input string, pos int) (A, int, *parsec.Error) {
		lhs, next, err := p(input, pos)
		if err != nil {
			return lhs, next, err
		}

		f, opNext, opErr := op(input, next)
		if opErr != nil {
			if opNext > next {
				var zero A
				return zero, opNext, opErr
			}

			return lhs, next, nil
		}

		rhs, rhsNext, rhsErr := p(input, opNext)
		if rhsErr != nil {
			if rhsNext > next {
				var zero A
				return zero, rhsNext, rhsErr
			}

			return lhs, next, nil
		}

		return f(lhs, rhs), rhsNext, nil
	}
}

// chainPrefix parses `op* p`. The operator closest to the operand applies
// first, so the collected operators compose right to left:
// op1(op2(...(wrap(operand)))).
func chainPrefix[B, A any](p parsec.Parser[B], wrap func(B) A, op parsec.Parser[func(A) A]) parsec.Parser[A] {
	return func(input string, pos int) (A, int, *parsec.Error) {
		var fs []func(A) A

		next := pos
		for {
			f, opNext, opErr := op(input, next)
			if opErr != nil {
				if opNext > next {
					var zero A
					return zero, opNext, opErr
				}

				break
			}

			// A zero-width operator would repeat forever.
			if opNext == next {
				break
			}

			fs = append(fs, f)
			next = opNext
		}

		operand, oNext, oErr := p(input, next)
		if oErr != nil {
			var zero A
			return zero, oNext, oErr
		}

		acc := wrap(operand)
		for i := len(fs) - 1; i >= 0; i-- {
			acc = fs[i](acc)
		}

		return acc, oNext, nil
	}
}

// chainPostfix parses `p op*`, applying the operators in encounter order:
// opN(...(op1(wrap(operand)))).
func chainPostfix[B, A any](p parsec.Parser[B], wrap func(B) A, op parsec.Parser[func(A) A]) parsec.Parser[A] {
	return func(input string, pos int) (A, int, *parsec.Error) {
		operand, next, err := p(input, pos)
		if err != nil {
			var zero A
			return zero, next, err
		}

		acc := wrap(operand)

		for {
			f, opNext, opErr := op(input, next)
			if opErr != nil {
				if opNext > next {
					var zero A
					return zero, opNext, opErr
				}

				return acc, next, nil
			}

			if opNext == next {
				return acc, next, nil
			}

			acc = f(acc)
			next = opNext
		}
	}
}
