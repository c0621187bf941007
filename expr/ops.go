package expr

import (
	"github.com/croddy/parsec"
)

// Ops is one precedence level: a fixity plus a non-empty, ordered list of
// operator parsers. Chain wraps the level around the compiled parser for the
// next tighter level.
//
// B is the type produced by the tighter level, A the type this level
// produces. Infix levels are necessarily homogeneous (B = A, enforced by the
// Binary constructor); only Prefix and Postfix levels built with UnaryLift
// may change the type, and they do so exactly once.
type Ops[B, A any] interface {
	Fixity() Fixity
	Chain(operand parsec.Parser[B]) parsec.Parser[A]
}

type binaryOps[A any] struct {
	fixity    Fixity
	operators []parsec.Parser[func(A, A) A]
}

// Binary builds an infix level. The fixity must be InfixL, InfixR or
// NonAssoc; anything else is a construction error. When several operators
// could match at one position they are tried in the order given here.
func Binary[A any](f Fixity, op parsec.Parser[func(A, A) A], ops ...parsec.Parser[func(A, A) A]) Ops[A, A] {
	switch f {
	case InfixL, InfixR, NonAssoc:
	default:
		panic("expr: " + f.String() + " levels take unary operators, not binary ones")
	}

	return binaryOps[A]{
		fixity:    f,
		operators: append([]parsec.Parser[func(A, A) A]{op}, ops...),
	}
}

func (o binaryOps[A]) Fixity() Fixity {
	return o.fixity
}

func (o binaryOps[A]) Chain(operand parsec.Parser[A]) parsec.Parser[A] {
	op := parsec.Choice(o.operators...)

	switch o.fixity {
	case InfixL:
		return chainLeft(operand, op)
	case InfixR:
		return chainRight(operand, op)
	default:
		return chainNon(operand, op)
	}
}

type unaryOps[B, A any] struct {
	fixity    Fixity
	wrap      func(B) A
	operators []parsec.Parser[func(A) A]
}

// Unary builds a homogeneous Prefix or Postfix level: zero or more unary
// operators around an operand of the same type.
func Unary[A any](f Fixity, op parsec.Parser[func(A) A], ops ...parsec.Parser[func(A) A]) Ops[A, A] {
	return UnaryLift(f, func(v A) A { return v }, op, ops...)
}

// UnaryLift builds a Prefix or Postfix level that changes the produced type:
// the operand is lifted from B to A by wrap exactly once, and the operators
// then compose over A. The fixity must be Prefix or Postfix.
func UnaryLift[B, A any](f Fixity, wrap func(B) A, op parsec.Parser[func(A) A], ops ...parsec.Parser[func(A) A]) Ops[B, A] {
	switch f {
	case Prefix, Postfix:
	default:
		panic("expr: " + f.String() + " levels take binary operators, not unary ones")
	}

	if wrap == nil {
		panic("expr: nil wrap function")
	}

	return unaryOps[B, A]{
		fixity:    f,
		wrap:      wrap,
		operators: append([]parsec.Parser[func(A) A]{op}, ops...),
	}
}

func (o unaryOps[B, A]) Fixity() Fixity {
	return o.fixity
}

func (o unaryOps[B, A]) Chain(operand parsec.Parser[B]) parsec.Parser[A] {
	op := parsec.Choice(o.operators...)

	if o.fixity == Prefix {
		return chainPrefix(operand, o.wrap, op)
	}

	return chainPostfix(operand, o.wrap, op)
}
