package expr

import (
	"github.com/croddy/parsec"
)

// Prec is one node of a precedence table: either the atoms at the base or an
// operator level wrapped around a strictly tighter inner table. Tables are
// immutable and purely descriptive; build them with Atoms and Level, compile
// them with Precedence.
type Prec[A any] interface {
	crush() parsec.Parser[A]
}

type atoms[A any] struct {
	parsers []parsec.Parser[A]
}

// Atoms is the base of a table: the ordered alternatives for an operand with
// no further precedence structure. At least one atom is required.
func Atoms[A any](atom parsec.Parser[A], more ...parsec.Parser[A]) Prec[A] {
	return atoms[A]{
		parsers: append([]parsec.Parser[A]{atom}, more...),
	}
}

func (a atoms[A]) crush() parsec.Parser[A] {
	return parsec.Choice(a.parsers...)
}

type level[B, A any] struct {
	inner Prec[B]
	ops   Ops[B, A]
}

// Level wraps one weaker operator level around a tighter table. The level may
// change the produced type only through a Prefix or Postfix Ops built with
// UnaryLift.
func Level[B, A any](inner Prec[B], ops Ops[B, A]) Prec[A] {
	if inner == nil {
		panic("expr: nil inner table")
	}
	if ops == nil {
		panic("expr: nil operator level")
	}

	return level[B, A]{
		inner: inner,
		ops:   ops,
	}
}

func (l level[B, A]) crush() parsec.Parser[A] {
	return l.ops.Chain(crushLevels(l.inner))
}

// crushLevels collapses a table bottom-up into a single parser. It is a pure
// structural recursion: the atoms compile to an ordered alternation, and each
// level chains its fixity algorithm around the compiled inner table, so the
// nesting of the result mirrors the depth of the table exactly.
func crushLevels[A any](table Prec[A]) parsec.Parser[A] {
	return table.crush()
}
