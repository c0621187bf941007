package expr

import (
	"slices"

	"github.com/croddy/parsec"
)

// Precedence compiles an explicit table into a parser. This is the most
// general entry point: the table may change its produced type between levels
// through Prefix/Postfix lifting.
func Precedence[A any](table Prec[A]) parsec.Parser[A] {
	return crushLevels(table)
}

// TightestFirst compiles a homogeneous table from its parts: the atom
// alternatives and the operator levels ordered from tightest-binding to
// weakest. The first level binds directly to the atoms; the last one becomes
// the outermost layer. At least one atom is required.
func TightestFirst[A any](atomList []parsec.Parser[A], levels ...Ops[A, A]) parsec.Parser[A] {
	if len(atomList) == 0 {
		panic("expr: at least one atom is required")
	}

	table := Atoms(atomList[0], atomList[1:]...)
	for _, ops := range levels {
		table = Level(table, ops)
	}

	return Precedence(table)
}

// WeakestFirst is TightestFirst with the levels given in the opposite order,
// weakest-binding first. It returns a function to apply to the atoms, so the
// level list is never empty by construction.
func WeakestFirst[A any](weakest Ops[A, A], rest ...Ops[A, A]) func(atom parsec.Parser[A], more ...parsec.Parser[A]) parsec.Parser[A] {
	levels := append([]Ops[A, A]{weakest}, rest...)
	slices.Reverse(levels)

	return func(atom parsec.Parser[A], more ...parsec.Parser[A]) parsec.Parser[A] {
		return TightestFirst(append([]parsec.Parser[A]{atom}, more...), levels...)
	}
}
