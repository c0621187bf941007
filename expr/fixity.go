// Package expr builds expression parsers from precedence tables.
//
// A table lists the atomic operand parsers and, from tightest to weakest, the
// operator levels layered over them. Compiling the table yields a single
// parsec.Parser that implements precedence climbing without left recursion
// and without backtracking across committed operators.
package expr

// Fixity describes how the operators of one precedence level attach to their
// operands and, for infix operators, how repeated applications group.
type Fixity uint8

const (
	// InfixL groups repeated infix applications left to right.
	InfixL Fixity = iota
	// InfixR groups repeated infix applications right to left.
	InfixR
	// NonAssoc allows at most one infix application without explicit grouping.
	NonAssoc
	// Prefix applies unary operators before the operand.
	Prefix
	// Postfix applies unary operators after the operand.
	Postfix
)

func (f Fixity) String() string {
	switch f {
	case InfixL:
		return "InfixL"
	case InfixR:
		return "InfixR"
	case NonAssoc:
		return "NonAssoc"
	case Prefix:
		return "Prefix"
	case Postfix:
		return "Postfix"
	default:
		return "Unknown"
	}
}
