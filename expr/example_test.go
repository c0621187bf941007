package expr_test

import (
	"fmt"

	"github.com/croddy/parsec"
	"github.com/croddy/parsec/expr"
)

func Example() {
	var expression parsec.Parser[int]

	number := parsec.Lexeme(parsec.Natural())
	parens := parsec.Between(
		parsec.Symbol("("),
		parsec.Lazy(func() parsec.Parser[int] { return expression }),
		parsec.Symbol(")"),
	)

	binary := func(symbol string, f func(int, int) int) parsec.Parser[func(int, int) int] {
		return parsec.Map(parsec.Symbol(symbol), func(string) func(int, int) int { return f })
	}

	negate := parsec.Map(parsec.Symbol("-"), func(string) func(int) int {
		return func(v int) int { return -v }
	})

	expression = expr.TightestFirst(
		[]parsec.Parser[int]{number, parens},
		expr.Unary(expr.Prefix, negate),
		expr.Binary(expr.InfixL, binary("*", func(a, b int) int { return a * b })),
		expr.Binary(expr.InfixL,
			binary("+", func(a, b int) int { return a + b }),
			binary("-", func(a, b int) int { return a - b }),
		),
	)

	v, err := parsec.Parse(expression, "2 * (3 + 4) - -5")
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(v)
	// Output: 19
}
