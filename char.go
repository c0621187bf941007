package parsec

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Satisfy consumes a single rune for which pred returns true.
// Use Label to give the failure a readable name.
func Satisfy(pred func(rune) bool) Parser[rune] {
	return func(input string, pos int) (rune, int, *Error) {
		if pos >= len(input) {
			return 0, pos, &Error{Pos: pos}
		}

		r, size := utf8.DecodeRuneInString(input[pos:])
		if !pred(r) {
			return 0, pos, &Error{Pos: pos}
		}

		return r, pos + size, nil
	}
}

// Char consumes exactly the rune c.
func Char(c rune) Parser[rune] {
	return Label(Satisfy(func(r rune) bool { return r == c }), strconv.QuoteRune(c))
}

// OneOf consumes a single rune contained in set.
func OneOf(set string) Parser[rune] {
	return Label(Satisfy(func(r rune) bool {
		for _, c := range set {
			if r == c {
				return true
			}
		}
		return false
	}), "one of "+strconv.Quote(set))
}

// String consumes exactly s. A partial match is a committed failure: once the
// first byte of s has matched, no enclosing alternation will fall back.
func String(s string) Parser[string] {
	expected := strconv.Quote(s)

	return func(input string, pos int) (string, int, *Error) {
		n := 0
		for n < len(s) && pos+n < len(input) && input[pos+n] == s[n] {
			n++
		}

		if n < len(s) {
			return "", pos + n, &Error{Pos: pos + n, Expected: []string{expected}}
		}

		return s, pos + n, nil
	}
}

// Digit consumes a single decimal digit.
func Digit() Parser[rune] {
	return Label(Satisfy(unicode.IsDigit), "digit")
}

// Natural consumes one or more decimal digits as a non-negative int.
func Natural() Parser[int] {
	return Map(Many1(Digit()), func(digits []rune) int {
		n := 0
		for _, d := range digits {
			n = n*10 + int(d-'0')
		}
		return n
	})
}

// Spaces consumes a possibly empty run of whitespace. It never fails.
func Spaces() Parser[struct{}] {
	return func(input string, pos int) (struct{}, int, *Error) {
		for pos < len(input) {
			r, size := utf8.DecodeRuneInString(input[pos:])
			if !unicode.IsSpace(r) {
				break
			}
			pos += size
		}

		return struct{}{}, pos, nil
	}
}

// Lexeme runs p and then skips trailing whitespace.
func Lexeme[T any](p Parser[T]) Parser[T] {
	return func(input string, pos int) (T, int, *Error) {
		v, next, err := p(input, pos)
		if err != nil {
			return v, next, err
		}

		_, next, _ = Spaces()(input, next)

		return v, next, nil
	}
}

// Symbol consumes exactly s and skips trailing whitespace.
func Symbol(s string) Parser[string] {
	return Lexeme(String(s))
}
