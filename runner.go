package parsec

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
)

var discardLogger = log.New(io.Discard, "", 0)

// A Runner wraps a compiled parser with run-time concerns: logging and
// context handling. The parser itself is immutable, so a single Runner may be
// shared by concurrent parse runs.
type Runner[T any] struct {
	parser Parser[T]

	logger *log.Logger
}

type RunnerOpt[T any] func(r *Runner[T])

func WithLogging[T any](logger *log.Logger) RunnerOpt[T] {
	return func(r *Runner[T]) {
		if logger == nil {
			logger = discardLogger
		}

		r.logger = logger
	}
}

func NewRunner[T any](parser Parser[T], opts ...RunnerOpt[T]) *Runner[T] {
	r := &Runner[T]{
		parser: parser,
		logger: discardLogger,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run parses input to completion.
func (r *Runner[T]) Run(ctx context.Context, input string) (T, error) {
	var zero T

	if err := ctx.Err(); err != nil {
		return zero, err
	}

	v, err := Parse(r.parser, input)
	if err != nil {
		var perr *Error
		if errors.As(err, &perr) {
			r.logger.Printf("Parse failed at offset %d, expected %s", perr.Pos, strings.Join(perr.Expected, " or "))
		}

		return zero, fmt.Errorf("could not parse: %w", err)
	}

	r.logger.Printf("Parsed %d bytes", len(input))

	return v, nil
}
