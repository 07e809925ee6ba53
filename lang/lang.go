package lang

import (
	"context"
	"io"

	"github.com/ardnew/setcomp/log"
)

// Option configures parsing and compilation.
type Option func(*AST)

// WithLogger attaches a logger used for trace output during parsing and
// compilation.
func WithLogger(logger log.Logger) Option {
	return func(ast *AST) { ast.logger = logger }
}

func applyOptions(ast *AST, opts ...Option) {
	for _, opt := range opts {
		opt(ast)
	}
}

// CompileString parses and compiles a manifest from a string.
func CompileString(
	ctx context.Context,
	input string,
	opts ...Option,
) (*Document, error) {
	ast, err := ParseString(ctx, input, opts...)
	if err != nil {
		return nil, err
	}

	return ast.Compile(ctx)
}

// CompileReader parses and compiles a manifest from an io.Reader.
func CompileReader(
	ctx context.Context,
	r io.Reader,
	opts ...Option,
) (*Document, error) {
	ast, err := ParseReader(ctx, r, opts...)
	if err != nil {
		return nil, err
	}

	return ast.Compile(ctx)
}
