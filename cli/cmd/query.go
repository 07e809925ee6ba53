package cmd

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"

	"github.com/expr-lang/expr"

	"github.com/ardnew/setcomp/lang"
	"github.com/ardnew/setcomp/log"
)

// Query compiles a manifest and evaluates an expression against the
// resulting document. Constant names are bound as variables.
type Query struct {
	Expr   string `arg:"" help:"Expression to evaluate" name:"expr"`
	Source string `       help:"Manifest input file or '-' for stdin" default:"-" short:"f"`
}

// Run executes the query command.
func (q *Query) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	in, closeIn, err := openInput(q.Source)
	if err != nil {
		return err
	}
	defer closeIn()

	doc, err := lang.CompileReader(
		ctx,
		bufio.NewReader(in),
		lang.WithLogger(log.Default()),
	)
	if err != nil {
		return err
	}

	env := doc.ToMap()

	program, err := expr.Compile(q.Expr,
		expr.Env(env),
		expr.AllowUndefinedVariables(),
	)
	if err != nil {
		return lang.WrapError(err).
			With(slog.String("command", "query"))
	}

	result, err := expr.Run(program, env)
	if err != nil {
		return lang.WrapError(err).
			With(slog.String("command", "query"))
	}

	log.DebugContext(ctx, "query evaluated",
		slog.String("expr", q.Expr),
		slog.String("source", q.Source),
	)

	fmt.Println(formatResult(result))

	return nil
}

// formatResult renders a query result for display. Strings print bare;
// everything else uses the default Go representation.
func formatResult(v any) string {
	if s, ok := v.(string); ok {
		return s
	}

	return fmt.Sprintf("%v", v)
}
