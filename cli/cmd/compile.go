package cmd

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"

	"github.com/ardnew/setcomp/lang"
	"github.com/ardnew/setcomp/log"
)

// Compile compiles a manifest file to a serialized document.
type Compile struct {
	Input  string `arg:"" help:"Manifest input file or '-' for stdin"   name:"input"`
	Output string `arg:"" help:"Document output file or '-' for stdout" name:"output" default:"-" optional:""`

	Format string `help:"Output format" enum:"yaml,json" default:"yaml"`
	Indent int    `help:"Output indentation width" default:"2"`
}

// Run executes the compile command.
func (c *Compile) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	in, closeIn, err := openInput(c.Input)
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

	log.DebugContext(ctx, "manifest compiled",
		slog.String("input", c.Input),
		slog.Int("constant_count", doc.Len()),
	)

	out, closeOut, err := createOutput(c.Output)
	if err != nil {
		return err
	}

	switch c.Format {
	case "json":
		err = doc.FormatJSON(ctx, out, c.Indent)
	default:
		err = doc.FormatYAML(ctx, out, c.Indent)
	}

	if err != nil {
		closeOut()

		return err
	}

	err = closeOut()
	if err != nil {
		return err
	}

	// The conversion notice goes to stdout only when the document does
	// not, matching batch-converter conventions.
	if c.Output != stdio {
		fmt.Printf("Converted '%s' to '%s'\n", c.Input, c.Output)
	} else {
		log.InfoContext(ctx, "converted",
			slog.String("input", c.Input),
			slog.String("output", c.Output),
		)
	}

	return nil
}
