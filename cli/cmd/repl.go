package cmd

import (
	"bufio"
	"context"
	"io"

	"github.com/ardnew/setcomp/cli/cmd/repl"
	"github.com/ardnew/setcomp/log"
)

// Repl starts an interactive session that compiles manifest statements
// incrementally.
type Repl struct {
	Source string `help:"Manifest to preload, or '-' for stdin"     short:"f" optional:""`
	Cache  string `help:"Directory for history and transient files" default:"${cacheDir}" hidden:""`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	var source string

	if r.Source != "" {
		in, closeIn, err := openInput(r.Source)
		if err != nil {
			return err
		}

		data, err := io.ReadAll(bufio.NewReader(in))
		closeIn()

		if err != nil {
			return err
		}

		source = string(data)
	}

	return repl.Run(ctx, source, r.Cache, log.Default())
}
