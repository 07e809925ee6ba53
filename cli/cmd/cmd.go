package cmd

import (
	"context"
	"io"
	"os"

	"github.com/alecthomas/kong"
)

// CacheIdentifier is the kong interpolation variable holding the cache
// directory path.
const CacheIdentifier = "cacheDir"

// stdio is the special path indicating standard input or output.
const stdio = "-"

// contextKey stores a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given
// kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

// KongContextFrom retrieves the kong.Context stored by WithContext, or
// nil if none was stored.
func KongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// openInput opens the named input file, or returns os.Stdin for "-".
// The returned closer is a no-op for stdin.
func openInput(path string) (io.Reader, func() error, error) {
	if path == stdio {
		return os.Stdin, func() error { return nil }, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	return file, file.Close, nil
}

// createOutput creates the named output file, or returns os.Stdout for
// "-". The returned closer is a no-op for stdout.
func createOutput(path string) (io.Writer, func() error, error) {
	if path == stdio {
		return os.Stdout, func() error { return nil }, nil
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}

	return file, file.Close, nil
}
