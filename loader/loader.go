// Package loader reads Tiny source text into memory for lexing. The scanner
// works on complete in-memory buffers only; this package is the I/O glue
// that produces them, from a file path or from bytes already read elsewhere
// (the stdin path).
package loader

import (
	"context"
	"fmt"
	"os"

	"github.com/tinylang/tinylex/telemetry"
)

// Source is a named in-memory source buffer. The buffer is owned by the
// Source and outlives any lexing run over it.
type Source struct {
	Filename string
	Contents []byte
}

// Loader reads source files into Sources.
type Loader struct{}

// New creates a new Loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the file at filename into a Source.
func (l *Loader) Load(ctx context.Context, filename string) (*Source, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	collector := telemetry.FromContext(ctx)
	timer := collector.Start(fmt.Sprintf("load %s", filename))
	defer timer.End()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}

	return &Source{Filename: filename, Contents: data}, nil
}

// LoadBytes wraps already-read bytes in a Source, for input that did not
// come from a file the loader can open itself.
func (l *Loader) LoadBytes(ctx context.Context, filename string, data []byte) (*Source, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &Source{Filename: filename, Contents: data}, nil
}
