// Package formatter renders a token sequence as a fixed-column listing for
// diagnostic output. It is a thin consumer of the scanner: one header, one
// separator, then one row per token with its location, kind name and value.
package formatter

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/tinylang/tinylex/scanner"
	"github.com/tinylang/tinylex/telemetry"
)

const defaultKindWidth = 18

// Formatter writes token listings.
type Formatter struct {
	kindWidth int
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithKindWidth sets the width of the token-name column. Values below the
// longest kind name are clamped so columns never collide.
func WithKindWidth(width int) Option {
	return func(f *Formatter) {
		f.kindWidth = width
	}
}

// New creates a Formatter with the given options.
func New(opts ...Option) *Formatter {
	f := &Formatter{kindWidth: defaultKindWidth}
	for _, opt := range opts {
		opt(f)
	}
	if f.kindWidth < defaultKindWidth {
		f.kindWidth = defaultKindWidth
	}
	return f
}

// Format writes the listing for tokens to w.
func (f *Formatter) Format(ctx context.Context, tokens []scanner.Token, w io.Writer) error {
	collector := telemetry.FromContext(ctx)
	timer := collector.Start(fmt.Sprintf("format.render %d token(s)", len(tokens)))
	defer timer.End()

	var sb strings.Builder
	sb.WriteString("Location  Token name        Value\n")
	sb.WriteString("--------------------------------------\n")

	for _, tok := range tokens {
		f.writeRow(&sb, tok)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// writeRow renders one token: 2-wide line and column, then the kind name
// padded to the value column, then the payload if the kind carries one.
func (f *Formatter) writeRow(sb *strings.Builder, tok scanner.Token) {
	fmt.Fprintf(sb, "%2d   %2d   ", tok.Line, tok.Column)

	switch tok.Kind {
	case scanner.STRING:
		fmt.Fprintf(sb, "%-*s\"%s\"\n", f.kindWidth, tok.Kind, Sanitize(tok.Text()))
	case scanner.INTEGER:
		fmt.Fprintf(sb, "%-*s%d\n", f.kindWidth, tok.Kind, tok.Int())
	case scanner.IDENT, scanner.ERROR:
		fmt.Fprintf(sb, "%-*s%s\n", f.kindWidth, tok.Kind, tok.Text())
	default:
		fmt.Fprintf(sb, "%s\n", tok.Kind)
	}
}

// Sanitize re-inserts the \n and \\ escape sequences into s for display.
// The lexer resolves escapes while scanning, so listings have to undo that
// to show the literal as it was written.
func Sanitize(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			sb.WriteString(`\n`)
		case '\\':
			sb.WriteString(`\\`)
		default:
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}
