package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/tinylang/tinylex/scanner"
)

var (
	errCaretStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"})
	errContextStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#808080", Dark: "#808080"})
)

// ErrorRenderer renders error tokens with terminal styling and the source
// line they point into.
type ErrorRenderer struct {
	source   []byte
	filename string
}

// NewErrorRenderer creates a renderer over the source the tokens came from.
func NewErrorRenderer(source []byte, filename string) *ErrorRenderer {
	return &ErrorRenderer{source: source, filename: filename}
}

// Render formats one error token as a location header, the offending source
// line and a caret under the error column.
func (r *ErrorRenderer) Render(tok scanner.Token) string {
	desc := Description(tok)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s:%d:%d: %s\n", r.filename, tok.Line, tok.Column, desc))

	line, ok := r.sourceLine(tok.Line)
	if !ok {
		return sb.String()
	}

	sb.WriteString("   " + errContextStyle.Render(line) + "\n")

	// Pad by the display width of everything before the error column, so
	// the caret lands under the right cell even with tabs or wide runes.
	col := tok.Column - 1
	if col > len(line) {
		col = len(line)
	}
	pad := runewidth.StringWidth(line[:col])
	sb.WriteString("   " + strings.Repeat(" ", pad) + errCaretStyle.Render("^") + "\n")

	return sb.String()
}

// RenderAll formats every error token, separated by blank lines.
func (r *ErrorRenderer) RenderAll(tokens []scanner.Token) string {
	parts := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Kind != scanner.ERROR {
			continue
		}
		parts = append(parts, r.Render(tok))
	}
	return strings.Join(parts, "\n")
}

// sourceLine returns the 1-based line n of the source, without its newline.
func (r *ErrorRenderer) sourceLine(n int) (string, bool) {
	lines := strings.Split(string(r.source), "\n")
	if n < 1 || n > len(lines) {
		return "", false
	}
	return strings.TrimSuffix(lines[n-1], "\r"), true
}

// Description extracts the human-readable description from an error token's
// diagnostic, which also carries the failure position and raw lexeme on a
// second line.
func Description(tok scanner.Token) string {
	text := tok.Text()
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		return text[:i]
	}
	return text
}
