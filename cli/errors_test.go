package cli

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/tinylang/tinylex/scanner"
)

func TestErrorRendererRender(t *testing.T) {
	source := []byte("x = 1;\ny = 12abc;\n")
	tokens := scanner.NewLexer(source).ScanAll()

	var errTok scanner.Token
	found := false
	for _, tok := range tokens {
		if tok.Kind == scanner.ERROR {
			errTok = tok
			found = true
			break
		}
	}
	assert.True(t, found, "expected an error token")

	renderer := NewErrorRenderer(source, "prog.t")
	output := renderer.Render(errTok)

	// Location header with the token-start position.
	assert.Contains(t, output, "prog.t:2:5: Invalid number.")

	// The offending source line, indented.
	assert.Contains(t, output, "y = 12abc;")

	// A caret under the error column.
	lines := strings.Split(output, "\n")
	foundCaret := false
	for _, line := range lines {
		if strings.Contains(line, "^") {
			foundCaret = true
			assert.True(t, strings.HasPrefix(line, "   "), "caret line should be indented")
		}
	}
	assert.True(t, foundCaret, "expected a caret line")
}

func TestErrorRendererRenderAll(t *testing.T) {
	source := []byte("&|")
	tokens := scanner.NewLexer(source).ScanAll()

	renderer := NewErrorRenderer(source, "prog.t")
	output := renderer.RenderAll(tokens)

	assert.Contains(t, output, "prog.t:1:1:")
	assert.Contains(t, output, "prog.t:1:2:")

	// Non-error tokens are skipped entirely.
	clean := scanner.NewLexer([]byte("x;")).ScanAll()
	assert.Equal(t, "", renderer.RenderAll(clean))
}

func TestErrorRendererColumnPastLineEnd(t *testing.T) {
	// End-of-file diagnostics can point one past the last column; the
	// renderer must not slice out of range.
	source := []byte(`"abc`)
	tokens := scanner.NewLexer(source).ScanAll()

	renderer := NewErrorRenderer(source, "prog.t")
	output := renderer.Render(tokens[0])

	assert.Contains(t, output, "End-of-file while scanning string literal.")
	assert.Contains(t, output, `"abc`)
}

func TestDescription(t *testing.T) {
	tokens := scanner.NewLexer([]byte("123abc")).ScanAll()
	assert.Equal(t,
		"Invalid number. Starts like a number, but ends in non-numeric characters.",
		Description(tokens[0]))

	// Tokens without a diagnostic yield their empty text.
	assert.Equal(t, "", Description(scanner.Token{Kind: scanner.SEMICOLON, Value: scanner.NoValue{}}))
}
