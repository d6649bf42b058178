package formatter

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/tinylang/tinylex/scanner"
)

func format(t *testing.T, input string, opts ...Option) string {
	t.Helper()

	tokens := scanner.NewLexer([]byte(input)).ScanAll()

	var buf bytes.Buffer
	err := New(opts...).Format(context.Background(), tokens, &buf)
	assert.NoError(t, err)

	return buf.String()
}

func TestFormatHeader(t *testing.T) {
	output := format(t, "")

	lines := strings.Split(output, "\n")
	assert.Equal(t, "Location  Token name        Value", lines[0])
	assert.Equal(t, "--------------------------------------", lines[1])
}

func TestFormatListing(t *testing.T) {
	output := format(t, `print "x"`)

	want := "Location  Token name        Value\n" +
		"--------------------------------------\n" +
		" 1    1   Keyword_print\n" +
		" 1    7   String            \"x\"\n" +
		" 1   10   End_of_input\n"
	assert.Equal(t, want, output)
}

func TestFormatValueColumns(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "integer",
			input: "42",
			want:  " 1    1   Integer           42\n",
		},
		{
			name:  "identifier",
			input: "count",
			want:  " 1    1   Identifier        count\n",
		},
		{
			name:  "character literal lexes to integer",
			input: "'a'",
			want:  " 1    1   Integer           97\n",
		},
		{
			name:  "operator has no value column",
			input: "<=",
			want:  " 1    1   Op_lessequal\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := format(t, tt.input)
			assert.Contains(t, output, tt.want)
		})
	}
}

func TestFormatReescapesStrings(t *testing.T) {
	// The lexer resolves escapes; the listing shows them re-inserted.
	output := format(t, `"a\nb\\c"`)
	assert.Contains(t, output, `String            "a\nb\\c"`)
}

func TestFormatErrorRow(t *testing.T) {
	output := format(t, "123abc")

	assert.Contains(t, output, "Error             Invalid number.")
	assert.Contains(t, output, "(1, 7): 123abc")
}

func TestFormatKindWidth(t *testing.T) {
	output := format(t, "42", WithKindWidth(24))
	assert.Contains(t, output, " 1    1   Integer                 42\n")

	// Widths below the longest kind name are clamped.
	output = format(t, "42", WithKindWidth(4))
	assert.Contains(t, output, " 1    1   Integer           42\n")
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "abc", "abc"},
		{"newline", "a\nb", `a\nb`},
		{"backslash", `a\b`, `a\\b`},
		{"both", "\\\n", `\\\n`},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.input))
		})
	}
}
