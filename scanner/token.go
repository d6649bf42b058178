package scanner

import "fmt"

// Kind classifies a scanned token.
type Kind uint8

const (
	// Operators
	MULTIPLY Kind = iota // *
	DIVIDE               // /
	MOD                  // %
	ADD                  // +
	SUBTRACT             // -
	NEGATE               // unary minus; declared for parsers, never produced by the lexer
	LESS                 // <
	LESSEQ               // <=
	GREATER              // >
	GREATEREQ            // >=
	EQ                   // ==
	NEQ                  // !=
	NOT                  // !
	ASSIGN               // =
	AND                  // &&
	OR                   // ||

	// Punctuation
	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }
	SEMICOLON // ;
	COMMA     // ,

	// Keywords
	IF
	ELSE
	WHILE
	PRINT
	PUTC

	// Literals
	IDENT
	INTEGER
	STRING

	// Special tokens
	EOF
	ERROR
)

var kindNames = map[Kind]string{
	MULTIPLY:  "Op_multiply",
	DIVIDE:    "Op_divide",
	MOD:       "Op_mod",
	ADD:       "Op_add",
	SUBTRACT:  "Op_subtract",
	NEGATE:    "Op_negate",
	LESS:      "Op_less",
	LESSEQ:    "Op_lessequal",
	GREATER:   "Op_greater",
	GREATEREQ: "Op_greaterequal",
	EQ:        "Op_equal",
	NEQ:       "Op_notequal",
	NOT:       "Op_not",
	ASSIGN:    "Op_assign",
	AND:       "Op_and",
	OR:        "Op_or",

	LPAREN:    "LeftParen",
	RPAREN:    "RightParen",
	LBRACE:    "LeftBrace",
	RBRACE:    "RightBrace",
	SEMICOLON: "Semicolon",
	COMMA:     "Comma",

	IF:    "Keyword_if",
	ELSE:  "Keyword_else",
	WHILE: "Keyword_while",
	PRINT: "Keyword_print",
	PUTC:  "Keyword_putc",

	IDENT:   "Identifier",
	INTEGER: "Integer",
	STRING:  "String",

	EOF:   "End_of_input",
	ERROR: "Error",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// Value is the payload carried by a token. It is a closed sum with exactly
// three cases: NoValue, IntValue and TextValue. Consumers type-switch over
// all three; there is no "assume integer" fallback.
type Value interface {
	isValue()
}

// NoValue marks tokens that carry no payload (operators, punctuation,
// keywords and end of input).
type NoValue struct{}

// IntValue carries the numeric payload of an INTEGER token, including
// character literals, which lex to their byte code.
type IntValue int64

// TextValue carries the textual payload of an IDENT, STRING or ERROR token.
// The text is always an owned copy, never a view into the source buffer.
type TextValue string

func (NoValue) isValue()   {}
func (IntValue) isValue()  {}
func (TextValue) isValue() {}

// Token is one classified unit of source text. Line and Column are the
// position of the first byte of the lexeme that produced it.
type Token struct {
	Kind   Kind
	Value  Value
	Line   int
	Column int
}

// Int returns the integer payload, or 0 when the token carries none.
func (t Token) Int() int64 {
	if v, ok := t.Value.(IntValue); ok {
		return int64(v)
	}
	return 0
}

// Text returns the text payload, or "" when the token carries none.
func (t Token) Text() string {
	if v, ok := t.Value.(TextValue); ok {
		return string(v)
	}
	return ""
}

func (t Token) String() string {
	switch v := t.Value.(type) {
	case NoValue:
		return fmt.Sprintf("%s at %d:%d", t.Kind, t.Line, t.Column)
	case IntValue:
		return fmt.Sprintf("%s(%d) at %d:%d", t.Kind, int64(v), t.Line, t.Column)
	case TextValue:
		return fmt.Sprintf("%s(%q) at %d:%d", t.Kind, string(v), t.Line, t.Column)
	}
	// Unset Value on a zero token.
	return fmt.Sprintf("%s at %d:%d", t.Kind, t.Line, t.Column)
}
