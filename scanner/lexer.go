package scanner

// Lexer implements a single-pass tokenizer for Tiny source code.
//
// Each call to Next skips whitespace, snapshots the token-start position and
// dispatches on the next byte. Malformed input never aborts a run: every
// failure is reported as an ERROR token carrying a diagnostic, and every
// path consumes at least one byte before reporting, so a run always
// terminates.

import (
	"errors"
	"fmt"
	"strconv"
)

// Lexer tokenizes a single in-memory source buffer. It holds two cursors:
// the current read position and the snapshot taken at the start of the token
// being produced.
type Lexer struct {
	src   []byte
	cur   Cursor
	start Cursor
}

// NewLexer creates a lexer over src. The lexer borrows src for the duration
// of the run; token payloads are independent copies.
func NewLexer(src []byte) *Lexer {
	return &Lexer{
		src: src,
		cur: NewCursor(src),
	}
}

// HasMore reports whether unconsumed input remains.
func (l *Lexer) HasMore() bool {
	return !l.cur.AtEnd()
}

// ScanAll runs the lexer to completion and returns the full token sequence,
// terminated by exactly one EOF token.
func (l *Lexer) ScanAll() []Token {
	tokens := make([]Token, 0, len(l.src)/4+1)
	for {
		tok := l.Next()
		tokens = append(tokens, tok)
		if tok.Kind == EOF {
			return tokens
		}
	}
}

// Next returns the next token. At end of input it returns an EOF token and
// keeps doing so on further calls.
func (l *Lexer) Next() Token {
	for {
		l.skipWhitespace()
		l.start = l.cur

		ch := l.cur.Peek()
		switch ch {
		case 0:
			// Peek returns 0 both at end of input and for a literal NUL
			// byte. Only the former is EOF; a stray NUL is just an
			// unrecognized character and must be consumed so the run
			// keeps making progress.
			if l.cur.AtEnd() {
				return l.token(EOF)
			}
			l.cur.Advance()
			return l.errorf("Unrecognized character '%c'", ch)
		case '*':
			return l.simply(MULTIPLY)
		case '%':
			return l.simply(MOD)
		case '+':
			return l.simply(ADD)
		case '-':
			return l.simply(SUBTRACT)
		case '{':
			return l.simply(LBRACE)
		case '}':
			return l.simply(RBRACE)
		case '(':
			return l.simply(LPAREN)
		case ')':
			return l.simply(RPAREN)
		case ';':
			return l.simply(SEMICOLON)
		case ',':
			return l.simply(COMMA)
		case '&':
			return l.expect('&', AND)
		case '|':
			return l.expect('|', OR)
		case '<':
			return l.follow('=', LESSEQ, LESS)
		case '>':
			return l.follow('=', GREATEREQ, GREATER)
		case '=':
			return l.follow('=', EQ, ASSIGN)
		case '!':
			return l.follow('=', NEQ, NOT)
		case '/':
			tok, ok := l.divideOrComment()
			if !ok {
				// Comment skipped; rescan from the top rather than
				// recursing, so runs of comments cannot grow the stack.
				continue
			}
			return tok
		case '\'':
			return l.charLit()
		case '"':
			return l.stringLit()
		default:
			if isIdentStart(ch) {
				return l.identifier()
			}
			if isDigit(ch) {
				return l.integerLit()
			}
			l.cur.Advance()
			return l.errorf("Unrecognized character '%c'", ch)
		}
	}
}

// token builds a payload-free token at the token-start position.
func (l *Lexer) token(kind Kind) Token {
	return Token{Kind: kind, Value: NoValue{}, Line: l.start.Line, Column: l.start.Column}
}

// simply consumes one byte and emits kind.
func (l *Lexer) simply(kind Kind) Token {
	l.cur.Advance()
	return l.token(kind)
}

// expect consumes the first byte of a required pair and demands that the
// next byte matches. On mismatch only the first byte is consumed, so the
// offending byte is rescanned by the following call.
func (l *Lexer) expect(expected byte, kind Kind) Token {
	if l.cur.Next() == expected {
		return l.simply(kind)
	}
	return l.errorf("Unrecognized character '%c'", l.cur.Peek())
}

// follow consumes one byte and emits ifYes when the next byte matches
// expected (consuming it too), ifNo otherwise.
func (l *Lexer) follow(expected byte, ifYes, ifNo Kind) Token {
	if l.cur.Next() == expected {
		return l.simply(ifYes)
	}
	return l.token(ifNo)
}

// divideOrComment handles '/'. A bare slash emits DIVIDE. A "/*" comment is
// skipped through its closing "*/"; the ok=false return tells Next to
// rescan. Reaching end of input inside the comment is a diagnostic.
func (l *Lexer) divideOrComment() (Token, bool) {
	if l.cur.Next() != '*' {
		return l.token(DIVIDE), true
	}
	l.cur.Advance()

	for !l.cur.AtEnd() {
		ch := l.cur.Peek()
		l.cur.Advance()
		if ch == '*' && l.cur.Peek() == '/' {
			l.cur.Advance()
			return Token{}, false
		}
	}
	return l.errorf("End-of-file in comment. Closing comment characters not found."), true
}

// charLit scans a character literal and emits INTEGER with the byte's code.
// Only the \n and \\ escapes are recognized.
func (l *Lexer) charLit() Token {
	n := int64(l.cur.Next())

	if n == '\'' {
		l.cur.Advance()
		return l.errorf("Empty character constant")
	}

	if n == '\\' {
		switch esc := l.cur.Next(); esc {
		case 'n':
			n = '\n'
		case '\\':
			n = '\\'
		default:
			if esc != 0 {
				l.cur.Advance()
			}
			return l.errorf("Unknown escape sequence \\%c", esc)
		}
	}

	if l.cur.Next() != '\'' {
		return l.errorf("Multi-character constant")
	}
	l.cur.Advance()

	return Token{Kind: INTEGER, Value: IntValue(n), Line: l.start.Line, Column: l.start.Column}
}

// stringLit scans a string literal and emits STRING with escapes resolved
// and the surrounding quotes stripped. The payload is an owned copy.
func (l *Lexer) stringLit() Token {
	l.cur.Advance()
	var text []byte

	for {
		switch ch := l.cur.Peek(); ch {
		case '"':
			l.cur.Advance()
			return Token{Kind: STRING, Value: TextValue(text), Line: l.start.Line, Column: l.start.Column}
		case '\\':
			switch esc := l.cur.Next(); esc {
			case 'n':
				text = append(text, '\n')
			case '\\':
				text = append(text, '\\')
			default:
				if esc != 0 {
					l.cur.Advance()
				}
				return l.errorf("Unknown escape sequence \\%c", esc)
			}
			l.cur.Advance()
		case '\n':
			return l.errorf("End-of-line while scanning string literal. Closing string character not found before end-of-line.")
		case 0:
			return l.errorf("End-of-file while scanning string literal. Closing string character not found.")
		default:
			text = append(text, ch)
			l.cur.Advance()
		}
	}
}

// identifier scans a letter/digit/underscore run and classifies it through
// the keyword table.
func (l *Lexer) identifier() Token {
	for isIdentPart(l.cur.Peek()) {
		l.cur.Advance()
	}

	word := string(l.src[l.start.Offset():l.cur.Offset()])
	if kind, ok := Lookup(word); ok {
		return l.token(kind)
	}
	return Token{Kind: IDENT, Value: TextValue(word), Line: l.start.Line, Column: l.start.Column}
}

// integerLit scans a digit run and emits INTEGER. A run immediately
// followed by identifier characters is malformed; the whole run is consumed
// so the diagnostic lexeme covers it.
func (l *Lexer) integerLit() Token {
	for isDigit(l.cur.Peek()) {
		l.cur.Advance()
	}

	if isIdentStart(l.cur.Peek()) {
		for isIdentPart(l.cur.Peek()) {
			l.cur.Advance()
		}
		return l.errorf("Invalid number. Starts like a number, but ends in non-numeric characters.")
	}

	text := string(l.src[l.start.Offset():l.cur.Offset()])
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return l.errorf("Number exceeds maximum value")
		}
		return l.errorf("Invalid number %s", text)
	}

	return Token{Kind: INTEGER, Value: IntValue(n), Line: l.start.Line, Column: l.start.Column}
}

// errorf builds an ERROR token. The diagnostic carries the description, the
// cursor position at the point of failure and the raw lexeme from the
// token-start snapshot up to the cursor. The token itself is positioned at
// the token start, like every other kind. errorf never advances; callers
// guarantee forward progress before reporting.
func (l *Lexer) errorf(format string, args ...any) Token {
	desc := fmt.Sprintf(format, args...)
	lexeme := string(l.src[l.start.Offset():l.cur.Offset()])
	msg := fmt.Sprintf("%s\n%*s(%d, %d): %s", desc, 28, "", l.cur.Line, l.cur.Column, lexeme)

	return Token{Kind: ERROR, Value: TextValue(msg), Line: l.start.Line, Column: l.start.Column}
}

func (l *Lexer) skipWhitespace() {
	for isSpace(l.cur.Peek()) {
		l.cur.Advance()
	}
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch == '_'
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}
