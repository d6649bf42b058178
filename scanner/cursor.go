package scanner

// Cursor tracks a read position into an in-memory source buffer along with
// 1-based line and column counters. Line and Column always describe the next
// unread byte: consuming a newline bumps Line and resets Column to 1.
//
// Cursor is a value type on purpose. The lexer snapshots the token-start
// position with a plain assignment, so both cursors share the same underlying
// source buffer without any copying.
type Cursor struct {
	src    []byte
	pos    int
	Line   int
	Column int
}

// NewCursor returns a cursor positioned at the start of src.
// The cursor borrows src; the buffer must stay alive for the lexing run.
func NewCursor(src []byte) Cursor {
	return Cursor{src: src, Line: 1, Column: 1}
}

// Peek returns the next unread byte without consuming it, or 0 when the
// input is exhausted.
func (c *Cursor) Peek() byte {
	if c.pos >= len(c.src) {
		return 0
	}
	return c.src[c.pos]
}

// Advance consumes exactly one byte, updating the line/column bookkeeping.
// Advancing at end of input is a no-op.
func (c *Cursor) Advance() {
	if c.pos >= len(c.src) {
		return
	}
	if c.src[c.pos] == '\n' {
		c.Line++
		c.Column = 1
	} else {
		c.Column++
	}
	c.pos++
}

// Next consumes one byte and returns the byte that follows it.
func (c *Cursor) Next() byte {
	c.Advance()
	return c.Peek()
}

// Offset returns the byte offset of the next unread byte.
func (c *Cursor) Offset() int {
	return c.pos
}

// AtEnd reports whether the input is exhausted.
func (c *Cursor) AtEnd() bool {
	return c.pos >= len(c.src)
}
