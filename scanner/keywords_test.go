package scanner

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		word string
		want Kind
	}{
		{"else", ELSE},
		{"if", IF},
		{"print", PRINT},
		{"putc", PUTC},
		{"while", WHILE},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			kind, ok := Lookup(tt.word)
			assert.True(t, ok)
			assert.Equal(t, tt.want, kind)
		})
	}
}

func TestLookupRejectsNonKeywords(t *testing.T) {
	tests := []string{"If", "ELSE", "whilee", "prin", "put", ""}

	for _, word := range tests {
		t.Run(word, func(t *testing.T) {
			_, ok := Lookup(word)
			assert.False(t, ok)
		})
	}
}

func TestKeywordsSorted(t *testing.T) {
	assert.Equal(t, []string{"else", "if", "print", "putc", "while"}, Keywords())
}
