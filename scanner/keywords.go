package scanner

import "golang.org/x/exp/slices"

// keywords maps the reserved words of the language to their token kinds.
// Built once at init and never written afterwards, so concurrent lexing
// runs can share it freely.
var keywords = map[string]Kind{
	"else":  ELSE,
	"if":    IF,
	"print": PRINT,
	"putc":  PUTC,
	"while": WHILE,
}

// Lookup reports whether word is a reserved word, and its kind if so.
// Matching is exact and case-sensitive: "If" is an identifier.
func Lookup(word string) (Kind, bool) {
	k, ok := keywords[word]
	return k, ok
}

// Keywords returns the reserved words in sorted order.
func Keywords() []string {
	words := make([]string, 0, len(keywords))
	for w := range keywords {
		words = append(words, w)
	}
	slices.Sort(words)
	return words
}
