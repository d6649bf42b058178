package cli

import (
	"context"
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/tinylang/tinylex/loader"
	"github.com/tinylang/tinylex/scanner"
)

// DoctorCmd provides doctor utilities for debugging the tokenizer.
type DoctorCmd struct {
	Dump     DumpCmd     `cmd:"" help:"Dump the raw token records from a Tiny source file."`
	Keywords KeywordsCmd `cmd:"" help:"List the reserved words of the language."`
}

// DumpCmd dumps the structural token records, payloads and all.
type DumpCmd struct {
	File FileOrStdin `help:"Tiny input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
}

func (cmd *DumpCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	src, err := cmd.File.LoadSource(context.Background(), loader.New())
	if err != nil {
		return err
	}

	tokens := scanner.NewLexer(src.Contents).ScanAll()
	repr.New(ctx.Stdout, repr.Indent("  ")).Println(tokens)

	return nil
}

// KeywordsCmd lists the reserved words with their token kinds.
type KeywordsCmd struct{}

func (cmd *KeywordsCmd) Run(ctx *kong.Context) error {
	for _, word := range scanner.Keywords() {
		kind, _ := scanner.Lookup(word)
		_, _ = fmt.Fprintf(ctx.Stdout, "%-8s %s\n", word, kind)
	}
	return nil
}
