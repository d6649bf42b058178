package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/tinylang/tinylex/loader"
	"github.com/tinylang/tinylex/output"
	"github.com/tinylang/tinylex/scanner"
	"github.com/tinylang/tinylex/telemetry"
)

type CheckCmd struct {
	File FileOrStdin `help:"Tiny input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
}

func (cmd *CheckCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	runCtx := context.Background()

	var collector telemetry.Collector
	var checkTimer telemetry.Timer
	if globals.Telemetry {
		collector = telemetry.NewTimingCollector()
		runCtx = telemetry.WithCollector(runCtx, collector)
		checkTimer = collector.Start(fmt.Sprintf("check %s", filepath.Base(cmd.File.Filename)))

		defer func() {
			checkTimer.End()
			_, _ = fmt.Fprintln(ctx.Stderr)
			collector.Report(ctx.Stderr, output.NewStyles(ctx.Stderr))
		}()
	}

	ldr := loader.New()
	src, err := cmd.File.LoadSource(runCtx, ldr)
	if err != nil {
		return err
	}

	result := runCheck(runCtx, src, ctx.Stdout, ctx.Stderr)
	if result.ExitCode != 0 {
		return result.Err
	}
	return nil
}

// runCheck scans one source and reports its lexical errors. Shared with the
// watch command, which re-runs it on every file change.
func runCheck(ctx context.Context, src *loader.Source, stdout, stderr io.Writer) CommandResult {
	scanTimer := telemetry.FromContext(ctx).Start(fmt.Sprintf("scan %d byte(s)", len(src.Contents)))
	tokens := scanner.NewLexer(src.Contents).ScanAll()
	scanTimer.End()

	var errorTokens []scanner.Token
	for _, tok := range tokens {
		if tok.Kind == scanner.ERROR {
			errorTokens = append(errorTokens, tok)
		}
	}

	if len(errorTokens) > 0 {
		renderer := NewErrorRenderer(src.Contents, src.Filename)
		_, _ = fmt.Fprintln(stderr, renderer.RenderAll(errorTokens))
		printError(stderr, fmt.Sprintf("%d lexical error(s) found", len(errorTokens)))
		return Failure(NewCommandError(1))
	}

	printSuccess(stdout, fmt.Sprintf("No lexical errors, %d token(s)", len(tokens)))
	return Success()
}
