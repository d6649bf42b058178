package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/tinylang/tinylex/formatter"
	"github.com/tinylang/tinylex/loader"
	"github.com/tinylang/tinylex/output"
	"github.com/tinylang/tinylex/scanner"
	"github.com/tinylang/tinylex/telemetry"
)

type LexCmd struct {
	File      FileOrStdin `help:"Tiny input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	Output    string      `help:"Write the token listing to a file instead of stdout." short:"o" placeholder:"FILE"`
	Force     bool        `help:"Overwrite the output file without asking." short:"f"`
	KindWidth int         `help:"Width of the token-name column in the listing." default:"18"`
}

func (cmd *LexCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	runCtx := context.Background()

	var collector telemetry.Collector
	var lexTimer telemetry.Timer
	if globals.Telemetry {
		collector = telemetry.NewTimingCollector()
		runCtx = telemetry.WithCollector(runCtx, collector)
		lexTimer = collector.Start(fmt.Sprintf("lex %s", filepath.Base(cmd.File.Filename)))

		defer func() {
			lexTimer.End()
			_, _ = fmt.Fprintln(ctx.Stderr)
			collector.Report(ctx.Stderr, output.NewStyles(ctx.Stderr))
		}()
	}

	ldr := loader.New()
	src, err := cmd.File.LoadSource(runCtx, ldr)
	if err != nil {
		return err
	}

	scanTimer := telemetry.FromContext(runCtx).Start(fmt.Sprintf("scan %d byte(s)", len(src.Contents)))
	tokens := scanner.NewLexer(src.Contents).ScanAll()
	scanTimer.End()

	w, closeOutput, err := cmd.openOutput(ctx)
	if err != nil {
		return err
	}

	f := formatter.New(formatter.WithKindWidth(cmd.KindWidth))
	if err := f.Format(runCtx, tokens, w); err != nil {
		_ = closeOutput()
		return err
	}
	if err := closeOutput(); err != nil {
		return err
	}

	if cmd.Output != "" {
		printSuccess(ctx.Stderr, fmt.Sprintf("Wrote %d token(s) to %s", len(tokens), pathStyle.Render(cmd.Output)))
	}

	return nil
}

// openOutput resolves the listing destination. Writing over an existing
// file requires --force or an interactive confirmation.
func (cmd *LexCmd) openOutput(ctx *kong.Context) (w *os.File, closeOutput func() error, err error) {
	if cmd.Output == "" {
		return os.Stdout, func() error { return nil }, nil
	}

	if _, err := os.Stat(cmd.Output); err == nil && !cmd.Force {
		confirmed, err := promptYesNo(fmt.Sprintf("%s exists. Overwrite?", cmd.Output))
		if err != nil {
			return nil, nil, err
		}
		if !confirmed {
			printError(ctx.Stderr, fmt.Sprintf("refusing to overwrite %s (use --force)", cmd.Output))
			return nil, nil, NewCommandError(1)
		}
	}

	file, err := os.Create(cmd.Output)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create %s: %w", cmd.Output, err)
	}
	return file, file.Close, nil
}
