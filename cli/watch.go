package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fsnotify/fsnotify"

	"github.com/tinylang/tinylex/loader"
)

type WatchCmd struct {
	File string `help:"Tiny input filename to watch." arg:"" type:"existingfile"`
}

func (cmd *WatchCmd) Run(ctx *kong.Context, globals *Globals) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(cmd.File); err != nil {
		return fmt.Errorf("failed to watch %s: %w", cmd.File, err)
	}

	runCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	printInfof(ctx.Stderr, "Watching %s", pathStyle.Render(cmd.File))

	ldr := loader.New()
	cmd.runOnce(runCtx, ctx, ldr)

	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	// Editors often save in several steps, and atomic saves replace the
	// file entirely, so changes are debounced and the watch re-added.
	const debounceDelay = 100 * time.Millisecond

	for {
		select {
		case <-runCtx.Done():
			printInfof(ctx.Stderr, "Stopped watching %s", cmd.File)
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceDelay, func() {
				_ = watcher.Add(cmd.File)
				cmd.runOnce(runCtx, ctx, ldr)
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			printError(ctx.Stderr, fmt.Sprintf("watcher error: %v", err))
		}
	}
}

// runOnce reloads and re-checks the watched file.
func (cmd *WatchCmd) runOnce(runCtx context.Context, ctx *kong.Context, ldr *loader.Loader) {
	src, err := ldr.Load(runCtx, cmd.File)
	if err != nil {
		printError(ctx.Stderr, fmt.Sprintf("failed to reload %s: %v", cmd.File, err))
		return
	}
	_ = runCheck(runCtx, src, ctx.Stdout, ctx.Stderr)
}
