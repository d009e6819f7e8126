package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/flywave/go-keplergl/builder"
)

var watchCmd = &cobra.Command{
	Use:   "watch FILE...",
	Short: "Re-validate map configs whenever they change",
	Long: `Validates every FILE once and again after each write. Editors that
save by renaming a temporary file are handled, the parent directories
are watched rather than the files themselves.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	return watch(ctx, builder.NewCache(logger), args, func(u builder.Update) {
		logProblems(u.Path, u.Err)
		if u.Err == nil {
			fmt.Fprintf(out, "%s: ok\n", u.Path)
		}
	})
}

// watch reports the state of every path once, then after each change
// until ctx is done.
func watch(ctx context.Context, cache *builder.Cache, paths []string, report func(builder.Update)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	watched := map[string]string{}
	dirs := map[string]bool{}
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		watched[abs] = p
		dir := filepath.Dir(abs)
		if !dirs[dir] {
			if err := w.Add(dir); err != nil {
				return fmt.Errorf("watching %s: %w", dir, err)
			}
			dirs[dir] = true
		}
	}

	if err := cache.Preload(paths...); err != nil {
		logger.Warn("initial load incomplete", zap.Error(err))
	}
	for _, p := range paths {
		report(cache.Refresh(p))
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			p, ok := watched[filepath.Clean(ev.Name)]
			if !ok || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)) {
				continue
			}
			u := cache.Refresh(p)
			if u.Reloaded || u.Err != nil {
				logger.Debug("map config changed", zap.String("path", p), zap.Stringer("op", ev.Op))
				report(u)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch error", zap.Error(err))
		}
	}
}
