package runner

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// debounceWindow coalesces the burst of write events editors emit on save.
const debounceWindow = 300 * time.Millisecond

// Watch runs the solution, then re-runs it whenever a Go file under dir is
// written, until ctx is cancelled.
func (r *Runner) Watch(ctx context.Context, dir string, timed bool) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("runner: watch: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("runner: watch %s: %w", dir, err)
	}

	run := func() {
		if err := r.Run(ctx, timed); err != nil && ctx.Err() == nil {
			fmt.Fprintf(r.stderr(), "%v\n", err)
		}
	}
	run()

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	pending := make(chan struct{}, 1)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !strings.HasSuffix(event.Name, ".go") {
				continue
			}
			r.logger().Debug("change detected", zap.String("file", filepath.Base(event.Name)))
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounceWindow, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})
		case <-pending:
			fmt.Fprintln(r.stdout(), "--- re-running ---")
			run()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("runner: watch: %w", err)
		}
	}
}
