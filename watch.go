package figmatokens

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch runs the export once, then re-runs it every time the local input
// dump changes, passing each result (or error) to handle. It blocks until
// the context is cancelled. Watch requires a local input file; the remote
// source has nothing to watch.
func Watch(ctx context.Context, opts Options, handle func(*Result, error)) error {
	if opts.InputFile == "" {
		return fmt.Errorf("watch mode requires a local input file")
	}

	handle(Run(ctx, opts))

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the parent directory: editors and the plugin replace the file
	// on save, which drops a watch registered on the file itself.
	dir := filepath.Dir(opts.InputFile)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %q: %w", dir, err)
	}

	target := filepath.Clean(opts.InputFile)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			opts.logInfo("Input changed, re-exporting...")
			handle(Run(ctx, opts))

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			opts.logInfo("Watch error: %v", err)
		}
	}
}
