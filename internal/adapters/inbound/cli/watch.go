package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/syntropysoft/praetorian-go/internal/domain"
	"github.com/syntropysoft/praetorian-go/internal/logging"
)

const watchDebounce = 300 * time.Millisecond

// watchAndValidate re-runs validation whenever a configured file (or
// praetorian.yaml itself) changes. Events are debounced so a burst of
// editor writes triggers one run. stop is for tests; nil runs forever.
func watchAndValidate(
	cmd *cobra.Command,
	workspacePath string,
	cfg domain.Config,
	run func() (*domain.ValidationResult, error),
	jsonOutput bool,
	stop <-chan struct{},
) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	// Watch parents instead of the files: editors replace files on
	// save, and a watch on the old inode goes silent.
	dirs := map[string]bool{workspacePath: true}
	for _, f := range cfg.Files {
		if !filepath.IsAbs(f) {
			f = filepath.Join(workspacePath, f)
		}
		dirs[filepath.Dir(f)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	validateOnce := func() {
		result, err := run()
		if err != nil {
			logging.Logger.Errorw("validation run failed", "error", err)
			return
		}
		if err := renderValidation(cmd, result, jsonOutput); err != nil {
			logging.Logger.Errorw("rendering result failed", "error", err)
		}
	}

	validateOnce()

	var timer *time.Timer
	for {
		select {
		case <-stop:
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(watchDebounce, validateOnce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logging.Logger.Errorw("watch error", "error", err)
		}
	}
}
