package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ShayCichocki/featcheck/internal/config"
	"github.com/ShayCichocki/featcheck/internal/logging"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-run verification whenever files under the base directory change",
	Long: `Run the verification once, then again after every change to the base
directory, to a directory holding manifest files, or to the manifest itself.
A run that fails with an error (for example a half-edited manifest) is
reported and watching continues. Stop with Ctrl-C.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 300*time.Millisecond, "Wait this long after the last change before re-running")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	watchRun(ctx, cfg, logger, out)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dirs, err := watchDirs(cfg)
	if err != nil {
		return err
	}
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		logger.Debug("watching", zap.String("dir", dir))
	}
	fmt.Fprintf(out, "\nWatching %d director%s for changes (Ctrl-C to stop)...\n", len(dirs), plural(len(dirs), "y", "ies"))

	var rerun <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0 {
				logger.Debug("change detected", zap.String("path", event.Name), zap.String("op", event.Op.String()))
				rerun = time.After(watchDebounce)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", zap.Error(err))
		case <-rerun:
			rerun = nil
			fmt.Fprintf(out, "\n--- change detected at %s ---\n\n", time.Now().Format("15:04:05"))
			watchRun(ctx, cfg, logger, out)
		}
	}
}

// watchRun performs one verification inside the watch loop. Errors are
// printed and logged rather than returned so the next change re-runs.
func watchRun(ctx context.Context, cfg *config.Config, logger *zap.Logger, out io.Writer) {
	if _, err := runOnce(ctx, cfg, logger, out); err != nil {
		logger.Warn("verification failed", zap.Error(err))
		fmt.Fprintf(out, "Error: %v\n", err)
	}
}

// watchDirs returns the existing directories that can hold manifest or key
// files: the base directory, the manifest file's directory, and every parent
// directory named by a path. An unreadable manifest only drops its feature
// paths from the result.
func watchDirs(cfg *config.Config) ([]string, error) {
	base := cfg.Project.BasePath
	info, err := os.Stat(base)
	if err != nil {
		return nil, fmt.Errorf("base directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("base directory %s is not a directory", base)
	}

	seen := map[string]bool{filepath.Clean(base): true}
	addDir := func(dir string) {
		dir = filepath.Clean(dir)
		if seen[dir] {
			return
		}
		if fi, err := os.Stat(dir); err == nil && fi.IsDir() {
			seen[dir] = true
		}
	}
	addParent := func(rel string) {
		addDir(filepath.Dir(filepath.Join(base, rel)))
	}

	if cfg.Project.Manifest != "" {
		addDir(filepath.Dir(cfg.Project.Manifest))
	}
	if m, err := cfg.LoadManifest(); err == nil {
		for _, f := range m.Features {
			for _, p := range f.Paths {
				addParent(p)
			}
		}
	}
	for _, k := range cfg.Project.KeyFiles {
		addParent(k)
	}

	dirs := make([]string, 0, len(seen))
	for d := range seen {
		dirs = append(dirs, d)
	}
	sort.Strings(dirs)
	return dirs, nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
