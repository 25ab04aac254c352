package commands

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tsawler/cadcodec/format"
	"github.com/tsawler/cadcodec/internal/cli/config"
)

// debounceWindow batches the several write events an editor produces for
// one save.
const debounceWindow = 200 * time.Millisecond

// NewWatchCommand creates the watch command.
func NewWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch FILE...",
		Short: "Convert drawings again whenever they change",
		Long: `Convert each file once, then watch it and convert it again after every
save until interrupted. Conversion errors are logged and watching continues.`,
		Example: `  cadcodec watch plan.dxf --to script`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)

			target, err := cfg.TargetFormat()
			if err != nil {
				return err
			}

			w, err := newFileWatcher(cfg, config.Logger(ctx), target, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer w.close()

			for _, input := range args {
				if err := w.add(input); err != nil {
					return err
				}
			}
			w.run(ctx)
			return nil
		},
	}
	AddTargetFlags(cmd)
	return cmd
}

// fileWatcher converts a set of files whenever they are written.
type fileWatcher struct {
	watcher *fsnotify.Watcher
	cfg     *config.Config
	logger  *zap.Logger
	target  format.Format
	out     io.Writer

	files   map[string]bool      // cleaned absolute paths being watched
	dirs    map[string]bool      // directories added to the watcher
	pending map[string]time.Time // last event time per changed file
}

func newFileWatcher(cfg *config.Config, logger *zap.Logger, target format.Format, out io.Writer) (*fileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	return &fileWatcher{
		watcher: watcher,
		cfg:     cfg,
		logger:  logger,
		target:  target,
		out:     out,
		files:   make(map[string]bool),
		dirs:    make(map[string]bool),
		pending: make(map[string]time.Time),
	}, nil
}

// add converts input once and starts watching it. The parent directory is
// watched so that editors which replace the file on save are followed.
func (w *fileWatcher) add(input string) error {
	path, err := filepath.Abs(input)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", input, err)
	}
	path = filepath.Clean(path)

	dir := filepath.Dir(path)
	if !w.dirs[dir] {
		if err := w.watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		w.dirs[dir] = true
	}
	w.files[path] = true

	w.convert(path)
	return nil
}

// run processes events until ctx is done.
func (w *fileWatcher) run(ctx context.Context) {
	ticker := time.NewTicker(debounceWindow / 2)
	defer ticker.Stop()

	w.logger.Info("watching", zap.Int("files", len(w.files)))
	for {
		select {
		case <-ctx.Done():
			w.logger.Debug("watch stopped")
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handle(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("watch error", zap.Error(err))

		case now := <-ticker.C:
			w.flush(now)
		}
	}
}

// handle records a write or create of a watched file.
func (w *fileWatcher) handle(event fsnotify.Event) {
	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return
	}
	path := filepath.Clean(event.Name)
	if !w.files[path] {
		return
	}
	w.logger.Debug("change detected", zap.String("file", path), zap.String("op", event.Op.String()))
	w.pending[path] = time.Now()
}

// flush converts the files whose last event is older than the debounce
// window.
func (w *fileWatcher) flush(now time.Time) {
	for path, at := range w.pending {
		if now.Sub(at) < debounceWindow {
			continue
		}
		delete(w.pending, path)
		w.convert(path)
	}
}

func (w *fileWatcher) convert(path string) {
	out, err := convertFile(w.logger, w.cfg, path, w.target)
	if err != nil {
		w.logger.Error("conversion failed", zap.String("file", path), zap.Error(err))
		return
	}
	_, _ = fmt.Fprintln(w.out, out)
}

func (w *fileWatcher) close() {
	if err := w.watcher.Close(); err != nil {
		w.logger.Error("failed to close watcher", zap.Error(err))
	}
}
