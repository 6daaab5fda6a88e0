package source

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/fsnotify/fsnotify"
)

// FileSource reads a configuration file and can watch it for rewrites.
type FileSource struct {
	path   string
	logger *slog.Logger
}

func NewFileSource(logger *slog.Logger, path string) *FileSource {
	return &FileSource{
		logger: logger,
		path:   path,
	}
}

func (f *FileSource) Name() string {
	return f.path
}

func (f *FileSource) Read() (string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return "", fmt.Errorf("cannot read file: %w", err)
	}
	return string(data), nil
}

// Watch sends the full file content on out after every write to the file,
// until ctx is cancelled. Unlike a log tail, a configuration file is re-read
// from the start on each change: the whole text is the unit of translation.
func (f *FileSource) Watch(ctx context.Context, out chan<- string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("cannot create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(f.path); err != nil {
		return fmt.Errorf("cannot add file to watcher: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				f.logger.Debug("fsnotify watcher channel is closed.")
				return nil
			}
			if !event.Has(fsnotify.Write) {
				// Editors that save by replacing the file give it a new
				// inode, and those changes are not reported against the
				// old path.
				f.logger.Debug("Received unhandled event from fsnotify.", "event", event.String())
				continue
			}

			text, err := f.Read()
			if err != nil {
				return err
			}

			select {
			case out <- text:
			case <-ctx.Done():
				return ctx.Err()
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}
