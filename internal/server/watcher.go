package server

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	derrors "git.home.luguber.info/inful/docsify-tools/internal/errors"
	"git.home.luguber.info/inful/docsify-tools/internal/logfields"
	"git.home.luguber.info/inful/docsify-tools/internal/sidebar"
)

// debounceInterval batches bursts of filesystem events (editors often
// write + rename + chmod for a single save) into one rebuild.
const debounceInterval = 250 * time.Millisecond

// newDocsWatcher creates an fsnotify watcher registered on the docs root
// and every non-ignored subdirectory.
func newDocsWatcher(docsRoot string) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, derrors.ServerError("failed to create file watcher", err)
	}

	walkErr := filepath.WalkDir(docsRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != docsRoot && skipWatchDir(d.Name()) {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
	if walkErr != nil {
		_ = watcher.Close()
		return nil, derrors.ServerError("failed to watch docs directory", walkErr)
	}
	return watcher, nil
}

func skipWatchDir(name string) bool {
	return strings.HasPrefix(name, ".") || strings.Contains(name, "node_modules")
}

// watchLoop consumes watcher events, debounces them, and triggers sidebar
// rebuilds. Newly created directories are added to the watch set.
func (s *Server) watchLoop(ctx context.Context, watcher *fsnotify.Watcher) {
	var debounce *time.Timer
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !s.relevantEvent(event) {
				continue
			}
			if event.Op.Has(fsnotify.Create) {
				if st, err := os.Stat(event.Name); err == nil && st.IsDir() && !skipWatchDir(filepath.Base(event.Name)) {
					if err := watcher.Add(event.Name); err != nil {
						s.logger.Warn("Failed to watch new directory",
							logfields.Dir(event.Name), logfields.Error(err))
					}
				}
			}
			s.logger.Debug("Docs change detected",
				logfields.Path(event.Name), slog.String("op", event.Op.String()))
			if debounce == nil {
				debounce = time.NewTimer(debounceInterval)
			} else {
				if !debounce.Stop() {
					select {
					case <-debounce.C:
					default:
					}
				}
				debounce.Reset(debounceInterval)
			}
			pending = debounce.C
		case <-pending:
			pending = nil
			s.rebuild()
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			s.logger.Warn("File watcher error", logfields.Error(err))
		}
	}
}

// relevantEvent filters out events that must not trigger a rebuild: the
// generated sidebar itself (which would loop forever) and hidden files.
func (s *Server) relevantEvent(event fsnotify.Event) bool {
	base := filepath.Base(event.Name)
	if base == sidebar.FileName {
		return false
	}
	if strings.HasPrefix(base, ".") {
		return false
	}
	return true
}
