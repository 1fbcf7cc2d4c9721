// Package server implements the local preview server: it serves the docs
// directory, watches it for changes, regenerates the sidebar, and pushes
// reload events to connected browsers.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"git.home.luguber.info/inful/docsify-tools/internal/config"
	derrors "git.home.luguber.info/inful/docsify-tools/internal/errors"
	"git.home.luguber.info/inful/docsify-tools/internal/logfields"
	"git.home.luguber.info/inful/docsify-tools/internal/metrics"
	"git.home.luguber.info/inful/docsify-tools/internal/server/middleware"
	"git.home.luguber.info/inful/docsify-tools/internal/sidebar"
)

// Server is the preview server for a local docs directory.
type Server struct {
	cfg       *config.Config
	docsRoot  string
	logger    *slog.Logger
	collector *metrics.Collector
	hub       *LiveReloadHub
}

// New creates a preview server for the configured docs directory.
func New(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	absDocs, err := filepath.Abs(cfg.Docs)
	if err != nil {
		return nil, derrors.ServerError("failed to resolve docs directory", err)
	}
	if st, statErr := os.Stat(absDocs); statErr != nil || !st.IsDir() {
		return nil, derrors.ValidationFailed("docs", "docs dir not found or not a directory: "+absDocs)
	}

	collector := metrics.NewCollector()
	return &Server{
		cfg:       cfg,
		docsRoot:  absDocs,
		logger:    logger,
		collector: collector,
		hub:       NewLiveReloadHub(collector),
	}, nil
}

// Handler builds the HTTP handler tree.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/livereload", s.hub)
	mux.Handle("/metrics", s.collector.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	mux.HandleFunc("/", s.handleDocs)
	return middleware.Chain(s.logger, s.collector)(mux)
}

// Run performs an initial sidebar build, starts the file watcher and the
// HTTP server, and blocks until the context is cancelled or the server
// fails.
func (s *Server) Run(ctx context.Context) error {
	s.rebuild()

	watcher, err := newDocsWatcher(s.docsRoot)
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Serve.Port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- derrors.ServerError("preview server failed", err)
		}
	}()
	go s.watchLoop(ctx, watcher)

	s.logger.Info("Preview server listening",
		logfields.Port(s.cfg.Serve.Port),
		logfields.Docs(s.docsRoot),
		slog.String("url", fmt.Sprintf("http://localhost:%d", s.cfg.Serve.Port)))

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}

	s.hub.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return derrors.ServerError("preview server shutdown failed", err)
	}
	return nil
}

// handleDocs serves files under the docs root, injecting the livereload
// script into index.html when livereload is enabled.
func (s *Server) handleDocs(w http.ResponseWriter, r *http.Request) {
	upath := path.Clean(r.URL.Path)
	if upath == "/" || strings.HasSuffix(r.URL.Path, "/") {
		upath = path.Join(upath, "index.html")
	}

	if s.cfg.Serve.LiveReloadEnabled() && strings.HasSuffix(upath, "/index.html") {
		full := filepath.Join(s.docsRoot, filepath.FromSlash(strings.TrimPrefix(upath, "/")))
		if data, err := os.ReadFile(full); err == nil {
			if injected, ierr := InjectLiveReload(data); ierr == nil {
				w.Header().Set("Content-Type", "text/html; charset=utf-8")
				_, _ = w.Write(injected)
				return
			}
		}
	}

	http.FileServer(http.Dir(s.docsRoot)).ServeHTTP(w, r)
}

// rebuild regenerates the sidebar and notifies connected browsers.
func (s *Server) rebuild() {
	count, err := sidebar.Generate(s.docsRoot, sidebar.Options{
		Ignore:        s.cfg.Sidebar.Ignore,
		HeadingTitles: s.cfg.Sidebar.HeadingTitles,
	})
	if err != nil {
		s.collector.RebuildFailures.Inc()
		s.logger.Error("Sidebar rebuild failed", logfields.Error(err))
		return
	}
	s.collector.RebuildsTotal.Inc()
	s.logger.Info("Sidebar rebuilt", logfields.Count(count))
	s.hub.Broadcast()
}
