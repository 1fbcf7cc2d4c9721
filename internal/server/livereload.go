package server

import (
	"bufio"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"git.home.luguber.info/inful/docsify-tools/internal/metrics"
)

// LiveReloadHub manages SSE clients for reload broadcasts.
type LiveReloadHub struct {
	mu        sync.RWMutex
	nextID    int
	clients   map[int]*lrClient
	collector *metrics.Collector
	closed    bool
}

type lrClient struct {
	id   int
	ch   chan struct{}
	done chan struct{}
}

// NewLiveReloadHub creates a hub; the collector may be nil.
func NewLiveReloadHub(collector *metrics.Collector) *LiveReloadHub {
	return &LiveReloadHub{clients: map[int]*lrClient{}, collector: collector}
}

// ServeHTTP implements the SSE endpoint at /livereload.
func (h *LiveReloadHub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	closed := h.closed
	h.mu.RUnlock()
	if closed {
		http.Error(w, "livereload shutting down", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "stream unsupported", http.StatusInternalServerError)
		return
	}

	client := &lrClient{ch: make(chan struct{}, 8), done: make(chan struct{})}
	h.mu.Lock()
	client.id = h.nextID
	h.nextID++
	h.clients[client.id] = client
	h.mu.Unlock()
	h.updateGauge()

	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(": connected\n\n"); err != nil {
		slog.Debug("livereload write", "error", err)
		h.removeClient(client.id)
		return
	}
	if err := bw.Flush(); err == nil {
		flusher.Flush()
	}

	hb := time.NewTicker(30 * time.Second)
	defer hb.Stop()

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			h.removeClient(client.id)
			return
		case <-client.done:
			h.removeClient(client.id)
			return
		case <-hb.C:
			if _, err := bw.WriteString(": ping\n\n"); err == nil {
				_ = bw.Flush()
				flusher.Flush()
			} else {
				slog.Debug("livereload ping write", "error", err)
			}
		case <-client.ch:
			if _, err := bw.WriteString("data: reload\n\n"); err == nil {
				_ = bw.Flush()
				flusher.Flush()
			} else {
				slog.Debug("livereload broadcast write", "error", err)
			}
		}
	}
}

// Broadcast notifies every connected client that the docs changed.
func (h *LiveReloadHub) Broadcast() {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.clients {
		select {
		case c.ch <- struct{}{}:
		default:
			// Slow client; it will pick up the next broadcast.
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *LiveReloadHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close disconnects all clients and rejects new connections.
func (h *LiveReloadHub) Close() {
	h.mu.Lock()
	h.closed = true
	for _, c := range h.clients {
		close(c.done)
	}
	h.mu.Unlock()
}

func (h *LiveReloadHub) removeClient(id int) {
	h.mu.Lock()
	delete(h.clients, id)
	h.mu.Unlock()
	h.updateGauge()
}

func (h *LiveReloadHub) updateGauge() {
	if h.collector == nil {
		return
	}
	h.collector.LiveReloadClients.Set(float64(h.ClientCount()))
}
