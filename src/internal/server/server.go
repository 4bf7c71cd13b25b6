// FILE: msglog/src/internal/server/server.go
package server

import (
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"msglog/src/internal/config"
	"msglog/src/internal/msglog"
	"msglog/src/internal/ratelimit"
	"msglog/src/internal/sink"

	"github.com/lixenwraith/log"
	"github.com/valyala/fasthttp"
)

// Server exposes a shared message store over HTTP
type Server struct {
	cfg       config.ServerConfig
	store     *msglog.SyncStore
	save      *sink.FileSink
	limiter   *ratelimit.Limiter
	server    *fasthttp.Server
	listener  net.Listener
	logger    *log.Logger
	startTime time.Time
	wg        sync.WaitGroup

	// Statistics
	totalRequests    atomic.Uint64
	rejectedRequests atomic.Uint64
	fatalPersists    atomic.Uint64
}

// New creates a server over store. savePath is the file written by
// POST /log/save and after every fatal message.
func New(cfg config.ServerConfig, store *msglog.SyncStore, savePath string, logger *log.Logger) *Server {
	s := &Server{
		cfg:       cfg,
		store:     store,
		save:      sink.NewFileSink(savePath),
		limiter:   ratelimit.New(cfg.RequestsPerSecond, int(cfg.BurstSize), time.Minute),
		logger:    logger,
		startTime: time.Now(),
	}

	s.server = &fasthttp.Server{
		Handler:            s.requestHandler,
		Name:               "msglog",
		MaxRequestBodySize: int(cfg.MaxBodyBytes),
		ReadTimeout:        10 * time.Second,
		WriteTimeout:       10 * time.Second,
		CloseOnShutdown:    true,
	}

	return s
}

// Addr returns the bound address once started
func (s *Server) Addr() string {
	if s.listener == nil {
		return fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	}
	return s.listener.Addr().String()
}

// Start binds the listener and serves in the background
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	s.listener = ln

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.logger.Info("msg", "HTTP server starting",
			"component", "http_server",
			"address", ln.Addr().String(),
			"save_path", s.save.Path())

		if err := s.server.Serve(ln); err != nil {
			s.logger.Error("msg", "HTTP server failed",
				"component", "http_server",
				"address", addr,
				"error", err)
		}
	}()

	return nil
}

// Stop shuts the server down and waits for the serve loop to exit
func (s *Server) Stop() {
	s.logger.Info("msg", "Stopping HTTP server")

	if err := s.server.Shutdown(); err != nil {
		s.logger.Error("msg", "Error shutting down HTTP server",
			"component", "http_server",
			"error", err)
	}
	s.limiter.Stop()
	s.wg.Wait()

	s.logger.Info("msg", "HTTP server stopped")
}

// GetStats returns server statistics
func (s *Server) GetStats() map[string]any {
	return map[string]any{
		"records":           s.store.Len(),
		"uptime_seconds":    int64(time.Since(s.startTime).Seconds()),
		"total_requests":    s.totalRequests.Load(),
		"rejected_requests": s.rejectedRequests.Load(),
		"fatal_persists":    s.fatalPersists.Load(),
		"rate_limit":        s.limiter.GetStats(),
		"save":              saveStats(s.save.GetStats()),
	}
}

func saveStats(st sink.SinkStats) map[string]any {
	stats := map[string]any{
		"path":          st.Details["path"],
		"total_saves":   st.TotalWrites,
		"total_bytes":   st.TotalBytes,
		"failed_saves":  st.FailedWrites,
		"last_saved_at": nil,
	}
	if !st.LastWrite.IsZero() {
		stats["last_saved_at"] = st.LastWrite.Format(time.RFC3339)
	}
	return stats
}
