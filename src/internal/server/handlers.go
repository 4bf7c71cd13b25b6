// FILE: msglog/src/internal/server/handlers.go
package server

import (
	"encoding/json"
	"errors"

	"msglog/src/internal/core"
	"msglog/src/internal/version"

	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
)

const requestIDHeader = "X-Request-ID"

type appendRequest struct {
	Severity string `json:"severity"`
	Text     string `json:"text"`
}

func (s *Server) requestHandler(ctx *fasthttp.RequestCtx) {
	s.totalRequests.Add(1)

	requestID := string(ctx.Request.Header.Peek(requestIDHeader))
	if requestID == "" {
		requestID = uuid.New().String()
	}
	ctx.SetUserValue("request_id", requestID)
	ctx.Response.Header.Set(requestIDHeader, requestID)

	if !s.limiter.Allow(ctx.RemoteIP().String()) {
		s.rejectedRequests.Add(1)
		writeJSON(ctx, fasthttp.StatusTooManyRequests, map[string]any{
			"error":       "Rate limit exceeded",
			"retry_after": "1",
		})
		return
	}

	method := string(ctx.Method())
	switch path := string(ctx.Path()); {
	case path == "/messages" && method == fasthttp.MethodPost:
		s.handleAppend(ctx)
	case path == "/log" && method == fasthttp.MethodGet:
		s.handleRender(ctx)
	case path == "/log" && method == fasthttp.MethodDelete:
		s.handleClear(ctx)
	case path == "/log/save" && method == fasthttp.MethodPost:
		s.handleSave(ctx)
	case path == "/status" && method == fasthttp.MethodGet:
		s.handleStatus(ctx)
	default:
		writeJSON(ctx, fasthttp.StatusNotFound, map[string]string{
			"error": "Not Found",
			"hint":  "POST /messages, GET|DELETE /log, POST /log/save, GET /status",
		})
	}
}

func (s *Server) handleAppend(ctx *fasthttp.RequestCtx) {
	var req appendRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeJSON(ctx, fasthttp.StatusBadRequest, map[string]string{
			"error": "Invalid JSON: " + err.Error(),
		})
		return
	}

	severity, err := core.ParseSeverity(req.Severity)
	if err != nil {
		writeJSON(ctx, fasthttp.StatusBadRequest, map[string]string{
			"error": err.Error(),
		})
		return
	}

	persisted, err := s.store.AppendAndPersist(severity, req.Text, s.save)
	switch {
	case errors.Is(err, core.ErrInvalidSeverity), errors.Is(err, core.ErrEmptyMessage):
		writeJSON(ctx, fasthttp.StatusBadRequest, map[string]string{
			"error": err.Error(),
		})
		return
	case err != nil:
		// The message is stored; only the fatal save failed
		s.logger.Error("msg", "Failed to persist log after fatal message",
			"component", "http_server",
			"path", s.save.Path(),
			"request_id", ctx.UserValue("request_id"),
			"error", err)
		writeJSON(ctx, fasthttp.StatusCreated, map[string]any{
			"status":        "accepted",
			"records":       s.store.Len(),
			"persisted":     false,
			"persist_error": err.Error(),
		})
		return
	}

	if persisted {
		s.fatalPersists.Add(1)
		s.logger.Warn("msg", "Fatal message received, log persisted",
			"component", "http_server",
			"path", s.save.Path(),
			"request_id", ctx.UserValue("request_id"))
	}

	writeJSON(ctx, fasthttp.StatusCreated, map[string]any{
		"status":    "accepted",
		"records":   s.store.Len(),
		"persisted": persisted,
	})
}

func (s *Server) handleRender(ctx *fasthttp.RequestCtx) {
	text, ok := s.store.Render()
	if !ok {
		ctx.SetStatusCode(fasthttp.StatusNoContent)
		return
	}
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetContentType("text/plain; charset=utf-8")
	ctx.SetBodyString(text)
}

func (s *Server) handleClear(ctx *fasthttp.RequestCtx) {
	s.store.Clear()
	s.logger.Debug("msg", "Log cleared", "component", "http_server")
	ctx.SetStatusCode(fasthttp.StatusNoContent)
}

func (s *Server) handleSave(ctx *fasthttp.RequestCtx) {
	err := s.store.RenderTo(s.save)
	switch {
	case err == nil:
		writeJSON(ctx, fasthttp.StatusOK, map[string]any{
			"status": "saved",
			"path":   s.save.Path(),
		})
	case errors.Is(err, core.ErrEmptyLog):
		writeJSON(ctx, fasthttp.StatusConflict, map[string]string{
			"error": err.Error(),
		})
	default:
		s.logger.Error("msg", "Failed to persist log",
			"component", "http_server",
			"path", s.save.Path(),
			"request_id", ctx.UserValue("request_id"),
			"error", err)
		writeJSON(ctx, fasthttp.StatusInternalServerError, map[string]string{
			"error": err.Error(),
		})
	}
}

func (s *Server) handleStatus(ctx *fasthttp.RequestCtx) {
	status := s.GetStats()
	status["version"] = version.Short()
	writeJSON(ctx, fasthttp.StatusOK, status)
}

func writeJSON(ctx *fasthttp.RequestCtx, code int, body any) {
	ctx.SetStatusCode(code)
	ctx.SetContentType("application/json")
	json.NewEncoder(ctx).Encode(body)
}
