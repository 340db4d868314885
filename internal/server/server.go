// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the analysis engine over HTTP. Every handler calls
// only pure engine functions, so requests are independent and safe to serve
// concurrently without locking.
package server

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/baditaflorin/l"
	"github.com/valyala/fasthttp"

	"github.com/pdiddy/originality/internal/analyze"
	"github.com/pdiddy/originality/internal/quality"
	"github.com/pdiddy/originality/internal/similarity"
	"github.com/pdiddy/originality/internal/textutil"
	"github.com/pdiddy/originality/pkg/types"
)

const (
	defaultPort           = 8080
	defaultReadTimeout    = 30 * time.Second
	defaultWriteTimeout   = 30 * time.Second
	defaultMaxRequestBody = 1 << 20
)

// Server wires the engine to a fasthttp listener.
type Server struct {
	cfg      types.ServerConfig
	analyzer *analyze.Scorer
	maxChars int
	logger   l.Logger
	httpSrv  *fasthttp.Server
}

// New builds a Server. analyzer supplies the single-text scorer (with or
// without a source generator); maxChars is the input truncation boundary.
func New(cfg types.ServerConfig, analyzer *analyze.Scorer, maxChars int, logger l.Logger) *Server {
	if cfg.Port <= 0 {
		cfg.Port = defaultPort
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = defaultReadTimeout
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = defaultWriteTimeout
	}
	if cfg.MaxRequestBody <= 0 {
		cfg.MaxRequestBody = defaultMaxRequestBody
	}
	return &Server{cfg: cfg, analyzer: analyzer, maxChars: maxChars, logger: logger}
}

// ListenAndServe blocks serving requests until Shutdown is called.
func (s *Server) ListenAndServe() error {
	s.httpSrv = &fasthttp.Server{
		Handler:            s.handle,
		ReadTimeout:        s.cfg.ReadTimeout,
		WriteTimeout:       s.cfg.WriteTimeout,
		MaxRequestBodySize: s.cfg.MaxRequestBody,
	}
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.logger.Info("Server listening", "address", addr)
	return s.httpSrv.ListenAndServe(addr)
}

// Shutdown gracefully stops the listener.
func (s *Server) Shutdown() error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown()
}

func (s *Server) handle(ctx *fasthttp.RequestCtx) {
	start := time.Now()
	ctx.Response.Header.Set("Content-Type", "application/json")

	switch string(ctx.Path()) {
	case "/health":
		s.handleHealth(ctx)
	case "/analyze":
		s.handleAnalyze(ctx)
	case "/compare":
		s.handleCompare(ctx)
	case "/quality":
		s.handleQuality(ctx)
	default:
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		s.writeError(ctx, "Not found")
	}

	s.logger.Info("Request processed",
		"method", string(ctx.Method()),
		"path", string(ctx.Path()),
		"status", ctx.Response.StatusCode(),
		"duration", time.Since(start),
	)
}

// analyzeRequest is the body for /analyze and /quality.
type analyzeRequest struct {
	Text string `json:"text"`
}

// compareRequest is the body for /compare.
type compareRequest struct {
	Text1 string `json:"text1"`
	Text2 string `json:"text2"`
}

type compareResponse struct {
	Similarity int `json:"similarity"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	s.writeJSON(ctx, map[string]string{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

func (s *Server) handleAnalyze(ctx *fasthttp.RequestCtx) {
	var req analyzeRequest
	if !s.readPost(ctx, &req) {
		return
	}
	if req.Text == "" {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		s.writeError(ctx, "text is required")
		return
	}

	result := s.analyzer.Score(textutil.Truncate(req.Text, s.maxChars))
	ctx.SetStatusCode(fasthttp.StatusOK)
	s.writeJSON(ctx, result)
}

func (s *Server) handleCompare(ctx *fasthttp.RequestCtx) {
	var req compareRequest
	if !s.readPost(ctx, &req) {
		return
	}
	if req.Text1 == "" || req.Text2 == "" {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		s.writeError(ctx, "both text1 and text2 are required")
		return
	}

	score := similarity.Score(textutil.Truncate(req.Text1, s.maxChars), textutil.Truncate(req.Text2, s.maxChars))
	ctx.SetStatusCode(fasthttp.StatusOK)
	s.writeJSON(ctx, compareResponse{Similarity: score})
}

func (s *Server) handleQuality(ctx *fasthttp.RequestCtx) {
	var req analyzeRequest
	if !s.readPost(ctx, &req) {
		return
	}
	if req.Text == "" {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		s.writeError(ctx, "text is required")
		return
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	s.writeJSON(ctx, quality.Assess(textutil.Truncate(req.Text, s.maxChars)))
}

// readPost decodes a POST body into v, writing the error response itself
// when the method or body is invalid.
func (s *Server) readPost(ctx *fasthttp.RequestCtx, v any) bool {
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		s.writeError(ctx, "Method not allowed")
		return false
	}
	if err := json.Unmarshal(ctx.PostBody(), v); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		s.writeError(ctx, "Invalid request: "+err.Error())
		return false
	}
	return true
}

func (s *Server) writeJSON(ctx *fasthttp.RequestCtx, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		s.logger.Error("Error marshaling JSON response", "error", err)
		s.writeError(ctx, "Internal server error")
		return
	}
	ctx.SetBody(data)
}

func (s *Server) writeError(ctx *fasthttp.RequestCtx, message string) {
	data, err := json.Marshal(errorResponse{Error: message})
	if err != nil {
		ctx.SetBodyString(`{"error":"Internal server error"}`)
		return
	}
	ctx.SetBody(data)
}
