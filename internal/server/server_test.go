// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/baditaflorin/l"
	"github.com/valyala/fasthttp"

	"github.com/pdiddy/originality/internal/analyze"
	"github.com/pdiddy/originality/pkg/types"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	logger, err := l.NewStandardFactory().CreateLogger(l.Config{
		Output:     io.Discard,
		JsonFormat: true,
		BufferSize: 4096,
	})
	if err != nil {
		t.Fatalf("creating logger: %v", err)
	}
	t.Cleanup(func() { logger.Close() })

	return New(types.ServerConfig{}, analyze.New(nil), 1000, logger)
}

func doRequest(s *Server, method, path, body string) *fasthttp.RequestCtx {
	var req fasthttp.Request
	req.Header.SetMethod(method)
	req.SetRequestURI("http://localhost" + path)
	if body != "" {
		req.SetBodyString(body)
	}

	var ctx fasthttp.RequestCtx
	ctx.Init(&req, nil, nil)
	s.handle(&ctx)
	return &ctx
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	ctx := doRequest(s, fasthttp.MethodGet, "/health", "")

	if ctx.Response.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("status = %d, want 200", ctx.Response.StatusCode())
	}
	var body map[string]string
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("parsing response: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %q, want ok", body["status"])
	}
}

func TestAnalyze(t *testing.T) {
	s := newTestServer(t)
	text := "The protocol allows efficient data transmission. " +
		"The protocol allows efficient data transmission."
	payload, _ := json.Marshal(map[string]string{"text": text})

	ctx := doRequest(s, fasthttp.MethodPost, "/analyze", string(payload))

	if ctx.Response.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("status = %d, want 200: %s", ctx.Response.StatusCode(), ctx.Response.Body())
	}
	var result types.AnalysisResult
	if err := json.Unmarshal(ctx.Response.Body(), &result); err != nil {
		t.Fatalf("parsing response: %v", err)
	}
	if result.PlagiarismScore != 65 {
		t.Errorf("PlagiarismScore = %d, want 65", result.PlagiarismScore)
	}
	if result.PlagiarismScore+result.HumanWriteScore != 100 {
		t.Errorf("scores do not sum to 100: %+v", result)
	}
}

func TestAnalyzeValidation(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name       string
		method     string
		body       string
		wantStatus int
	}{
		{"wrong method", fasthttp.MethodGet, "", fasthttp.StatusMethodNotAllowed},
		{"invalid json", fasthttp.MethodPost, "{not json", fasthttp.StatusBadRequest},
		{"missing text", fasthttp.MethodPost, `{}`, fasthttp.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := doRequest(s, tt.method, "/analyze", tt.body)
			if ctx.Response.StatusCode() != tt.wantStatus {
				t.Errorf("status = %d, want %d", ctx.Response.StatusCode(), tt.wantStatus)
			}
			if !strings.Contains(string(ctx.Response.Body()), "error") {
				t.Errorf("body %q carries no error field", ctx.Response.Body())
			}
		})
	}
}

func TestCompare(t *testing.T) {
	s := newTestServer(t)
	payload, _ := json.Marshal(map[string]string{
		"text1": "the quick brown fox",
		"text2": "the quick brown fox",
	})

	ctx := doRequest(s, fasthttp.MethodPost, "/compare", string(payload))

	if ctx.Response.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("status = %d, want 200: %s", ctx.Response.StatusCode(), ctx.Response.Body())
	}
	var result struct {
		Similarity int `json:"similarity"`
	}
	if err := json.Unmarshal(ctx.Response.Body(), &result); err != nil {
		t.Fatalf("parsing response: %v", err)
	}
	if result.Similarity != 100 {
		t.Errorf("Similarity = %d, want 100", result.Similarity)
	}
}

func TestCompareValidation(t *testing.T) {
	s := newTestServer(t)

	ctx := doRequest(s, fasthttp.MethodPost, "/compare", `{"text1":"only one side"}`)
	if ctx.Response.StatusCode() != fasthttp.StatusBadRequest {
		t.Errorf("status = %d, want 400", ctx.Response.StatusCode())
	}
}

func TestQuality(t *testing.T) {
	s := newTestServer(t)
	payload, _ := json.Marshal(map[string]string{"text": "The methodology is comprehensive"})

	ctx := doRequest(s, fasthttp.MethodPost, "/quality", string(payload))

	if ctx.Response.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("status = %d, want 200: %s", ctx.Response.StatusCode(), ctx.Response.Body())
	}
	var result types.WritingQuality
	if err := json.Unmarshal(ctx.Response.Body(), &result); err != nil {
		t.Fatalf("parsing response: %v", err)
	}
	if result.OverallScore != 84 {
		t.Errorf("OverallScore = %d, want 84", result.OverallScore)
	}
	if !result.IsHighQuality {
		t.Error("IsHighQuality = false, want true")
	}
}

func TestUnknownPath(t *testing.T) {
	s := newTestServer(t)
	ctx := doRequest(s, fasthttp.MethodGet, "/nope", "")

	if ctx.Response.StatusCode() != fasthttp.StatusNotFound {
		t.Errorf("status = %d, want 404", ctx.Response.StatusCode())
	}
}
