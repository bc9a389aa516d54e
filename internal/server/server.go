// Package server exposes the render pipeline over HTTP.
//
// A chart description is posted as TOML or JSON and the rendered artifact
// comes back in the response body:
//
//	curl -X POST --data-binary @chart.toml 'localhost:8080/v1/render?format=png'
//
// Charts received over the network may only carry inline data; data files
// are rejected.
package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"math"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/matzehuels/stackplot/pkg/config"
	"github.com/matzehuels/stackplot/pkg/errors"
	"github.com/matzehuels/stackplot/pkg/observability"
	"github.com/matzehuels/stackplot/pkg/pipeline"
)

const (
	// DefaultMaxBody bounds the size of a posted chart.
	DefaultMaxBody = 8 << 20

	// DefaultTimeout bounds a single request.
	DefaultTimeout = 30 * time.Second

	// HeaderRenderID carries the id assigned to each render request.
	HeaderRenderID = "X-Render-ID"
)

// Server serves chart renders.
type Server struct {
	Runner  *pipeline.Runner
	Logger  *log.Logger
	MaxBody int64
	Timeout time.Duration
}

// New creates a server around runner. A nil logger discards output.
func New(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Server{
		Runner:  runner,
		Logger:  logger,
		MaxBody: DefaultMaxBody,
		Timeout: DefaultTimeout,
	}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.Timeout))

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/render", s.handleRender)
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.Logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.Logger.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	format := r.URL.Query().Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, r, err)
		return
	}

	opts := pipeline.Options{
		Formats: []string{format},
		Refresh: r.URL.Query().Has("refresh"),
	}
	if v := r.URL.Query().Get("scale"); v != "" {
		scale, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(scale) || math.IsInf(scale, 0) {
			s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "scale %q is not a number", v))
			return
		}
		opts.Scale = scale
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.MaxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			s.writeError(w, r, errors.New(errors.ErrCodeTooLarge, "chart exceeds %d bytes", s.MaxBody))
			return
		}
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "read body"))
		return
	}

	chart, err := config.Decode(body, chartFormat(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	id := uuid.NewString()
	res, err := s.Runner.Execute(ctx, chart, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	cache := "miss"
	if res.CacheInfo.RenderHit {
		cache = "hit"
	}
	s.Logger.Debug("render served", "id", id, "format", format, "digest", res.Digest[:12], "cache", cache)

	data := res.Artifacts[format]
	w.Header().Set("Content-Type", pipeline.ContentTypes[format])
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set(HeaderRenderID, id)
	w.Header().Set("X-Cache", cache)
	w.Header().Set("ETag", strconv.Quote(res.Digest))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// chartFormat picks the decoder from ?type= or the Content-Type header.
// TOML is the default.
func chartFormat(r *http.Request) config.Format {
	switch r.URL.Query().Get("type") {
	case "json":
		return config.FormatJSON
	case "toml":
		return config.FormatTOML
	}
	mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mt == "application/json" {
		return config.FormatJSON
	}
	return config.FormatTOML
}

// =============================================================================
// Errors
// =============================================================================

type errorBody struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Request string `json:"request_id,omitempty"`
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	observability.HTTP().OnError(r.Context(), r.Method, r.URL.Path, err)
	if status >= http.StatusInternalServerError {
		s.Logger.Error("request failed", "path", r.URL.Path, "error", err)
	} else {
		s.Logger.Debug("request rejected", "path", r.URL.Path, "error", err)
	}

	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeJSON(w, status, errorBody{
		Error:   errors.UserMessage(err),
		Code:    string(code),
		Request: middleware.GetReqID(r.Context()),
	})
}

// statusFor maps error codes to HTTP status codes.
func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidConfig, errors.ErrCodeInvalidData,
		errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidPath:
		return http.StatusBadRequest
	case errors.ErrCodeTooLarge:
		return http.StatusRequestEntityTooLarge
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	case errors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	}
	if stderrors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// =============================================================================
// Middleware
// =============================================================================

// logRequests reports each request to the HTTP hooks and the logger.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hooks := observability.HTTP()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		d := time.Since(start)
		hooks.OnResponse(r.Context(), r.Method, r.URL.Path, status, d)
		s.Logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration", d.Round(time.Millisecond),
			"id", middleware.GetReqID(r.Context()))
	})
}
