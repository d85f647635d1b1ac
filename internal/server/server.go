// Package server exposes detection and plan generation over HTTP.
package server

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/stackplan/pkg/errors"
	"github.com/matzehuels/stackplan/pkg/pipeline"
	"github.com/matzehuels/stackplan/pkg/plan"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// Server routes plan requests to a pipeline runner.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	root   string
	router chi.Router
}

// New creates a server. When root is non-empty, request paths are resolved
// relative to it and may not escape it, not even through symlinks.
func New(runner *pipeline.Runner, logger *log.Logger, root string) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if root != "" {
		if abs, err := filepath.Abs(root); err == nil {
			root = abs
		}
	}
	s := &Server{runner: runner, logger: logger, root: root}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/providers", s.handleProviders)
	r.Post("/detect", s.handleDetect)
	r.Post("/plan", s.handlePlan)

	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

type planRequest struct {
	Path     string            `json:"path"`
	Provider string            `json:"provider,omitempty"`
	Env      map[string]string `json:"env,omitempty"`
}

type planResponse struct {
	Provider string          `json:"provider"`
	Source   string          `json:"source"`
	Plan     *plan.BuildPlan `json:"plan,omitempty"`
	Digest   string          `json:"digest,omitempty"`
}

type errorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleProviders(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.runner.Registry.Names())
}

func (s *Server) handleDetect(w http.ResponseWriter, r *http.Request) {
	opts, release, err := s.decodeOptions(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	defer release()

	result, err := s.runner.Detect(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, planResponse{Provider: result.Provider, Source: result.Source})
}

func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	opts, release, err := s.decodeOptions(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	defer release()

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	digest, err := result.Plan.Digest()
	if err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInternal, err, "digest plan"))
		return
	}
	s.writeJSON(w, http.StatusOK, planResponse{
		Provider: result.Provider,
		Source:   result.Source,
		Plan:     result.Plan,
		Digest:   digest,
	})
}

// decodeOptions turns a request body into pipeline options. Request
// variables are never resolved against the server's own environment. The
// returned release func must be called once the options are no longer used.
func (s *Server) decodeOptions(w http.ResponseWriter, r *http.Request) (pipeline.Options, func(), error) {
	var req planRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return pipeline.Options{}, nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request")
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return pipeline.Options{}, nil, errors.New(errors.ErrCodeInvalidInput, "request body must hold a single JSON object")
	}

	names := make([]string, 0, len(req.Env))
	for k := range req.Env {
		names = append(names, k)
	}
	sort.Strings(names)
	pairs := make([]string, len(names))
	for i, k := range names {
		pairs[i] = k + "=" + req.Env[k]
	}

	opts := pipeline.Options{
		Provider: req.Provider,
		Env:      pairs,
	}
	release, err := s.resolveSource(req.Path, &opts)
	if err != nil {
		return pipeline.Options{}, nil, err
	}
	return opts, release, nil
}

// resolveSource points opts at the requested project. Under a root, the
// project is opened with os.Root so that neither the path nor any symlink
// inside the project can reach outside the root.
func (s *Server) resolveSource(path string, opts *pipeline.Options) (func(), error) {
	if s.root == "" {
		if path == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "path is required")
		}
		opts.Source = path
		return func() {}, nil
	}
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}

	root, err := os.OpenRoot(s.root)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "open root %s", s.root)
	}
	defer root.Close()

	project, err := root.OpenRoot(filepath.FromSlash(path))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	opts.Source = filepath.Join(s.root, filepath.FromSlash(path))
	opts.FS = project.FS()
	return func() { project.Close() }, nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("encode response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "request_id", middleware.GetReqID(r.Context()), "err", err)
	}
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	s.writeJSON(w, status, errorResponse{Code: code, Message: err.Error()})
}

// statusFor maps error codes onto HTTP status codes.
func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidPath, errors.ErrCodeInvalidVariable,
		errors.ErrCodeInvalidFormat, errors.ErrCodeUnknownProvider:
		return http.StatusBadRequest
	case errors.ErrCodeNoProvider:
		return http.StatusNotFound
	case errors.ErrCodeFileNotFound:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}
