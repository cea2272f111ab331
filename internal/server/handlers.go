package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/leapstack-labs/autolint/pkg/core"
	"github.com/leapstack-labs/autolint/pkg/lint"
)

// LintRequest is the body of POST /lint.
type LintRequest struct {
	Content string          `json:"content"`
	Strict  bool            `json:"strict,omitempty"`
	Rules   map[string]bool `json:"rules,omitempty"`
}

// FixRequest is the body of POST /fix.
type FixRequest struct {
	Content string          `json:"content"`
	FixMode string          `json:"fix_mode,omitempty"`
	Strict  bool            `json:"strict,omitempty"`
	Rules   map[string]bool `json:"rules,omitempty"`
}

// ErrorResponse is returned for every non-2xx status.
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status         string `json:"status"`
	EngineVersion  string `json:"engine_version"`
	RulesetVersion string `json:"ruleset_version"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, HealthResponse{
		Status:         "ok",
		EngineVersion:  lint.EngineVersion,
		RulesetVersion: lint.RulesetVersion,
	})
}

func (s *Server) handleRules(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, s.engine.Catalog())
}

func (s *Server) handleLint(w http.ResponseWriter, r *http.Request) {
	var req LintRequest
	if !s.decode(w, r, &req) {
		return
	}

	report, err := s.engine.Lint(req.Content, lint.LintOptions{Strict: req.Strict, RuleConfig: req.Rules})
	if err != nil {
		s.engineError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, report)
}

func (s *Server) handleFix(w http.ResponseWriter, r *http.Request) {
	var req FixRequest
	if !s.decode(w, r, &req) {
		return
	}

	mode := s.defaultFixMode
	if req.FixMode != "" {
		parsed, err := core.ParseFixMode(req.FixMode)
		if err != nil {
			s.writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		mode = parsed
	}

	result, err := s.engine.Fix(req.Content, lint.FixOptions{Mode: mode, Strict: req.Strict, RuleConfig: req.Rules})
	if err != nil {
		s.engineError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, result)
}

// decode reads a JSON body capped at maxBodyBytes. It writes the error
// response itself and reports whether decoding succeeded.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			s.writeError(w, r, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
		case errors.Is(err, io.EOF):
			s.writeError(w, r, http.StatusBadRequest, "request body is empty")
		default:
			s.writeError(w, r, http.StatusBadRequest, "malformed JSON: "+err.Error())
		}
		return false
	}
	if dec.More() {
		s.writeError(w, r, http.StatusBadRequest, "malformed JSON: trailing data after object")
		return false
	}
	return true
}

// engineError maps engine errors to statuses. Unknown rule ids are the
// caller's fault; anything else is ours.
func (s *Server) engineError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, lint.ErrUnknownRule) {
		s.writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	s.logger.Error("engine failure", "request_id", middleware.GetReqID(r.Context()), "error", err)
	s.writeError(w, r, http.StatusInternalServerError, "internal error")
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	s.writeJSON(w, r, status, ErrorResponse{Error: msg, RequestID: middleware.GetReqID(r.Context())})
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("failed to write response", "request_id", middleware.GetReqID(r.Context()), "error", err)
	}
}
