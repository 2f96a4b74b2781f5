// Package server wires the optimization pipeline to HTTP. It is thin on
// purpose: decode, delegate, map the error taxonomy to status codes,
// encode. No per-call failure may take the process down.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/brenonun3s/project-llm-optimizer/optimizer"
	"github.com/brenonun3s/project-llm-optimizer/utils"
)

// Optimizer is the slice of the optimization pipeline the server needs.
type Optimizer interface {
	Optimize(ctx context.Context, req optimizer.Request) (*optimizer.Response, error)
}

// Server serves the optimization API.
type Server struct {
	optimizer Optimizer
	logger    utils.Logger
	ready     bool
}

// New builds a Server. ready reports whether the generation credential is
// configured; it only affects what the health endpoint says, the
// per-call degradation is the optimizer's own concern.
func New(opt Optimizer, logger utils.Logger, ready bool) *Server {
	return &Server{
		optimizer: opt,
		logger:    logger,
		ready:     ready,
	}
}

// Handler returns the full route table wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /otimizar", s.handleOptimize)
	mux.HandleFunc("POST /otimizar/{$}", s.handleOptimize)
	mux.HandleFunc("GET /{$}", s.handleHealth)

	return withCORS(withRequestID(withLogging(mux, s.logger), s.logger))
}

type errorBody struct {
	Type   string `json:"type"`
	Detail string `json:"detail"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (s *Server) handleOptimize(w http.ResponseWriter, r *http.Request) {
	var req optimizer.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, optimizer.NewOptimizationError(
			optimizer.ErrorTypeInvalidRequest, "request body must be JSON with a prompt_original string", err))
		return
	}

	resp, err := s.optimizer.Optimize(r.Context(), req)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	resp := healthResponse{Status: "ok", Message: "prompt optimization API is running"}
	if !s.ready {
		resp.Status = "degraded"
		resp.Message = "generation client is not configured, optimization calls will fail"
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// statusFor maps the optimization error taxonomy to HTTP status codes.
// Upstream failures are the gateway's fault (502); contract violations in
// the model output stay plain 500s.
func statusFor(errType optimizer.ErrorType) int {
	switch errType {
	case optimizer.ErrorTypeInvalidRequest:
		return http.StatusBadRequest
	case optimizer.ErrorTypeServiceUnavailable:
		return http.StatusServiceUnavailable
	case optimizer.ErrorTypeUpstream:
		return http.StatusBadGateway
	case optimizer.ErrorTypeMalformedOutput, optimizer.ErrorTypeSchemaMismatch:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	errType := optimizer.TypeOf(err)
	status := statusFor(errType)

	typeString := "UnknownError"
	var optErr *optimizer.OptimizationError
	if errors.As(err, &optErr) {
		typeString = optErr.TypeString()
	}

	if status >= http.StatusInternalServerError {
		s.logger.Error("optimization failed", "type", typeString, "error", err)
	} else {
		s.logger.Info("optimization rejected", "type", typeString, "error", err)
	}

	s.writeJSON(w, status, errorResponse{Error: errorBody{
		Type:   typeString,
		Detail: err.Error(),
	}})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}
