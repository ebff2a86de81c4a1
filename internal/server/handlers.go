package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/agbru/dogyears/internal/ageconv"
	apperrors "github.com/agbru/dogyears/internal/errors"
	"github.com/agbru/dogyears/internal/logging"
	"github.com/agbru/dogyears/internal/submission"
)

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

type convertResponse struct {
	Age      float64      `json:"age"`
	Size     ageconv.Size `json:"size"`
	HumanAge int          `json:"humanAge"`
}

type factResponse struct {
	Fact string `json:"fact"`
}

type calculateRequest struct {
	Age  json.RawMessage `json:"age"`
	Size string          `json:"size"`
}

type calculateResponse struct {
	ID        string       `json:"id"`
	Age       float64      `json:"age"`
	Size      ageconv.Size `json:"size"`
	HumanAge  int          `json:"humanAge"`
	Fact      string       `json:"fact,omitempty"`
	FactError string       `json:"factError,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	resp := errorResponse{Error: err.Error()}
	var verr apperrors.ValidationError
	if errors.As(err, &verr) {
		resp = errorResponse{Error: verr.Message, Field: verr.Field}
	}
	writeJSON(w, status, resp)
}

func (s *Server) allowMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method {
		return true
	}
	s.logger.Debug("method not allowed",
		logging.String("method", r.Method),
		logging.String("path", r.URL.Path),
	)
	w.Header().Set("Allow", method)
	s.writeError(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
	return false
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	if !s.allowMethod(w, r, http.MethodGet) {
		return
	}
	q := r.URL.Query()
	age, size, err := ageconv.ParseInput(q.Get("age"), q.Get("size"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, convertResponse{Age: age, Size: size, HumanAge: ageconv.Convert(age, size)})
}

func (s *Server) handleFact(w http.ResponseWriter, r *http.Request) {
	if !s.allowMethod(w, r, http.MethodGet) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.config.FactTimeout)
	defer cancel()

	f, err := s.provider.Fetch(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && r.Context().Err() == nil {
			err = apperrors.TimeoutError{Operation: "fact fetch", Limit: s.config.FactTimeout}
		}
		s.logger.Error("fact fetch failed", err, logging.String("request_id", RequestID(r.Context())))
		s.writeError(w, http.StatusServiceUnavailable, apperrors.FactUnavailableError{Cause: err})
		return
	}
	writeJSON(w, http.StatusOK, factResponse{Fact: f.Text})
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	if !s.allowMethod(w, r, http.MethodPost) {
		return
	}
	var req calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, apperrors.WrapError(err, "invalid request body"))
		return
	}
	// The age may be sent as a JSON number or a numeric string.
	age, size, err := ageconv.ParseInput(strings.Trim(string(req.Age), `"`), req.Size)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	ctrl := submission.New(s.provider,
		submission.WithTimeout(s.config.FactTimeout),
		submission.WithLogger(s.logger),
		submission.WithRecorder(s.metrics.Recorder()),
	)
	views, err := ctrl.Start(r.Context(), age, size)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	v, ok := <-views
	if !ok {
		s.writeError(w, http.StatusInternalServerError, errors.New("submission did not complete"))
		return
	}

	resp := calculateResponse{ID: v.ID, Age: v.Age, Size: v.Size, HumanAge: v.HumanAge}
	if v.Fact != nil {
		resp.Fact = v.Fact.Text
	}
	if v.Err != nil {
		resp.FactError = v.Err.Error()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !s.allowMethod(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if !s.allowMethod(w, r, http.MethodGet) {
		return
	}
	s.metrics.WritePrometheus(w, r)
}
