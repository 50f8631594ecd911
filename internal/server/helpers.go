package server

import (
	"encoding/json"
	"net/http"

	"github.com/vastuplan/vastuplan/pkg/errors"
)

// maxRequestBodySize bounds JSON request bodies.
const maxRequestBodySize = 1 << 20 // 1 MB

type errorResponse struct {
	Status string `json:"status"`
	Detail string `json:"detail"`
}

// readJSON decodes a JSON request body with a size limit.
func (s *Server) readJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if err.Error() == "http: request body too large" {
			s.writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		} else {
			s.writeError(w, http.StatusBadRequest, "invalid request body")
		}
		return false
	}
	return true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.Logger.Error("writing response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, errorResponse{Status: "error", Detail: message})
}

// writePipelineError maps structured errors onto HTTP statuses. Input
// errors surface their message; everything else is hidden behind a
// generic 500.
func (s *Server) writePipelineError(w http.ResponseWriter, err error) {
	if errors.IsInput(err) {
		s.writeError(w, http.StatusBadRequest, errors.UserMessage(err))
		return
	}
	s.Logger.Error("request failed", "error", err, "code", errors.GetCode(err))
	s.writeError(w, http.StatusInternalServerError, "internal server error")
}
