package handlers

import (
	"encoding/json"
	"fracture-density-service/internal/platform/logger"
	"fracture-density-service/internal/platform/obs"
	"net/http"
)

type ErrorResponse struct {
	Error string `json:"error"`
	RunID string `json:"run_id,omitempty"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.L().Error("encode failed", "run_id", obs.RunID(r.Context()), "path", r.URL.Path, "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, ErrorResponse{Error: msg, RunID: obs.RunID(r.Context())})
}
