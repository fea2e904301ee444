package api

import (
	"fracture-density-service/internal/platform/logger"
	"fracture-density-service/internal/platform/obs"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RunIDHeader carries the run id in both directions. A client-supplied value
// of up to 64 bytes is reused.
const RunIDHeader = "X-Run-ID"

// recorder remembers the status and size of the response sent to the client.
type recorder struct {
	http.ResponseWriter
	status int
	size   int
}

func (rw *recorder) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *recorder) Write(b []byte) (int, error) {
	if rw.status == 0 {
		rw.status = http.StatusOK
	}
	n, err := rw.ResponseWriter.Write(b)
	rw.size += n
	return n, err
}

// requestMiddleware tags each request with a run id and logs its outcome.
func requestMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		runID := strings.TrimSpace(r.Header.Get(RunIDHeader))
		if runID == "" || len(runID) > 64 {
			runID = uuid.NewString()
		}
		w.Header().Set(RunIDHeader, runID)

		rw := &recorder{ResponseWriter: w}
		next.ServeHTTP(rw, r.WithContext(obs.WithRunID(r.Context(), runID)))

		logger.L().Info("http.request",
			"run_id", runID,
			"method", r.Method,
			"path", r.URL.RequestURI(),
			"status", rw.status,
			"bytes", rw.size,
			"dur_ms", time.Since(start).Milliseconds(),
		)
	})
}
