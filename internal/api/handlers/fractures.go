package handlers

import (
	"errors"
	"fracture-density-service/internal/api/dto"
	"fracture-density-service/internal/domain"
	"fracture-density-service/internal/platform/logger"
	"fracture-density-service/internal/ports"
	"net/http"
)

// FractureHandler exposes the loaded fracture network read-only.
type FractureHandler struct {
	Repo ports.FractureRepository
}

func (h *FractureHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	segments, err := h.Repo.ListFractures(r.Context())
	if err != nil {
		logger.L().Error("list fractures failed", "err", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	fs, err := domain.NewFractureSet(segments)
	if err != nil {
		if errors.Is(err, domain.ErrMalformedInput) {
			writeError(w, r, http.StatusUnprocessableEntity, err.Error())
			return
		}
		logger.L().Error("build fracture set failed", "err", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListFracturesResponse{
		Domain:    dto.FromDomain(fs.Domain()),
		Fractures: make([]dto.SegmentResponse, 0, fs.Len()),
	}
	for _, s := range fs.Segments() {
		res.Fractures = append(res.Fractures, dto.FromSegment(s))
	}

	writeJSON(w, r, http.StatusOK, res)
}
