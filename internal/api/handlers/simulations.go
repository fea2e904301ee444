package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"fracture-density-service/internal/adapters/report"
	"fracture-density-service/internal/api/dto"
	"fracture-density-service/internal/domain"
	"fracture-density-service/internal/platform/logger"
	"fracture-density-service/internal/platform/obs"
	"fracture-density-service/internal/platform/random"
	"fracture-density-service/internal/ports"
	"fracture-density-service/internal/services"
	"io"
	"net/http"

	"github.com/google/uuid"
)

type SimulationHandler struct {
	Repo ports.FractureRepository
	// Defaults applied when the request omits a field.
	Defaults  services.SampleRequest
	Bins      int
	MaxTrials int
}

// Run executes one Monte-Carlo P10 simulation against the configured
// fracture network and returns the series with summary statistics.
func (h *SimulationHandler) Run(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.SimulationRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	svcReq := h.Defaults
	if req.Trials != nil {
		svcReq.Trials = *req.Trials
	}
	if svcReq.Trials < 0 || svcReq.Trials > h.MaxTrials {
		writeError(w, r, http.StatusBadRequest, fmt.Sprintf("trials must be between 0 and %d", h.MaxTrials))
		return
	}

	if req.MaxRedraws != nil {
		svcReq.MaxRedraws = *req.MaxRedraws
	}
	if svcReq.MaxRedraws < 0 || svcReq.MaxRedraws > 100 {
		writeError(w, r, http.StatusBadRequest, "max_redraws must be between 0 and 100")
		return
	}

	if req.Workers != 0 {
		svcReq.Workers = req.Workers
	}
	if svcReq.Workers < 1 || svcReq.Workers > 64 {
		writeError(w, r, http.StatusBadRequest, "workers must be between 1 and 64")
		return
	}

	bins := h.Bins
	if req.Bins != 0 {
		bins = req.Bins
	}
	if bins < 1 || bins > 1000 {
		writeError(w, r, http.StatusBadRequest, "bins must be between 1 and 1000")
		return
	}

	if req.Seed != nil {
		svcReq.Seed = *req.Seed
	}
	if svcReq.Seed == 0 {
		seed, err := random.NewSeed()
		if err != nil {
			logger.L().Error("seed generation failed", "err", err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return
		}
		svcReq.Seed = seed
	}

	ctx := r.Context()
	runID := obs.RunID(ctx)
	if runID == "" {
		runID = uuid.NewString()
		ctx = obs.WithRunID(ctx, runID)
	}

	collector := report.NewCollector()
	result, err := services.RunSimulation(ctx, svcReq, h.Repo, collector)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMalformedInput):
			writeError(w, r, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, domain.ErrGeometry):
			writeError(w, r, http.StatusUnprocessableEntity, err.Error())
		default:
			logger.L().Error("run simulation failed", "run_id", runID, "err", err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	s := report.Summarize(result.Series)
	res := dto.SimulationResponse{
		RunID:         runID,
		Seed:          svcReq.Seed,
		Domain:        dto.FromDomain(result.Domain),
		FractureCount: result.Fractures.Len(),
		P10:           result.Series,
		Summary: dto.SummaryResponse{
			Trials: s.Trials,
			Mean:   s.Mean,
			StdDev: s.StdDev,
			Min:    s.Min,
			Max:    s.Max,
		},
	}

	for _, b := range report.Histogram(result.Series, bins) {
		res.Histogram = append(res.Histogram, dto.BinResponse{Lo: b.Lo, Hi: b.Hi, Count: b.Count})
	}
	if res.Histogram == nil {
		res.Histogram = []dto.BinResponse{}
	}

	if req.IncludeBoreholes {
		for _, t := range collector.Snapshot().Trials {
			res.Boreholes = append(res.Boreholes, dto.BoreholeResponse{
				Trial:     t.Index,
				Segment:   dto.FromSegment(t.Borehole),
				Crossings: t.Crossings,
				P10:       t.P10,
				Redraws:   t.Redraws,
			})
		}
	}

	writeJSON(w, r, http.StatusOK, res)
}
