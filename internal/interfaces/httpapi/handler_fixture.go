package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/riskibarqy/cricket-club/internal/usecase"
)

const (
	headerFixtureSource  = "X-Fixture-Source"
	headerFixtureFailure = "X-Fixture-Failure"
)

// GetFixtures serves both /fixtures/{teamID} and /v1/teams/{teamID}/fixtures.
// Provider trouble is reported in the body; only store errors fail the request.
func (h *Handler) GetFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFixtures")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	preference, err := usecase.ParseSourcePreference(r.URL.Query().Get("source"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	resolution, err := h.fixtureService.ResolveFixtures(ctx, teamID, preference)
	if err != nil {
		h.logger.WarnContext(ctx, "resolve fixtures failed", "team_id", teamID, "source", preference, "error", err)
		writeError(ctx, w, err)
		return
	}

	setResolutionHeaders(w, resolution)
	writeSuccess(ctx, w, http.StatusOK, fixtureResolutionToDTO(ctx, resolution))
}

// GetExternalFixtures forces the provider-first path. Missing provider
// credentials are a deployment defect here and fail with 500.
func (h *Handler) GetExternalFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetExternalFixtures")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	resolution, err := h.fixtureService.ResolveFixtures(ctx, teamID, usecase.PreferExternal)
	if err != nil {
		h.logger.WarnContext(ctx, "resolve external fixtures failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	if resolution.Failure != nil && resolution.Failure.Kind == usecase.FailureConfiguration {
		writeError(ctx, w, fmt.Errorf("%w: %s", usecase.ErrConfiguration, resolution.Failure.Message))
		return
	}

	setResolutionHeaders(w, resolution)
	writeSuccess(ctx, w, http.StatusOK, fixtureResolutionToDTO(ctx, resolution))
}

// setResolutionHeaders exposes the resolved source and any failure kind outside the body.
func setResolutionHeaders(w http.ResponseWriter, resolution usecase.FixtureResolution) {
	w.Header().Set(headerFixtureSource, string(resolution.Source))
	if resolution.Failure != nil {
		w.Header().Set(headerFixtureFailure, string(resolution.Failure.Kind))
	}
}
