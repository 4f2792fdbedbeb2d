// internal/api/feasibility/handlers.go
package feasibility

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/agsasports/leaguedesk/internal/api/apiutil"
	analyzer "github.com/agsasports/leaguedesk/internal/feasibility"
	"github.com/agsasports/leaguedesk/internal/slots"
)

const (
	divisionCodePathKey  = "code"
	divisionQueryTimeout = 5 * time.Second
)

var store *slots.Store

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(slotStore *slots.Store) {
	store = slotStore
}

// POST /api/v1/feasibility/analyze
func HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	var input analyzer.Input
	if err := apiutil.DecodeJSON(r, &input); err != nil {
		logger.Warn().Err(err).Msg("Invalid feasibility request body")
		apiutil.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := validateInput(input); err != nil {
		logger.Warn().Err(err).Msg("Rejected feasibility request")
		apiutil.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result := analyzer.Analyze(input)
	logger.Info().
		Int("team_count", input.TeamCount).
		Bool("regular_season_feasible", result.RegularSeasonFeasible).
		Int("conflicts", len(result.Conflicts)).
		Msg("Feasibility analysis completed")

	if err := apiutil.WriteJSON(w, http.StatusOK, result); err != nil {
		logger.Error().Err(err).Msg("Failed to write feasibility response")
	}
}

// GET /api/v1/divisions/{code}/feasibility
func HandleDivisionFeasibility(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	if store == nil {
		logger.Error().Msg("Feasibility handlers not initialized")
		apiutil.WriteError(w, http.StatusInternalServerError, "service unavailable")
		return
	}

	code := strings.TrimSpace(r.PathValue(divisionCodePathKey))
	if code == "" {
		apiutil.WriteError(w, http.StatusBadRequest, "division code is required")
		return
	}

	ctx, cancel := contextWithTimeout(r)
	defer cancel()

	division, err := store.GetDivision(ctx, code)
	if errors.Is(err, slots.ErrDivisionNotFound) {
		apiutil.WriteError(w, http.StatusNotFound, fmt.Sprintf("division %q not found", code))
		return
	}
	if err != nil {
		logger.Error().Err(err).Str("division", code).Msg("Failed to load division")
		apiutil.WriteError(w, http.StatusInternalServerError, "failed to load division")
		return
	}

	availability, err := store.CountOpenSlots(ctx, code)
	if err != nil {
		logger.Error().Err(err).Str("division", code).Msg("Failed to count open slots")
		apiutil.WriteError(w, http.StatusInternalServerError, "failed to count open slots")
		return
	}

	result := analyzer.Analyze(division.AnalysisInput(availability))
	logger.Info().
		Str("division", code).
		Bool("regular_season_feasible", result.RegularSeasonFeasible).
		Int("conflicts", len(result.Conflicts)).
		Msg("Division feasibility computed")

	if err := apiutil.WriteJSON(w, http.StatusOK, result); err != nil {
		logger.Error().Err(err).Msg("Failed to write feasibility response")
	}
}

func contextWithTimeout(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), divisionQueryTimeout)
}

func validateInput(input analyzer.Input) error {
	checks := []struct {
		name  string
		value int
	}{
		{"teamCount", input.TeamCount},
		{"availableRegularSlots", input.AvailableRegularSlots},
		{"availablePoolSlots", input.AvailablePoolSlots},
		{"availableBracketSlots", input.AvailableBracketSlots},
		{"minGamesPerTeam", input.MinGamesPerTeam},
		{"poolGamesPerTeam", input.PoolGamesPerTeam},
		{"regularWeeksCount", input.RegularWeeksCount},
		{"guestGamesPerWeek", input.GuestGamesPerWeek},
	}
	for _, check := range checks {
		if check.value < 0 {
			return apiutil.FieldError{Field: check.name, Reason: "must not be negative"}
		}
	}
	if input.MaxGamesPerWeek < 1 {
		return apiutil.FieldError{Field: "maxGamesPerWeek", Reason: "must be at least 1"}
	}
	return nil
}
