// internal/api/divisions/handlers.go
package divisions

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/agsasports/leaguedesk/internal/api/apiutil"
	"github.com/agsasports/leaguedesk/internal/slots"
)

const divisionQueryTimeout = 5 * time.Second

var store *slots.Store

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(slotStore *slots.Store) {
	store = slotStore
}

type divisionRequest struct {
	Code              string `json:"code"`
	Name              string `json:"name"`
	TeamCount         int    `json:"teamCount"`
	MinGamesPerTeam   int    `json:"minGamesPerTeam"`
	PoolGamesPerTeam  int    `json:"poolGamesPerTeam"`
	MaxGamesPerWeek   int    `json:"maxGamesPerWeek"`
	NoDoubleHeaders   bool   `json:"noDoubleHeaders"`
	RegularWeeksCount int    `json:"regularWeeksCount"`
	GuestGamesPerWeek int    `json:"guestGamesPerWeek"`
}

// POST /api/v1/divisions
func HandleCreateDivision(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	if store == nil {
		logger.Error().Msg("Division handlers not initialized")
		apiutil.WriteError(w, http.StatusInternalServerError, "service unavailable")
		return
	}

	var req divisionRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		logger.Warn().Err(err).Msg("Invalid division request body")
		apiutil.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validateRequest(req); err != nil {
		logger.Warn().Err(err).Msg("Rejected division request")
		apiutil.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), divisionQueryTimeout)
	defer cancel()

	division := slots.Division{
		Code:              req.Code,
		Name:              req.Name,
		TeamCount:         req.TeamCount,
		MinGamesPerTeam:   req.MinGamesPerTeam,
		PoolGamesPerTeam:  req.PoolGamesPerTeam,
		MaxGamesPerWeek:   req.MaxGamesPerWeek,
		NoDoubleHeaders:   req.NoDoubleHeaders,
		RegularWeeksCount: req.RegularWeeksCount,
		GuestGamesPerWeek: req.GuestGamesPerWeek,
	}
	id, err := store.CreateDivision(ctx, division)
	if err != nil {
		logger.Error().Err(err).Str("division", req.Code).Msg("Failed to create division")
		apiutil.WriteError(w, http.StatusInternalServerError, "failed to create division")
		return
	}
	division.ID = id

	logger.Info().Str("division", division.Code).Int64("id", id).Msg("Division created")
	if err := apiutil.WriteJSON(w, http.StatusCreated, division); err != nil {
		logger.Error().Err(err).Msg("Failed to write division response")
	}
}

// GET /api/v1/divisions
func HandleListDivisions(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	if store == nil {
		logger.Error().Msg("Division handlers not initialized")
		apiutil.WriteError(w, http.StatusInternalServerError, "service unavailable")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), divisionQueryTimeout)
	defer cancel()

	divisions, err := store.ListDivisions(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list divisions")
		apiutil.WriteError(w, http.StatusInternalServerError, "failed to list divisions")
		return
	}
	if divisions == nil {
		divisions = []slots.Division{}
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, divisions); err != nil {
		logger.Error().Err(err).Msg("Failed to write divisions response")
	}
}

func validateRequest(req divisionRequest) error {
	if req.Code == "" {
		return apiutil.FieldError{Field: "code", Reason: "is required"}
	}
	if req.Name == "" {
		return apiutil.FieldError{Field: "name", Reason: "is required"}
	}
	checks := []struct {
		name  string
		value int
	}{
		{"teamCount", req.TeamCount},
		{"minGamesPerTeam", req.MinGamesPerTeam},
		{"poolGamesPerTeam", req.PoolGamesPerTeam},
		{"regularWeeksCount", req.RegularWeeksCount},
		{"guestGamesPerWeek", req.GuestGamesPerWeek},
	}
	for _, check := range checks {
		if check.value < 0 {
			return apiutil.FieldError{Field: check.name, Reason: "must not be negative"}
		}
	}
	if req.MaxGamesPerWeek < 1 {
		return apiutil.FieldError{Field: "maxGamesPerWeek", Reason: "must be at least 1"}
	}
	return nil
}
