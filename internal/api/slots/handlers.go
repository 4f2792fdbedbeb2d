// internal/api/slots/handlers.go
package slots

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/agsasports/leaguedesk/internal/api/apiutil"
	"github.com/agsasports/leaguedesk/internal/importer"
	slotstore "github.com/agsasports/leaguedesk/internal/slots"
)

const (
	divisionQueryKey  = "division_id"
	importBodyLimit   = 4 << 20 // CSV uploads beyond 4 MiB are rejected
	slotsQueryTimeout = 10 * time.Second
)

var store *slotstore.Store

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(slotStore *slotstore.Store) {
	store = slotStore
}

type importResponse struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// POST /api/v1/import/slots
// Body is the slots CSV produced by the availability converter.
func HandleImportSlots(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	if store == nil {
		logger.Error().Msg("Slot handlers not initialized")
		apiutil.WriteError(w, http.StatusInternalServerError, "service unavailable")
		return
	}
	if r.Body == nil {
		apiutil.WriteError(w, http.StatusBadRequest, "missing request body")
		return
	}
	defer r.Body.Close()

	result, err := importer.Parse(http.MaxBytesReader(w, r.Body, importBodyLimit))
	if err != nil {
		logger.Warn().Err(err).Msg("Rejected slot CSV import")
		apiutil.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), slotsQueryTimeout)
	defer cancel()

	inserted, err := store.InsertSlots(ctx, result.Slots)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to insert imported slots")
		apiutil.WriteError(w, http.StatusInternalServerError, "failed to store slots")
		return
	}

	logger.Info().
		Int("imported", inserted).
		Int("skipped", result.Skipped).
		Msg("Slot CSV imported")

	if err := apiutil.WriteJSON(w, http.StatusOK, importResponse{
		Imported: inserted,
		Skipped:  result.Skipped,
	}); err != nil {
		logger.Error().Err(err).Msg("Failed to write import response")
	}
}

// GET /api/v1/slots/summary?division_id=10U
func HandleSlotSummary(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	if store == nil {
		logger.Error().Msg("Slot handlers not initialized")
		apiutil.WriteError(w, http.StatusInternalServerError, "service unavailable")
		return
	}

	division := strings.TrimSpace(r.URL.Query().Get(divisionQueryKey))
	if division == "" {
		apiutil.WriteError(w, http.StatusBadRequest, "division_id query parameter is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), slotsQueryTimeout)
	defer cancel()

	availability, err := store.CountOpenSlots(ctx, division)
	if err != nil {
		logger.Error().Err(err).Str("division", division).Msg("Failed to count open slots")
		apiutil.WriteError(w, http.StatusInternalServerError, "failed to count open slots")
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, availability); err != nil {
		logger.Error().Err(err).Msg("Failed to write slot summary")
	}
}
