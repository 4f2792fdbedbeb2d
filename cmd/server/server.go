// cmd/server/server.go
package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/agsasports/leaguedesk/internal/api"
	"github.com/agsasports/leaguedesk/internal/api/divisions"
	"github.com/agsasports/leaguedesk/internal/api/feasibility"
	apislots "github.com/agsasports/leaguedesk/internal/api/slots"
	"github.com/agsasports/leaguedesk/internal/config"
	"github.com/agsasports/leaguedesk/internal/slots"
)

func newServer(cfg *config.Config, store *slots.Store) *http.Server {
	router := http.NewServeMux()

	// Setup middleware chain
	handler := api.ChainMiddleware(
		router,
		api.WithLogging,
		api.WithRecovery,
		api.WithRequestID,
		api.WithContentType,
	)

	registerRoutes(router, store)

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func registerRoutes(mux *http.ServeMux, store *slots.Store) {
	feasibility.InitHandlers(store)
	apislots.InitHandlers(store)
	divisions.InitHandlers(store)

	// Health check
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Feasibility analysis
	mux.HandleFunc("POST /api/v1/feasibility/analyze", feasibility.HandleAnalyze)
	mux.HandleFunc("GET /api/v1/divisions/{code}/feasibility", feasibility.HandleDivisionFeasibility)

	// Division management
	mux.HandleFunc("POST /api/v1/divisions", divisions.HandleCreateDivision)
	mux.HandleFunc("GET /api/v1/divisions", divisions.HandleListDivisions)

	// Slot import and availability
	mux.HandleFunc("POST /api/v1/import/slots", apislots.HandleImportSlots)
	mux.HandleFunc("GET /api/v1/slots/summary", apislots.HandleSlotSummary)
}
