package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/agsasports/leaguedesk/internal/feasibility"
	"github.com/agsasports/leaguedesk/internal/slots"
)

const sweepJobName = "feasibility_sweep"

const sweepTimeout = 2 * time.Minute

// RegisterFeasibilitySweep schedules a recurring job that re-analyzes every
// division against its current open-slot counts and logs the verdict. Admins
// read these from the logs to catch seasons drifting infeasible as slots get
// booked.
func RegisterFeasibilitySweep(svc *Service, store *slots.Store, cronExpr string) error {
	if store == nil {
		return errors.New("feasibility sweep requires a slot store")
	}
	_, err := svc.AddJob(sweepJobName, cronExpr, func() {
		ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
		defer cancel()
		RunFeasibilitySweep(ctx, store)
	})
	return err
}

// RunFeasibilitySweep analyzes every stored division once.
func RunFeasibilitySweep(ctx context.Context, store *slots.Store) {
	logger := log.Ctx(ctx).With().Str("job_name", sweepJobName).Logger()

	divisions, err := store.ListDivisions(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list divisions for sweep")
		return
	}

	for _, division := range divisions {
		availability, err := store.CountOpenSlots(ctx, division.Code)
		if err != nil {
			logger.Error().Err(err).Str("division", division.Code).Msg("Failed to count open slots")
			continue
		}

		result := feasibility.Analyze(division.AnalysisInput(availability))

		event := logger.Info()
		if !result.RegularSeasonFeasible || !result.PoolPlayFeasible || !result.BracketFeasible {
			event = logger.Warn()
		}
		event.
			Str("division", division.Code).
			Bool("regular_season_feasible", result.RegularSeasonFeasible).
			Bool("pool_play_feasible", result.PoolPlayFeasible).
			Bool("bracket_feasible", result.BracketFeasible).
			Int("surplus_or_shortfall", result.Capacity.SurplusOrShortfall).
			Int("conflicts", len(result.Conflicts)).
			Str("utilization", result.Recommendations.UtilizationStatus).
			Msg("Division feasibility sweep")
	}

	logger.Info().Int("divisions", len(divisions)).Msg("Feasibility sweep completed")
}
