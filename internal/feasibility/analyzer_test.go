package feasibility

import (
	"strings"
	"testing"
)

func findConflict(t *testing.T, conflicts []Conflict, id string) Conflict {
	t.Helper()
	for _, c := range conflicts {
		if c.ConflictID == id {
			return c
		}
	}
	t.Fatalf("conflict %q not found in %v", id, conflicts)
	return Conflict{}
}

func hasConflict(conflicts []Conflict, id string) bool {
	for _, c := range conflicts {
		if c.ConflictID == id {
			return true
		}
	}
	return false
}

func TestAnalyzeSufficientCapacity(t *testing.T) {
	result := Analyze(Input{
		TeamCount:             10,
		AvailableRegularSlots: 50,
		MinGamesPerTeam:       10,
		MaxGamesPerWeek:       2,
		RegularWeeksCount:     10,
	})

	if result.Capacity.RequiredRegularSlots != 50 {
		t.Errorf("RequiredRegularSlots = %d, want 50", result.Capacity.RequiredRegularSlots)
	}
	if result.Capacity.SurplusOrShortfall != 0 {
		t.Errorf("SurplusOrShortfall = %d, want 0", result.Capacity.SurplusOrShortfall)
	}
	if !result.RegularSeasonFeasible {
		t.Error("expected regular season to be feasible")
	}
	if len(result.Conflicts) != 0 {
		t.Errorf("expected no conflicts, got %v", result.Conflicts)
	}
	if result.Recommendations.MaxGamesPerTeam != 10 {
		t.Errorf("MaxGamesPerTeam = %d, want 10", result.Recommendations.MaxGamesPerTeam)
	}
	min := result.Recommendations.MinGamesPerTeam
	if min < 8 || min > 10 {
		t.Errorf("MinGamesPerTeam = %d, want within [8, 10]", min)
	}
	if result.Recommendations.OptimalGuestGamesPerWeek != 0 {
		t.Errorf("OptimalGuestGamesPerWeek = %d, want 0", result.Recommendations.OptimalGuestGamesPerWeek)
	}
	if !strings.Contains(result.Recommendations.UtilizationStatus, "High utilization") {
		t.Errorf("UtilizationStatus = %q, want High utilization", result.Recommendations.UtilizationStatus)
	}
}

func TestAnalyzeInsufficientCapacity(t *testing.T) {
	result := Analyze(Input{
		TeamCount:             9,
		AvailableRegularSlots: 45,
		MinGamesPerTeam:       15,
		MaxGamesPerWeek:       2,
		RegularWeeksCount:     10,
	})

	// ceil(9 * 15 / 2) = ceil(67.5) = 68
	if result.Capacity.RequiredRegularSlots != 68 {
		t.Errorf("RequiredRegularSlots = %d, want 68", result.Capacity.RequiredRegularSlots)
	}
	if result.RegularSeasonFeasible {
		t.Error("expected regular season to be infeasible")
	}

	conflict := findConflict(t, result.Conflicts, ConflictCapacityInsufficient)
	if conflict.Severity != SeverityError {
		t.Errorf("Severity = %q, want %q", conflict.Severity, SeverityError)
	}
	if !strings.Contains(conflict.Message, "68 slots") {
		t.Errorf("message %q should contain %q", conflict.Message, "68 slots")
	}
	if !strings.Contains(conflict.Message, "45 available") {
		t.Errorf("message %q should contain %q", conflict.Message, "45 available")
	}
}

func TestAnalyzeGuestGamesOverConsuming(t *testing.T) {
	result := Analyze(Input{
		TeamCount:             9,
		AvailableRegularSlots: 50,
		MinGamesPerTeam:       10,
		MaxGamesPerWeek:       2,
		RegularWeeksCount:     10,
		GuestGamesPerWeek:     2,
	})

	if result.Capacity.GuestSlotsReserved != 20 {
		t.Errorf("GuestSlotsReserved = %d, want 20", result.Capacity.GuestSlotsReserved)
	}
	if result.Capacity.EffectiveSlotsRemaining != 30 {
		t.Errorf("EffectiveSlotsRemaining = %d, want 30", result.Capacity.EffectiveSlotsRemaining)
	}
	if !result.RegularSeasonFeasible {
		t.Error("raw capacity still covers the season; expected feasible")
	}

	conflict := findConflict(t, result.Conflicts, ConflictGuestGamesOverConsuming)
	if conflict.Severity != SeverityWarning {
		t.Errorf("Severity = %q, want %q", conflict.Severity, SeverityWarning)
	}
	if !strings.Contains(conflict.Message, "20 slots") {
		t.Errorf("message %q should contain %q", conflict.Message, "20 slots")
	}
}

func TestAnalyzeNoDoubleHeadersBlocking(t *testing.T) {
	result := Analyze(Input{
		TeamCount:             9,
		AvailableRegularSlots: 60,
		MinGamesPerTeam:       12,
		MaxGamesPerWeek:       1,
		NoDoubleHeaders:       true,
		RegularWeeksCount:     10,
	})

	conflict := findConflict(t, result.Conflicts, ConflictNoDoubleHeadersBlocking)
	if conflict.Severity != SeverityError {
		t.Errorf("Severity = %q, want %q", conflict.Severity, SeverityError)
	}
	if !strings.Contains(conflict.Message, "12 games/team") {
		t.Errorf("message %q should contain %q", conflict.Message, "12 games/team")
	}
	if !strings.Contains(conflict.Message, "10 weeks") {
		t.Errorf("message %q should contain %q", conflict.Message, "10 weeks")
	}

	// The weekly cap rule trips on the same inputs; rules are independent.
	if !hasConflict(result.Conflicts, ConflictMaxGamesPerWeekInsufficient) {
		t.Error("expected max-games-per-week-insufficient alongside the doubleheader conflict")
	}
}

func TestAnalyzeMaxGamesPerWeekInsufficient(t *testing.T) {
	result := Analyze(Input{
		TeamCount:             8,
		AvailableRegularSlots: 100,
		MinGamesPerTeam:       25,
		MaxGamesPerWeek:       2,
		RegularWeeksCount:     10,
	})

	conflict := findConflict(t, result.Conflicts, ConflictMaxGamesPerWeekInsufficient)
	if conflict.Severity != SeverityWarning {
		t.Errorf("Severity = %q, want %q", conflict.Severity, SeverityWarning)
	}
}

func TestAnalyzePhasesEvaluatedIndependently(t *testing.T) {
	result := Analyze(Input{
		TeamCount:             8,
		AvailableRegularSlots: 30,
		AvailablePoolSlots:    16,
		AvailableBracketSlots: 3,
		MinGamesPerTeam:       8,
		PoolGamesPerTeam:      4,
		MaxGamesPerWeek:       2,
		RegularWeeksCount:     10,
	})

	if result.RegularSeasonFeasible {
		t.Error("regular season should be infeasible (needs 32, has 30)")
	}
	if !result.PoolPlayFeasible {
		t.Error("pool play should be feasible (needs 16, has 16)")
	}
	if !result.BracketFeasible {
		t.Error("bracket should be feasible")
	}
}

func TestAnalyzePoolPhaseTriviallyFeasibleWhenUnused(t *testing.T) {
	result := Analyze(Input{
		TeamCount:             6,
		AvailableRegularSlots: 30,
		MinGamesPerTeam:       8,
		MaxGamesPerWeek:       2,
		RegularWeeksCount:     10,
	})
	if !result.PoolPlayFeasible {
		t.Error("no pool games requested; phase should be trivially feasible")
	}
}

func TestAnalyzeZeroTeams(t *testing.T) {
	result := Analyze(Input{
		AvailableRegularSlots: 40,
		MinGamesPerTeam:       10,
		MaxGamesPerWeek:       2,
		RegularWeeksCount:     8,
		GuestGamesPerWeek:     1,
	})

	if result.Capacity.RequiredRegularSlots != 0 {
		t.Errorf("RequiredRegularSlots = %d, want 0", result.Capacity.RequiredRegularSlots)
	}
	if len(result.Conflicts) != 0 {
		t.Errorf("expected no conflicts for zero teams, got %v", result.Conflicts)
	}
	rec := result.Recommendations
	if rec.MinGamesPerTeam != 0 || rec.MaxGamesPerTeam != 0 || rec.OptimalGuestGamesPerWeek != 0 {
		t.Errorf("expected zeroed recommendations, got %+v", rec)
	}
}

func TestAnalyzeZeroWeeks(t *testing.T) {
	result := Analyze(Input{
		TeamCount:             10,
		AvailableRegularSlots: 40,
		MinGamesPerTeam:       10,
		MaxGamesPerWeek:       2,
	})

	if result.Capacity.RequiredRegularSlots != 0 {
		t.Errorf("RequiredRegularSlots = %d, want 0", result.Capacity.RequiredRegularSlots)
	}
	rec := result.Recommendations
	if rec.MinGamesPerTeam != 0 || rec.MaxGamesPerTeam != 0 || rec.OptimalGuestGamesPerWeek != 0 {
		t.Errorf("expected zeroed recommendations, got %+v", rec)
	}
	if hasConflict(result.Conflicts, ConflictCapacityInsufficient) {
		t.Error("zero-week season requires nothing; no capacity conflict expected")
	}
}

func TestAnalyzeSingleTeam(t *testing.T) {
	result := Analyze(Input{
		TeamCount:             1,
		AvailableRegularSlots: 40,
		MinGamesPerTeam:       10,
		MaxGamesPerWeek:       2,
		RegularWeeksCount:     10,
	})
	if result.Recommendations.MaxGamesPerTeam != 0 {
		t.Errorf("a single team has no opponent; MaxGamesPerTeam = %d, want 0",
			result.Recommendations.MaxGamesPerTeam)
	}
}

func TestCapacityIdentities(t *testing.T) {
	cases := []struct {
		name      string
		teamCount int
		minGames  int
		available int
		guest     int
		weeks     int
	}{
		{"even product", 10, 10, 50, 0, 10},
		{"odd product", 9, 15, 45, 0, 10},
		{"with guest games", 9, 10, 50, 2, 10},
		{"tight season", 7, 9, 20, 1, 6},
		{"large counts", 40, 30, 1000, 3, 15},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := Analyze(Input{
				TeamCount:             tc.teamCount,
				AvailableRegularSlots: tc.available,
				MinGamesPerTeam:       tc.minGames,
				MaxGamesPerWeek:       2,
				RegularWeeksCount:     tc.weeks,
				GuestGamesPerWeek:     tc.guest,
			})

			capacity := result.Capacity
			wantRequired := (tc.teamCount*tc.minGames + 1) / 2
			if capacity.RequiredRegularSlots != wantRequired {
				t.Errorf("RequiredRegularSlots = %d, want %d", capacity.RequiredRegularSlots, wantRequired)
			}
			if capacity.SurplusOrShortfall != capacity.AvailableRegularSlots-capacity.RequiredRegularSlots {
				t.Errorf("surplus identity violated: %+v", capacity)
			}
			if capacity.GuestSlotsReserved != tc.guest*tc.weeks {
				t.Errorf("GuestSlotsReserved = %d, want %d", capacity.GuestSlotsReserved, tc.guest*tc.weeks)
			}
			if capacity.EffectiveSlotsRemaining != capacity.AvailableRegularSlots-capacity.GuestSlotsReserved {
				t.Errorf("effective slots identity violated: %+v", capacity)
			}
			if result.RegularSeasonFeasible != (capacity.AvailableRegularSlots >= capacity.RequiredRegularSlots) {
				t.Errorf("feasibility inconsistent with capacity: %+v", result)
			}
		})
	}
}

func TestMaxGamesRecommendationMonotonic(t *testing.T) {
	previousMax := -1
	previouslyFeasible := false
	for available := 0; available <= 120; available += 5 {
		result := Analyze(Input{
			TeamCount:             9,
			AvailableRegularSlots: available,
			MinGamesPerTeam:       10,
			MaxGamesPerWeek:       2,
			RegularWeeksCount:     10,
		})
		maxRec := result.Recommendations.MaxGamesPerTeam
		if maxRec < previousMax {
			t.Fatalf("MaxGamesPerTeam decreased from %d to %d at available=%d",
				previousMax, maxRec, available)
		}
		if previouslyFeasible && !result.RegularSeasonFeasible {
			t.Fatalf("feasibility regressed at available=%d", available)
		}
		previousMax = maxRec
		previouslyFeasible = result.RegularSeasonFeasible
	}
}

func TestMaxGamesRecommendationFitsCapacity(t *testing.T) {
	for teams := 2; teams <= 12; teams++ {
		for available := 0; available <= 80; available += 7 {
			maxRec := maxGamesPerTeam(teams, available)
			if maxRec < 0 {
				t.Fatalf("negative recommendation for teams=%d available=%d", teams, available)
			}
			if requiredSlots(teams, maxRec) > available {
				t.Fatalf("recommendation %d overshoots capacity for teams=%d available=%d",
					maxRec, teams, available)
			}
			if requiredSlots(teams, maxRec+1) <= available {
				t.Fatalf("recommendation %d is not maximal for teams=%d available=%d",
					maxRec, teams, available)
			}
		}
	}
}

func TestOptimalGuestGames(t *testing.T) {
	cases := []struct {
		name     string
		capacity CapacityBreakdown
		weeks    int
		want     int
	}{
		{"no surplus", CapacityBreakdown{RequiredRegularSlots: 50, SurplusOrShortfall: 0}, 10, 0},
		{"shortfall", CapacityBreakdown{RequiredRegularSlots: 68, SurplusOrShortfall: -23}, 10, 0},
		{"zero weeks", CapacityBreakdown{RequiredRegularSlots: 50, SurplusOrShortfall: 10}, 0, 0},
		{"modest surplus", CapacityBreakdown{RequiredRegularSlots: 50, SurplusOrShortfall: 10}, 10, 1},
		{"large surplus", CapacityBreakdown{RequiredRegularSlots: 20, SurplusOrShortfall: 80}, 10, 8},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := optimalGuestGames(tc.capacity, tc.weeks)
			if got != tc.want {
				t.Errorf("optimalGuestGames = %d, want %d", got, tc.want)
			}
			if got < 0 {
				t.Errorf("optimalGuestGames = %d, must not be negative", got)
			}
		})
	}
}

func TestUtilizationStatusBands(t *testing.T) {
	cases := []struct {
		name      string
		required  int
		available int
		want      string
	}{
		{"low", 10, 75, "Low utilization"},
		{"good", 30, 50, "Good utilization"},
		{"high", 45, 50, "High utilization"},
		{"over capacity", 68, 45, "High utilization"},
		{"no slots no demand", 0, 0, "Low utilization"},
		{"no slots with demand", 10, 0, "High utilization"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status := utilizationStatus(CapacityBreakdown{
				RequiredRegularSlots:  tc.required,
				AvailableRegularSlots: tc.available,
			})
			if !strings.Contains(status, tc.want) {
				t.Errorf("utilizationStatus = %q, want substring %q", status, tc.want)
			}
		})
	}
}
