package feasibility

// Utilization labels. Consumers match on the leading keyword phrase, not the
// full sentence.
const (
	utilizationLow  = "Low utilization: plenty of spare slot capacity"
	utilizationGood = "Good utilization"
	utilizationHigh = "High utilization: slot capacity is tight"
)

const (
	highUtilizationRatio = 0.8
	goodUtilizationRatio = 0.5

	// Above this surplus ratio the season has real headroom and guest game
	// padding is no longer held to one per week.
	modestSurplusRatio = 0.2
)

// Recommendations suggests tunable parameters that keep the season feasible.
type Recommendations struct {
	MinGamesPerTeam          int
	MaxGamesPerTeam          int
	OptimalGuestGamesPerWeek int
	UtilizationStatus        string
}

func buildRecommendations(in Input, capacity CapacityBreakdown) Recommendations {
	rec := Recommendations{
		UtilizationStatus: utilizationStatus(capacity),
	}
	if in.TeamCount == 0 || in.RegularWeeksCount == 0 {
		return rec
	}

	rec.MaxGamesPerTeam = maxGamesPerTeam(in.TeamCount, capacity.AvailableRegularSlots)
	rec.MinGamesPerTeam = minGamesPerTeam(in, rec.MaxGamesPerTeam, capacity.SurplusOrShortfall)
	rec.OptimalGuestGamesPerWeek = optimalGuestGames(capacity, in.RegularWeeksCount)
	return rec
}

// maxGamesPerTeam finds the largest per-team game count whose slot demand
// still fits. Demand is monotonic in the game count, so floor(2*available/
// teams) is the candidate; the walk-down guards the ceil rounding at odd
// products. A single team has no opponent and gets 0.
func maxGamesPerTeam(teamCount, available int) int {
	if teamCount <= 1 || available <= 0 {
		return 0
	}
	games := 2 * available / teamCount
	for games > 0 && requiredSlots(teamCount, games) > available {
		games--
	}
	return games
}

// minGamesPerTeam anchors near the requested target, capped by what capacity
// supports. When capacity is exactly consumed the target steps down one game
// to leave make-up flexibility.
func minGamesPerTeam(in Input, maxRecommended, surplus int) int {
	games := in.MinGamesPerTeam
	if games > maxRecommended {
		games = maxRecommended
	}
	if surplus == 0 && games > 0 {
		games--
	}
	if games < 0 {
		games = 0
	}
	return games
}

// optimalGuestGames converts surplus slot capacity into a weekly guest game
// count. A modest surplus (<=20% of required) supports at most one guest
// game per week; no surplus, or a zero-week season, supports none.
func optimalGuestGames(capacity CapacityBreakdown, weeks int) int {
	if weeks <= 0 || capacity.SurplusOrShortfall <= 0 {
		return 0
	}
	perWeek := capacity.SurplusOrShortfall / weeks
	if capacity.RequiredRegularSlots > 0 {
		ratio := float64(capacity.SurplusOrShortfall) / float64(capacity.RequiredRegularSlots)
		if ratio <= modestSurplusRatio && perWeek > 1 {
			perWeek = 1
		}
	}
	return perWeek
}

func utilizationStatus(capacity CapacityBreakdown) string {
	if capacity.AvailableRegularSlots == 0 {
		if capacity.RequiredRegularSlots > 0 {
			return utilizationHigh
		}
		return utilizationLow
	}
	ratio := float64(capacity.RequiredRegularSlots) / float64(capacity.AvailableRegularSlots)
	switch {
	case ratio >= highUtilizationRatio:
		return utilizationHigh
	case ratio >= goodUtilizationRatio:
		return utilizationGood
	default:
		return utilizationLow
	}
}
