package feasibility

import "fmt"

const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Stable conflict identifiers. The frontend keys remediation hints off these,
// so they must not change between releases.
const (
	ConflictCapacityInsufficient        = "capacity-insufficient"
	ConflictGuestGamesOverConsuming     = "guest-games-over-consuming"
	ConflictNoDoubleHeadersBlocking     = "no-doubleheaders-blocking"
	ConflictMaxGamesPerWeekInsufficient = "max-games-per-week-insufficient"
)

// Conflict is one violated scheduling rule. Message embeds the numbers that
// triggered the rule so admins can act without re-deriving them.
type Conflict struct {
	ConflictID string `json:"ConflictId"`
	Severity   string
	Message    string
}

// detectConflicts evaluates every rule independently, in a fixed order, so a
// result may carry several conflicts at once. A division with no teams has
// nothing to schedule and raises none. Always returns a non-nil slice; an
// empty one serializes as [] for the API.
func detectConflicts(in Input, capacity CapacityBreakdown) []Conflict {
	conflicts := make([]Conflict, 0, 4)
	if in.TeamCount == 0 {
		return conflicts
	}

	if capacity.RequiredRegularSlots > capacity.AvailableRegularSlots {
		conflicts = append(conflicts, Conflict{
			ConflictID: ConflictCapacityInsufficient,
			Severity:   SeverityError,
			Message: fmt.Sprintf(
				"Regular season requires %d slots but only %d available",
				capacity.RequiredRegularSlots, capacity.AvailableRegularSlots),
		})
	}

	if in.GuestGamesPerWeek > 0 && capacity.EffectiveSlotsRemaining < capacity.RequiredRegularSlots {
		conflicts = append(conflicts, Conflict{
			ConflictID: ConflictGuestGamesOverConsuming,
			Severity:   SeverityWarning,
			Message: fmt.Sprintf(
				"Guest games reserve %d slots, leaving %d of %d required for league play",
				capacity.GuestSlotsReserved, capacity.EffectiveSlotsRemaining, capacity.RequiredRegularSlots),
		})
	}

	if in.NoDoubleHeaders && in.MinGamesPerTeam > in.RegularWeeksCount {
		conflicts = append(conflicts, Conflict{
			ConflictID: ConflictNoDoubleHeadersBlocking,
			Severity:   SeverityError,
			Message: fmt.Sprintf(
				"With doubleheaders disabled, %d games/team cannot fit in %d weeks at one game per week",
				in.MinGamesPerTeam, in.RegularWeeksCount),
		})
	}

	if in.MinGamesPerTeam > in.MaxGamesPerWeek*in.RegularWeeksCount {
		conflicts = append(conflicts, Conflict{
			ConflictID: ConflictMaxGamesPerWeekInsufficient,
			Severity:   SeverityWarning,
			Message: fmt.Sprintf(
				"Weekly cap of %d games over %d weeks cannot reach %d games/team",
				in.MaxGamesPerWeek, in.RegularWeeksCount, in.MinGamesPerTeam),
		})
	}

	return conflicts
}
