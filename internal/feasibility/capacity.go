package feasibility

// CapacityBreakdown compares required slot counts against availability for
// the regular season. SurplusOrShortfall is signed: negative means the
// season cannot fit. EffectiveSlotsRemaining may also go negative when guest
// games reserve more than the season has; conflict detection flags that
// rather than clamping here.
type CapacityBreakdown struct {
	AvailableRegularSlots   int
	RequiredRegularSlots    int
	SurplusOrShortfall      int
	GuestSlotsReserved      int
	EffectiveSlotsRemaining int
}

// requiredSlots returns ceil(teamCount * gamesPerTeam / 2). Each slot hosts
// one game and each game credits two teams, so odd products round up
// (9 teams x 15 games = 135 team-games -> 68 slots).
func requiredSlots(teamCount, gamesPerTeam int) int {
	if teamCount <= 0 || gamesPerTeam <= 0 {
		return 0
	}
	return (teamCount*gamesPerTeam + 1) / 2
}

func calculateCapacity(in Input) CapacityBreakdown {
	required := 0
	// A season with no teams or no weeks has nothing to schedule.
	if in.TeamCount > 0 && in.RegularWeeksCount > 0 {
		required = requiredSlots(in.TeamCount, in.MinGamesPerTeam)
	}

	reserved := in.GuestGamesPerWeek * in.RegularWeeksCount

	return CapacityBreakdown{
		AvailableRegularSlots:   in.AvailableRegularSlots,
		RequiredRegularSlots:    required,
		SurplusOrShortfall:      in.AvailableRegularSlots - required,
		GuestSlotsReserved:      reserved,
		EffectiveSlotsRemaining: in.AvailableRegularSlots - reserved,
	}
}

// poolPlayFeasible reports whether pool play fits. Divisions that request no
// pool games have no pool phase, which is trivially feasible.
func poolPlayFeasible(in Input) bool {
	if in.PoolGamesPerTeam <= 0 {
		return true
	}
	return in.AvailablePoolSlots >= requiredSlots(in.TeamCount, in.PoolGamesPerTeam)
}

// bracketFeasible compares available bracket slots against the bracket
// requirement. No caller currently supplies an explicit requirement, so the
// requirement is zero and any non-short bracket allocation passes.
func bracketFeasible(in Input) bool {
	const requiredBracketSlots = 0
	return in.AvailableBracketSlots >= requiredBracketSlots
}
