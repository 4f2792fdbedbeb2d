// Package feasibility computes whether a league division's season schedule
// is achievable given its team count, slot availability, and scheduling
// constraints. The analysis is a pure computation: infeasibility is ordinary
// output (conflicts and flags), never an error.
package feasibility

// Input is the full parameter set for a single analysis. All fields are
// required; zero values are legal and produce a well-defined result.
type Input struct {
	TeamCount             int  `json:"teamCount"`
	AvailableRegularSlots int  `json:"availableRegularSlots"`
	AvailablePoolSlots    int  `json:"availablePoolSlots"`
	AvailableBracketSlots int  `json:"availableBracketSlots"`
	MinGamesPerTeam       int  `json:"minGamesPerTeam"`
	PoolGamesPerTeam      int  `json:"poolGamesPerTeam"`
	MaxGamesPerWeek       int  `json:"maxGamesPerWeek"`
	NoDoubleHeaders       bool `json:"noDoubleHeaders"`
	RegularWeeksCount     int  `json:"regularWeeksCount"`
	GuestGamesPerWeek     int  `json:"guestGamesPerWeek"`
}

// Result is the composed outcome of one analysis. Field names are part of
// the wire contract consumed by the frontend; do not rename.
type Result struct {
	RegularSeasonFeasible bool
	PoolPlayFeasible      bool
	BracketFeasible       bool
	Capacity              CapacityBreakdown
	Conflicts             []Conflict
	Recommendations       Recommendations
}

// Analyze runs the three analysis phases over one set of league parameters.
// Capacity feeds both conflict detection and recommendations; the latter two
// are independent of each other. Analyze never panics for non-negative
// inputs and performs no I/O.
func Analyze(in Input) Result {
	capacity := calculateCapacity(in)

	return Result{
		RegularSeasonFeasible: capacity.AvailableRegularSlots >= capacity.RequiredRegularSlots,
		PoolPlayFeasible:      poolPlayFeasible(in),
		BracketFeasible:       bracketFeasible(in),
		Capacity:              capacity,
		Conflicts:             detectConflicts(in, capacity),
		Recommendations:       buildRecommendations(in, capacity),
	}
}
