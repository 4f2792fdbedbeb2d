// Package slots persists divisions and their bookable game slots. Slot rows
// come from the CSV importer or admin edits; divisions carry the scheduling
// parameters the feasibility analyzer reads.
package slots

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	appdb "github.com/agsasports/leaguedesk/internal/db"
	"github.com/agsasports/leaguedesk/internal/feasibility"
)

const (
	PhaseRegular = "regular"
	PhasePool    = "pool"
	PhaseBracket = "bracket"

	StatusOpen = "Open"

	defaultOfferingTeamID = "LEAGUE_ADMIN"
	defaultGameType       = "Swap"
)

var ErrDivisionNotFound = errors.New("division not found")

type Division struct {
	ID                int64  `json:"id"`
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

type Slot struct {
	ID             int64  `json:"id"`
	DivisionCode   string `json:"division"`
	OfferingTeamID string `json:"offeringTeamId"`
	GameDate       string `json:"gameDate"`
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
	FieldKey       string `json:"fieldKey"`
	Phase          string `json:"phase"`
	GameType       string `json:"gameType"`
	Status         string `json:"status"`
	Notes          string `json:"notes"`
}

// AnalysisInput combines the division's stored scheduling parameters with
// its current open-slot counts into feasibility analyzer input.
func (d Division) AnalysisInput(availability PhaseAvailability) feasibility.Input {
	return feasibility.Input{
		TeamCount:             d.TeamCount,
		AvailableRegularSlots: availability.Regular,
		AvailablePoolSlots:    availability.Pool,
		AvailableBracketSlots: availability.Bracket,
		MinGamesPerTeam:       d.MinGamesPerTeam,
		PoolGamesPerTeam:      d.PoolGamesPerTeam,
		MaxGamesPerWeek:       d.MaxGamesPerWeek,
		NoDoubleHeaders:       d.NoDoubleHeaders,
		RegularWeeksCount:     d.RegularWeeksCount,
		GuestGamesPerWeek:     d.GuestGamesPerWeek,
	}
}

// PhaseAvailability is the open-slot count per season phase for one division.
type PhaseAvailability struct {
	Regular int `json:"regular"`
	Pool    int `json:"pool"`
	Bracket int `json:"bracket"`
}

type Store struct {
	db *appdb.DB
}

func NewStore(database *appdb.DB) (*Store, error) {
	if database == nil {
		return nil, errors.New("slot store requires a database")
	}
	return &Store{db: database}, nil
}

func (s *Store) CreateDivision(ctx context.Context, division Division) (int64, error) {
	if division.Code == "" {
		return 0, errors.New("division code is required")
	}
	if division.Name == "" {
		return 0, errors.New("division name is required")
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO divisions (
			code, name, team_count, min_games_per_team, pool_games_per_team,
			max_games_per_week, no_double_headers, regular_weeks_count,
			guest_games_per_week
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		division.Code,
		division.Name,
		division.TeamCount,
		division.MinGamesPerTeam,
		division.PoolGamesPerTeam,
		division.MaxGamesPerWeek,
		division.NoDoubleHeaders,
		division.RegularWeeksCount,
		division.GuestGamesPerWeek,
	)
	if err != nil {
		return 0, fmt.Errorf("insert division %q: %w", division.Code, err)
	}
	return result.LastInsertId()
}

func (s *Store) GetDivision(ctx context.Context, code string) (Division, error) {
	var division Division
	err := s.db.QueryRowContext(ctx, `
		SELECT id, code, name, team_count, min_games_per_team,
			pool_games_per_team, max_games_per_week, no_double_headers,
			regular_weeks_count, guest_games_per_week
		FROM divisions WHERE code = ?`, code).Scan(
		&division.ID,
		&division.Code,
		&division.Name,
		&division.TeamCount,
		&division.MinGamesPerTeam,
		&division.PoolGamesPerTeam,
		&division.MaxGamesPerWeek,
		&division.NoDoubleHeaders,
		&division.RegularWeeksCount,
		&division.GuestGamesPerWeek,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Division{}, ErrDivisionNotFound
	}
	if err != nil {
		return Division{}, fmt.Errorf("get division %q: %w", code, err)
	}
	return division, nil
}

func (s *Store) ListDivisions(ctx context.Context) ([]Division, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, code, name, team_count, min_games_per_team,
			pool_games_per_team, max_games_per_week, no_double_headers,
			regular_weeks_count, guest_games_per_week
		FROM divisions ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("list divisions: %w", err)
	}
	defer rows.Close()

	var divisions []Division
	for rows.Next() {
		var division Division
		if err := rows.Scan(
			&division.ID,
			&division.Code,
			&division.Name,
			&division.TeamCount,
			&division.MinGamesPerTeam,
			&division.PoolGamesPerTeam,
			&division.MaxGamesPerWeek,
			&division.NoDoubleHeaders,
			&division.RegularWeeksCount,
			&division.GuestGamesPerWeek,
		); err != nil {
			return nil, fmt.Errorf("scan division: %w", err)
		}
		divisions = append(divisions, division)
	}
	return divisions, rows.Err()
}

// InsertSlots writes a batch of slots in one transaction and returns the
// number inserted. Missing offering team, game type, status, or phase fall
// back to the import defaults.
func (s *Store) InsertSlots(ctx context.Context, batch []Slot) (int, error) {
	inserted := 0
	err := s.db.RunInTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO slots (
				division_code, offering_team_id, game_date, start_time,
				end_time, field_key, phase, game_type, status, notes
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("prepare slot insert: %w", err)
		}
		defer stmt.Close()

		for _, slot := range batch {
			if slot.DivisionCode == "" {
				return errors.New("slot division code is required")
			}
			slot = withDefaults(slot)
			if _, err := stmt.ExecContext(ctx,
				slot.DivisionCode,
				slot.OfferingTeamID,
				slot.GameDate,
				slot.StartTime,
				slot.EndTime,
				slot.FieldKey,
				slot.Phase,
				slot.GameType,
				slot.Status,
				slot.Notes,
			); err != nil {
				return fmt.Errorf("insert slot %s %s %s: %w",
					slot.DivisionCode, slot.GameDate, slot.StartTime, err)
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

// CountOpenSlots returns per-phase open-slot counts for a division. These
// feed the analyzer's available-slot inputs.
func (s *Store) CountOpenSlots(ctx context.Context, divisionCode string) (PhaseAvailability, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT phase, COUNT(*) FROM slots
		WHERE division_code = ? AND status = ?
		GROUP BY phase`, divisionCode, StatusOpen)
	if err != nil {
		return PhaseAvailability{}, fmt.Errorf("count open slots for %q: %w", divisionCode, err)
	}
	defer rows.Close()

	var availability PhaseAvailability
	for rows.Next() {
		var phase string
		var count int
		if err := rows.Scan(&phase, &count); err != nil {
			return PhaseAvailability{}, fmt.Errorf("scan slot count: %w", err)
		}
		switch phase {
		case PhaseRegular:
			availability.Regular = count
		case PhasePool:
			availability.Pool = count
		case PhaseBracket:
			availability.Bracket = count
		}
	}
	return availability, rows.Err()
}

func withDefaults(slot Slot) Slot {
	if slot.OfferingTeamID == "" {
		slot.OfferingTeamID = defaultOfferingTeamID
	}
	if slot.GameType == "" {
		slot.GameType = defaultGameType
	}
	if slot.Status == "" {
		slot.Status = StatusOpen
	}
	if slot.Phase == "" {
		slot.Phase = PhaseRegular
	}
	return slot
}
