// Package importer parses the slot CSV produced by the availability
// converter. The header is fixed:
//
//	division,offeringTeamId,gameDate,startTime,endTime,fieldKey,gameType,status,notes
//
// Rows missing a division, date, start time, or field are skipped rather
// than failing the whole import, mirroring the converter's skip counting.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/agsasports/leaguedesk/internal/slots"
)

var expectedHeader = []string{
	"division",
	"offeringTeamId",
	"gameDate",
	"startTime",
	"endTime",
	"fieldKey",
	"gameType",
	"status",
	"notes",
}

// Result reports what a parse pass produced.
type Result struct {
	Slots   []slots.Slot
	Skipped int
}

// Parse reads slot rows from r. It returns an error only for structural
// problems (bad header, malformed CSV); incomplete rows are counted as
// skipped.
func Parse(r io.Reader) (Result, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return Result{}, errors.New("empty CSV: missing header row")
	}
	if err != nil {
		return Result{}, fmt.Errorf("read header: %w", err)
	}
	if err := validateHeader(header); err != nil {
		return Result{}, err
	}

	var result Result
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Result{}, fmt.Errorf("read row: %w", err)
		}

		slot, ok := parseRow(record)
		if !ok {
			result.Skipped++
			continue
		}
		result.Slots = append(result.Slots, slot)
	}
	return result, nil
}

func validateHeader(header []string) error {
	if len(header) != len(expectedHeader) {
		return fmt.Errorf("expected %d columns, got %d", len(expectedHeader), len(header))
	}
	for i, want := range expectedHeader {
		if !strings.EqualFold(strings.TrimSpace(header[i]), want) {
			return fmt.Errorf("column %d is %q, expected %q", i+1, header[i], want)
		}
	}
	return nil
}

func parseRow(record []string) (slots.Slot, bool) {
	if len(record) != len(expectedHeader) {
		return slots.Slot{}, false
	}
	for i := range record {
		record[i] = strings.TrimSpace(record[i])
	}

	slot := slots.Slot{
		DivisionCode:   record[0],
		OfferingTeamID: record[1],
		GameDate:       record[2],
		StartTime:      record[3],
		EndTime:        record[4],
		FieldKey:       record[5],
		GameType:       record[6],
		Status:         record[7],
		Notes:          record[8],
	}
	if slot.DivisionCode == "" || slot.GameDate == "" || slot.StartTime == "" || slot.FieldKey == "" {
		return slots.Slot{}, false
	}
	slot.Phase = phaseFromNotes(slot.Notes)
	return slot, true
}

// phaseFromNotes maps the converter's slotType annotation, carried in the
// notes column, onto a season phase.
func phaseFromNotes(notes string) string {
	lowered := strings.ToLower(notes)
	switch {
	case strings.Contains(lowered, "bracket"), strings.Contains(lowered, "playoff"):
		return slots.PhaseBracket
	case strings.Contains(lowered, "pool"):
		return slots.PhasePool
	default:
		return slots.PhaseRegular
	}
}
