// Package roster handles the pre-registration roster boundary: parsing
// uploaded player lists and exporting the end-of-session attendance
// report. Both operate on snapshots; neither touches live session state.
package roster

import (
	"strings"

	"github.com/openplay/courtqueue/internal/model"
)

// deletedMarker flags roster rows exported from a previous session's
// deleted log; they are discarded on import.
const deletedMarker = "(deleted)"

// Parse reads an uploaded roster. Two layouts are accepted: tab-delimited
// rows (Name, PaymentType, Phone) and fixed-width space-aligned columns
// with a header and separator row. Rows with an empty or deleted-marked
// name are skipped, as are rows with an unknown payment type.
func Parse(text string) []model.Player {
	lines := splitLines(text)
	if len(lines) == 0 {
		return nil
	}

	if strings.Contains(text, "\t") {
		return parseTabDelimited(lines)
	}
	return parseFixedWidth(lines)
}

func splitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func parseTabDelimited(lines []string) []model.Player {
	var players []model.Player
	for i, line := range lines {
		fields := strings.Split(line, "\t")
		name := strings.TrimSpace(fields[0])

		// Tolerate an exported header row at the top
		if i == 0 && strings.EqualFold(name, "Name") {
			continue
		}

		payment := ""
		if len(fields) > 1 {
			payment = strings.TrimSpace(fields[1])
		}
		phone := ""
		if len(fields) > 2 {
			phone = strings.TrimSpace(fields[2])
		}

		if p, ok := buildPlayer(name, payment, phone); ok {
			players = append(players, p)
		}
	}
	return players
}

// parseFixedWidth handles space-aligned columns. The header row defines
// the column offsets; the separator row beneath it is skipped.
func parseFixedWidth(lines []string) []model.Player {
	if len(lines) < 2 {
		return nil
	}

	header := lines[0]
	offsets := columnOffsets(header)
	if len(offsets) < 2 {
		return nil
	}

	var players []model.Player
	for _, line := range lines[1:] {
		if isSeparator(line) {
			continue
		}
		fields := sliceColumns(line, offsets)
		name, payment, phone := fields[0], "", ""
		if len(fields) > 1 {
			payment = fields[1]
		}
		if len(fields) > 2 {
			phone = fields[2]
		}
		if p, ok := buildPlayer(name, payment, phone); ok {
			players = append(players, p)
		}
	}
	return players
}

// columnOffsets finds the start index of each header field. Two or more
// consecutive spaces separate columns; a single space is part of a column
// name ("Payment Type").
func columnOffsets(header string) []int {
	var offsets []int
	gap := 2
	for i, r := range header {
		if r == ' ' {
			gap++
			continue
		}
		if gap >= 2 {
			offsets = append(offsets, i)
		}
		gap = 0
	}
	return offsets
}

func sliceColumns(line string, offsets []int) []string {
	fields := make([]string, len(offsets))
	for i, start := range offsets {
		if start >= len(line) {
			fields[i] = ""
			continue
		}
		end := len(line)
		if i+1 < len(offsets) && offsets[i+1] < end {
			end = offsets[i+1]
		}
		fields[i] = strings.TrimSpace(line[start:end])
	}
	return fields
}

func isSeparator(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed != "" && strings.Trim(trimmed, "-= ") == ""
}

func buildPlayer(name, payment, phone string) (model.Player, bool) {
	name = strings.TrimSpace(name)
	if name == "" || strings.Contains(strings.ToLower(name), deletedMarker) {
		return model.Player{}, false
	}

	pm, err := model.ParsePaymentMethod(strings.ToLower(payment))
	if err != nil {
		pm = model.PaymentUnpaid
	}

	first, last := splitName(name)
	return model.Player{
		FirstName: first,
		LastName:  last,
		Phone:     phone,
		Payment:   pm,
	}, true
}

// splitName divides a full name at the first space. Single-token legacy
// names keep everything in FirstName.
func splitName(full string) (first, last string) {
	parts := strings.SplitN(full, " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}
