package capacity

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Rows returns the result as ordered (label, value) pairs for display.
func (r Result) Rows() [][2]string {
	return [][2]string{
		{"Input Tokens (avg)", fmt.Sprintf("%.2f", r.InputTokens)},
		{"Output Tokens (estimated)", fmt.Sprintf("%.2f", r.OutputTokens)},
		{"CU Seconds (per request)", fmt.Sprintf("%.4f", r.CUSeconds)},
		{"CU Minutes (per request)", fmt.Sprintf("%.6f", r.CUMinutes)},
		{"CU Hours (per request)", fmt.Sprintf("%.8f", r.CUHours)},
		{"Users / Day", fmt.Sprintf("%.0f", r.UsersPerDay)},
		{"Questions / User / Day", fmt.Sprintf("%.2f", r.QuestionsPerUser)},
		{"Requests / Day", fmt.Sprintf("%.0f", r.RequestsDay)},
		{"Capacity Need (CU)", fmt.Sprintf("%.6f", r.CapacityNeed)},
	}
}

// FormatHuman returns an aligned label/value table for a result.
func FormatHuman(r Result) string {
	rows := r.Rows()
	width := 0
	for _, row := range rows {
		if len(row[0]) > width {
			width = len(row[0])
		}
	}
	width += 2

	var b strings.Builder
	for _, row := range rows {
		fmt.Fprintf(&b, "%-*s: %s\n", width, row[0], row[1])
	}
	return b.String()
}

// FormatJSON returns the result as indented JSON.
func FormatJSON(r Result) (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("capacity: json marshal: %w", err)
	}
	return string(data), nil
}
