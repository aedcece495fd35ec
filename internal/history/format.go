package history

import (
	"fmt"
	"strings"
)

// FormatRecords returns a human-readable table of stored estimates,
// newest first.
func FormatRecords(records []Record) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-20s %-9s %-16s %10s %12s %12s\n",
		"WHEN", "KIND", "MODEL", "AVG TOK", "REQ/DAY", "CAPACITY"))
	b.WriteString(strings.Repeat("-", 84) + "\n")

	for _, r := range records {
		when := r.CreatedAt
		if len(when) >= 19 {
			when = when[:19]
		}
		b.WriteString(fmt.Sprintf("%-20s %-9s %-16s %10.1f %12.0f %12.4f\n",
			when, r.Kind, r.Model, r.AvgInputTokens, r.RequestsDay, r.CapacityNeed))
	}
	return b.String()
}
