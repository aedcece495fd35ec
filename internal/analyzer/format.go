package analyzer

import (
	"fmt"
	"strings"
)

// FormatLines returns a width-aligned per-line metrics table.
func FormatLines(lines []LineResult) string {
	if len(lines) == 0 {
		return "(no lines)\n"
	}

	wIdx := len("#")
	wWords := len("WORDS")
	wTokens := len("TOKENS")
	for _, l := range lines {
		if n := digits(l.Index); n > wIdx {
			wIdx = n
		}
		if n := digits(l.Words); n > wWords {
			wWords = n
		}
		if n := digits(l.Tokens); n > wTokens {
			wTokens = n
		}
	}

	var b strings.Builder
	header := fmt.Sprintf("%*s  %*s  %*s  TEXT", wIdx, "#", wWords, "WORDS", wTokens, "TOKENS")
	b.WriteString(header + "\n")
	b.WriteString(strings.Repeat("-", len(header)) + "\n")
	for _, l := range lines {
		fmt.Fprintf(&b, "%*d  %*d  %*d  %s\n", wIdx, l.Index, wWords, l.Words, wTokens, l.Tokens, l.Text)
	}
	return b.String()
}

// FormatAggregate returns a labeled table of aggregate metrics.
func FormatAggregate(agg Aggregate) string {
	return fmt.Sprintf(
		"Total lines           : %d\n"+
			"Total words           : %d\n"+
			"Total tokens          : %d\n"+
			"Average words / line  : %.2f\n"+
			"Average tokens / line : %.2f\n"+
			"Tokens / word         : %.4f\n",
		agg.LinesCount,
		agg.TotalWords,
		agg.TotalTokens,
		agg.AvgWordsPerLine,
		agg.AvgTokensPerLine,
		agg.TokensPerWord,
	)
}

func digits(n int) int {
	return len(fmt.Sprintf("%d", n))
}
