package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatLinesEmpty(t *testing.T) {
	assert.Equal(t, "(no lines)\n", FormatLines(nil))
}

func TestFormatLines(t *testing.T) {
	lines := []LineResult{
		{Index: 1, Text: "what is revenue", Words: 3, Tokens: 4},
		{Index: 2, Text: "top customers by region", Words: 4, Tokens: 5},
	}
	out := FormatLines(lines)

	rows := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, rows, 4)
	assert.Contains(t, rows[0], "WORDS")
	assert.Contains(t, rows[0], "TOKENS")
	assert.Contains(t, rows[2], "what is revenue")
	assert.Contains(t, rows[3], "top customers by region")
}

func TestFormatAggregateUsesDirectLineCount(t *testing.T) {
	// Zero average words must not break the line count display.
	out := FormatAggregate(Aggregate{LinesCount: 2, TotalWords: 0})
	assert.Contains(t, out, "Total lines           : 2")

	out = FormatAggregate(Aggregate{
		LinesCount:       3,
		TotalWords:       12,
		TotalTokens:      18,
		AvgWordsPerLine:  4,
		AvgTokensPerLine: 6,
		TokensPerWord:    1.5,
	})
	assert.Contains(t, out, "Total lines           : 3")
	assert.Contains(t, out, "Tokens / word         : 1.5000")
}
