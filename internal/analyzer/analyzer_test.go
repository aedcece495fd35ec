package analyzer

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCounter counts two tokens per whitespace-delimited word.
type stubCounter struct{}

func (stubCounter) Count(text string) (int, error) {
	return len(strings.Fields(text)) * 2, nil
}

type failCounter struct{}

func (failCounter) Count(string) (int, error) {
	return 0, errors.New("encoding unavailable")
}

func TestAnalyzeDropsBlankLines(t *testing.T) {
	report, err := Analyze("a b c\n\nd e", stubCounter{})
	require.NoError(t, err)

	require.Len(t, report.Lines, 2)
	assert.Equal(t, 2, report.Aggregate.LinesCount)

	assert.Equal(t, 1, report.Lines[0].Index)
	assert.Equal(t, 3, report.Lines[0].Words)
	assert.Equal(t, 2, report.Lines[1].Index)
	assert.Equal(t, 2, report.Lines[1].Words)
	assert.Equal(t, 5, report.Aggregate.TotalWords)
}

func TestAnalyzeTrimsLines(t *testing.T) {
	report, err := Analyze("  hello world  \n\t\n\tfoo  ", stubCounter{})
	require.NoError(t, err)

	require.Len(t, report.Lines, 2)
	assert.Equal(t, "hello world", report.Lines[0].Text)
	assert.Equal(t, "foo", report.Lines[1].Text)
}

func TestAnalyzeAggregates(t *testing.T) {
	report, err := Analyze("one two\nthree four five six", stubCounter{})
	require.NoError(t, err)

	agg := report.Aggregate
	assert.Equal(t, 6, agg.TotalWords)
	assert.Equal(t, 12, agg.TotalTokens)
	assert.InDelta(t, 3.0, agg.AvgWordsPerLine, 1e-9)
	assert.InDelta(t, 6.0, agg.AvgTokensPerLine, 1e-9)
	assert.InDelta(t, 2.0, agg.TokensPerWord, 1e-9)
}

func TestAnalyzeEmptyText(t *testing.T) {
	for _, text := range []string{"", "   \n\t\n  "} {
		report, err := Analyze(text, stubCounter{})
		require.NoError(t, err)

		assert.Empty(t, report.Lines)
		assert.NotNil(t, report.Lines, "lines must serialize as [], not null")
		agg := report.Aggregate
		assert.Equal(t, 0, agg.LinesCount)
		assert.Equal(t, 0, agg.TotalWords)
		assert.InDelta(t, 0.0, agg.AvgWordsPerLine, 1e-9)
		assert.InDelta(t, 0.0, agg.AvgTokensPerLine, 1e-9)
		assert.InDelta(t, 0.0, agg.TokensPerWord, 1e-9)
	}
}

func TestAnalyzeCounterError(t *testing.T) {
	_, err := Analyze("some text", failCounter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "analyzer: count tokens")
}
