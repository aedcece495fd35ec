// Package analyzer splits text into non-empty lines and computes per-line
// and aggregate word/token statistics.
package analyzer

import (
	"fmt"
	"strings"

	"github.com/lyndonlyu/tokcap/internal/tokenizer"
)

// LineResult holds the metrics for one retained line. Index is the
// 1-based position among retained lines, in original order.
type LineResult struct {
	Index  int    `json:"index"`
	Text   string `json:"text"`
	Words  int    `json:"words"`
	Tokens int    `json:"tokens"`
}

// Aggregate holds totals and averages across all retained lines.
type Aggregate struct {
	LinesCount       int     `json:"lines"`
	TotalWords       int     `json:"words"`
	TotalTokens      int     `json:"tokens"`
	AvgWordsPerLine  float64 `json:"avg_words_per_line"`
	AvgTokensPerLine float64 `json:"avg_tokens_per_line"`
	TokensPerWord    float64 `json:"tokens_per_word"`
}

// Report is the full analysis of one block of text.
type Report struct {
	Model     string       `json:"model"`
	Lines     []LineResult `json:"lines"`
	Aggregate Aggregate    `json:"totals"`
}

// Analyze splits text on line boundaries, trims each line, drops lines
// that are empty after trimming, and computes word and token counts for
// the rest. Averages divide by max(1, line count) so empty input yields
// zeros rather than NaN.
func Analyze(text string, tok tokenizer.Counter) (*Report, error) {
	lines := make([]LineResult, 0)
	totalWords := 0
	totalTokens := 0

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		words := len(strings.Fields(line))
		tokens, err := tok.Count(line)
		if err != nil {
			return nil, fmt.Errorf("analyzer: count tokens: %w", err)
		}

		totalWords += words
		totalTokens += tokens
		lines = append(lines, LineResult{
			Index:  len(lines) + 1,
			Text:   line,
			Words:  words,
			Tokens: tokens,
		})
	}

	div := len(lines)
	if div == 0 {
		div = 1
	}
	tokensPerWord := 0.0
	if totalWords > 0 {
		tokensPerWord = float64(totalTokens) / float64(totalWords)
	}

	return &Report{
		Lines: lines,
		Aggregate: Aggregate{
			LinesCount:       len(lines),
			TotalWords:       totalWords,
			TotalTokens:      totalTokens,
			AvgWordsPerLine:  float64(totalWords) / float64(div),
			AvgTokensPerLine: float64(totalTokens) / float64(div),
			TokensPerWord:    tokensPerWord,
		},
	}, nil
}
