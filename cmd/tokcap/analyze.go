package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lyndonlyu/tokcap/internal/analyzer"
	"github.com/lyndonlyu/tokcap/internal/capacity"
	"github.com/lyndonlyu/tokcap/internal/config"
	"github.com/lyndonlyu/tokcap/internal/history"
	"github.com/lyndonlyu/tokcap/internal/tokenizer"
	"github.com/spf13/cobra"
)

var (
	anModel            string
	anJSON             bool
	anText             string
	anCapacity         bool
	anUsersPerDay      float64
	anQuestionsPerUser float64
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Tokenize text lines and compute word/token statistics",
	Long:  "Split text into non-empty lines, count words and subword tokens per line with the model's tokenizer, and aggregate totals and averages. The average tokens per line can optionally feed the capacity estimator.",
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&anModel, "model", "", "Tokenizer model name (default from config)")
	analyzeCmd.Flags().BoolVar(&anJSON, "json", false, "Non-interactive JSON output")
	analyzeCmd.Flags().StringVar(&anText, "text", "", `Literal text; \n sequences become newlines (stdin if omitted in JSON mode)`)
	analyzeCmd.Flags().BoolVar(&anCapacity, "capacity", false, "Append a capacity block to the JSON output")
	analyzeCmd.Flags().Float64Var(&anUsersPerDay, "users-per-day", 0, "Users per day (with --capacity)")
	analyzeCmd.Flags().Float64Var(&anQuestionsPerUser, "questions-per-user", 0, "Questions per user per day (with --capacity)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	model := anModel
	if model == "" {
		model = cfg.Model
	}

	if anJSON {
		return analyzeJSON(cmd, cfg, model)
	}
	return analyzeInteractive(cfg, model)
}

type capacityBlock struct {
	AvgInputTokens      float64 `json:"avg_input_tokens"`
	OutputTokensEst     float64 `json:"output_tokens_est"`
	CUSecondsPerRequest float64 `json:"cu_seconds_per_request"`
	CUHoursPerRequest   float64 `json:"cu_hours_per_request"`
	RequestsDay         float64 `json:"requests_day"`
	CapacityNeed        float64 `json:"capacity_need"`
}

type analyzeOutput struct {
	Model         string                `json:"model"`
	Totals        analyzer.Aggregate    `json:"totals"`
	Lines         []analyzer.LineResult `json:"lines"`
	Capacity      *capacityBlock        `json:"capacity,omitempty"`
	CapacityError string                `json:"capacity_error,omitempty"`
}

func analyzeJSON(cmd *cobra.Command, cfg *config.Config, model string) error {
	var text string
	if cmd.Flags().Changed("text") {
		text = expandText(anText)
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		text = string(data)
	}

	if strings.TrimSpace(text) == "" {
		return printJSON(map[string]string{"error": "no text provided"})
	}

	tok := tokenizer.ForModel(model, cfg.FallbackEncoding)
	report, err := analyzer.Analyze(text, tok)
	if err != nil {
		return printJSON(map[string]string{"error": err.Error()})
	}
	report.Model = model

	est := capacity.Estimator{OutputFactor: cfg.OutputFactor}
	out := buildAnalyzeOutput(report, est, anCapacity, anUsersPerDay, anQuestionsPerUser)
	if err := printJSON(out); err != nil {
		return err
	}

	rec := history.Record{
		Kind:           "analyze",
		Model:          model,
		AvgInputTokens: report.Aggregate.AvgTokensPerLine,
		Lines:          report.Aggregate.LinesCount,
		Tokens:         report.Aggregate.TotalTokens,
	}
	if out.Capacity != nil {
		rec.RequestsDay = out.Capacity.RequestsDay
		rec.CapacityNeed = out.Capacity.CapacityNeed
	}
	recordEstimate(cfg, rec)
	return nil
}

// buildAnalyzeOutput assembles the JSON payload. A requested capacity
// block with missing or invalid rate inputs degrades to a capacity_error
// field instead of failing the whole response.
func buildAnalyzeOutput(report *analyzer.Report, est capacity.Estimator, withCapacity bool, usersPerDay, questionsPerUser float64) analyzeOutput {
	out := analyzeOutput{Model: report.Model, Totals: report.Aggregate, Lines: report.Lines}
	if !withCapacity {
		return out
	}

	if usersPerDay <= 0 || questionsPerUser <= 0 {
		out.CapacityError = "users-per-day and questions-per-user required"
		return out
	}

	res, err := est.Compute(report.Aggregate.AvgTokensPerLine, usersPerDay, questionsPerUser)
	if err != nil {
		out.CapacityError = err.Error()
		return out
	}

	out.Capacity = &capacityBlock{
		AvgInputTokens:      res.InputTokens,
		OutputTokensEst:     res.OutputTokens,
		CUSecondsPerRequest: res.CUSeconds,
		CUHoursPerRequest:   res.CUHours,
		RequestsDay:         res.RequestsDay,
		CapacityNeed:        res.CapacityNeed,
	}
	return out
}

// expandText turns literal \n sequences passed through the shell into
// real newlines.
func expandText(text string) string {
	return strings.ReplaceAll(text, `\n`, "\n")
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
