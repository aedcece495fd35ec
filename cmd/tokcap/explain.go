package main

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Explain the compute-unit cost model",
	RunE:  runExplain,
}

func runExplain(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	md := fmt.Sprintf(`# Compute-unit cost model

Each question costs CU seconds proportional to its tokens:

    output_tokens = input_tokens * %.0f
    cu_seconds    = (input_tokens*100 + output_tokens*400) / 1000
    cu_hours      = cu_seconds / 3600

Output tokens are weighted 4x heavier per token than input tokens.

## Daily capacity

    requests_day  = users_per_day * questions_per_user
    capacity_need = (requests_day * cu_hours) / 24

capacity_need is the average concurrent CU throughput required to spread
the daily workload evenly across 24 hours.

Default tokenizer model: %s (unknown models fall back to the %s encoding).
`, cfg.OutputFactor, "`"+cfg.Model+"`", "`"+cfg.FallbackEncoding+"`")

	fmt.Print(renderMarkdown(md))
	return nil
}

// renderMarkdown renders markdown for the terminal, returning the raw
// text if rendering is unavailable.
func renderMarkdown(text string) string {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		return text
	}
	out, err := r.Render(text)
	if err != nil {
		return text
	}
	return out
}
