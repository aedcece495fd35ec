package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/lyndonlyu/tokcap/internal/analyzer"
	"github.com/lyndonlyu/tokcap/internal/capacity"
	"github.com/lyndonlyu/tokcap/internal/config"
	"github.com/lyndonlyu/tokcap/internal/history"
	"github.com/lyndonlyu/tokcap/internal/tokenizer"
)

func noComplete(d prompt.Document) []prompt.Suggest {
	return nil
}

func parseFloatInput(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", raw)
	}
	return v, nil
}

func promptFloat(label string) (float64, error) {
	return parseFloatInput(prompt.Input(label, noComplete))
}

func promptYes(label string) bool {
	answer := strings.ToLower(strings.TrimSpace(prompt.Input(label, noComplete)))
	return answer == "y" || answer == "yes"
}

type analyzeSession struct {
	cfg   *config.Config
	est   capacity.Estimator
	model string
	buf   []string
}

var analyzeCommands = []prompt.Suggest{
	{Text: "/done", Description: "Analyze buffered lines"},
	{Text: "/model", Description: "Show or switch tokenizer model"},
	{Text: "/clear", Description: "Discard buffered lines"},
	{Text: "/help", Description: "Show available commands"},
	{Text: "/quit", Description: "Exit"},
}

func analyzeCompleter(d prompt.Document) []prompt.Suggest {
	text := d.TextBeforeCursor()
	if strings.HasPrefix(text, "/") {
		return prompt.FilterHasPrefix(analyzeCommands, text, true)
	}
	return nil
}

func analyzeInteractive(cfg *config.Config, model string) error {
	s := &analyzeSession{
		cfg:   cfg,
		est:   capacity.Estimator{OutputFactor: cfg.OutputFactor},
		model: model,
	}

	tok := tokenizer.ForModel(model, cfg.FallbackEncoding)
	fmt.Println(styleBanner.Render("Tokens & Capacity Calculator · " + tok.Name()))
	fmt.Println(styleInfo.Render("Paste questions one per line. Blank line or /done analyzes, /help for commands."))
	fmt.Println()

	p := prompt.New(
		s.execute,
		analyzeCompleter,
		prompt.OptionPrefix("tokcap> "),
		prompt.OptionPrefixTextColor(prompt.Green),
		prompt.OptionTitle("tokcap analyze"),
		prompt.OptionMaxSuggestion(8),
	)
	p.Run()
	return nil
}

func (s *analyzeSession) execute(input string) {
	line := strings.TrimSpace(input)
	switch {
	case line == "":
		if len(s.buf) > 0 {
			s.analyze()
		}
	case strings.HasPrefix(line, "/"):
		s.handleSlash(line)
	default:
		s.buf = append(s.buf, line)
		fmt.Println(styleDim.Render(fmt.Sprintf("buffered %d line(s)", len(s.buf))))
	}
}

func (s *analyzeSession) handleSlash(input string) {
	fields := strings.Fields(input)
	switch strings.ToLower(fields[0]) {
	case "/help":
		fmt.Println(styleBanner.Render("Commands:"))
		for _, sc := range analyzeCommands {
			fmt.Printf("  %-8s %s\n", stylePrompt.Render(sc.Text), sc.Description)
		}
	case "/model":
		if len(fields) < 2 {
			fmt.Println(styleInfo.Render("current model: " + s.model))
			return
		}
		s.model = fields[1]
		tok := tokenizer.ForModel(s.model, s.cfg.FallbackEncoding)
		fmt.Println(styleSuccess.Render("model set to " + s.model + " (" + tok.Name() + ")"))
	case "/clear":
		s.buf = nil
		fmt.Println(styleInfo.Render("buffer cleared"))
	case "/done":
		if len(s.buf) == 0 {
			fmt.Println(styleInfo.Render("nothing to analyze"))
			return
		}
		s.analyze()
	case "/quit", "/exit":
		os.Exit(0)
	default:
		fmt.Println(styleError.Render("unknown command: " + fields[0]))
	}
}

func (s *analyzeSession) analyze() {
	text := strings.Join(s.buf, "\n")
	s.buf = nil

	tok := tokenizer.ForModel(s.model, s.cfg.FallbackEncoding)
	report, err := analyzer.Analyze(text, tok)
	if err != nil {
		fmt.Println(styleError.Render("Error: " + err.Error()))
		return
	}
	report.Model = s.model

	fmt.Println()
	fmt.Println(styleBanner.Render("Per-line metrics"))
	fmt.Print(analyzer.FormatLines(report.Lines))
	fmt.Println()
	fmt.Println(styleBanner.Render("Aggregates"))
	fmt.Print(analyzer.FormatAggregate(report.Aggregate))

	rec := history.Record{
		Kind:           "analyze",
		Model:          s.model,
		AvgInputTokens: report.Aggregate.AvgTokensPerLine,
		Lines:          report.Aggregate.LinesCount,
		Tokens:         report.Aggregate.TotalTokens,
	}

	if promptYes("\nCompute capacity estimate? (y/N): ") {
		if res, ok := s.capacityStep(report); ok {
			rec.RequestsDay = res.RequestsDay
			rec.CapacityNeed = res.CapacityNeed
		}
	}

	recordEstimate(s.cfg, rec)
	fmt.Println()
}

func (s *analyzeSession) capacityStep(report *analyzer.Report) (capacity.Result, bool) {
	users, err := promptFloat("Users per day: ")
	if err != nil {
		fmt.Println(styleError.Render(err.Error() + "; skipping capacity section"))
		return capacity.Result{}, false
	}
	questions, err := promptFloat("Questions per user per day: ")
	if err != nil {
		fmt.Println(styleError.Render(err.Error() + "; skipping capacity section"))
		return capacity.Result{}, false
	}

	res, err := s.est.Compute(report.Aggregate.AvgTokensPerLine, users, questions)
	if err != nil {
		fmt.Println(styleError.Render("Error: " + err.Error()))
		return capacity.Result{}, false
	}

	fmt.Println()
	fmt.Println(styleBanner.Render("Capacity estimate"))
	fmt.Print(capacity.FormatHuman(res))
	return res, true
}
