package main

import (
	"fmt"

	"github.com/lyndonlyu/tokcap/internal/capacity"
	"github.com/lyndonlyu/tokcap/internal/config"
	"github.com/lyndonlyu/tokcap/internal/history"
	"github.com/spf13/cobra"
)

var (
	capAvgInputTokens   float64
	capUsersPerDay      float64
	capQuestionsPerUser float64
	capJSON             bool
)

var capacityCmd = &cobra.Command{
	Use:   "capacity",
	Short: "Estimate compute-unit capacity for a daily question workload",
	Long:  "Apply the CU cost model to average input tokens, users per day, and questions per user. With all three flags set the estimate prints once and exits; otherwise an interactive prompt loop starts.",
	RunE:  runCapacity,
}

func init() {
	capacityCmd.Flags().Float64Var(&capAvgInputTokens, "avg-input-tokens", 0, "Average input tokens per question")
	capacityCmd.Flags().Float64Var(&capUsersPerDay, "users-per-day", 0, "Users per day")
	capacityCmd.Flags().Float64Var(&capQuestionsPerUser, "questions-per-user", 0, "Questions per user per day")
	capacityCmd.Flags().BoolVar(&capJSON, "json", false, "Print the result as JSON")
}

func runCapacity(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	est := capacity.Estimator{OutputFactor: cfg.OutputFactor}

	flagsSet := cmd.Flags().Changed("avg-input-tokens") &&
		cmd.Flags().Changed("users-per-day") &&
		cmd.Flags().Changed("questions-per-user")
	if !flagsSet {
		return capacityInteractive(cfg, est)
	}

	res, err := est.Compute(capAvgInputTokens, capUsersPerDay, capQuestionsPerUser)
	if err != nil {
		return err
	}

	if capJSON {
		out, err := capacity.FormatJSON(res)
		if err != nil {
			return err
		}
		fmt.Println(out)
	} else {
		fmt.Print(capacity.FormatHuman(res))
	}

	recordEstimate(cfg, capacityRecord(res))
	return nil
}

func capacityRecord(res capacity.Result) history.Record {
	return history.Record{
		Kind:           "capacity",
		AvgInputTokens: res.InputTokens,
		RequestsDay:    res.RequestsDay,
		CapacityNeed:   res.CapacityNeed,
	}
}

func capacityInteractive(cfg *config.Config, est capacity.Estimator) error {
	fmt.Println(styleBanner.Render("Manual Compute Units Estimator"))
	fmt.Println(styleInfo.Render("All inputs must be positive numbers."))
	fmt.Println()

	for {
		res, err := capacityPromptOnce(est)
		if err != nil {
			fmt.Println(styleError.Render("Error: " + err.Error()))
			continue
		}

		fmt.Println()
		fmt.Println(styleBanner.Render("Results"))
		fmt.Print(capacity.FormatHuman(res))
		fmt.Println()
		fmt.Println(styleDim.Render("Base formula: cu_seconds = (input*100 + (input*factor)*400)/1000"))
		recordEstimate(cfg, capacityRecord(res))

		if !promptYes("\nRun again? (y/N): ") {
			return nil
		}
		fmt.Println()
	}
}

func capacityPromptOnce(est capacity.Estimator) (capacity.Result, error) {
	avgInputTokens, err := promptFloat("Average input tokens per question: ")
	if err != nil {
		return capacity.Result{}, err
	}
	usersPerDay, err := promptFloat("Users per day: ")
	if err != nil {
		return capacity.Result{}, err
	}
	questionsPerUser, err := promptFloat("Questions per user per day: ")
	if err != nil {
		return capacity.Result{}, err
	}
	return est.Compute(avgInputTokens, usersPerDay, questionsPerUser)
}
