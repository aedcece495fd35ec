package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lyndonlyu/tokcap/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tokcap",
	Short: "Tokens & compute-unit capacity calculator",
	Long:  "tokcap estimates token counts for question workloads and the compute-unit (CU) capacity needed to serve them.",
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("tokcap v0.1.0")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd, capacityCmd, analyzeCmd, historyCmd, explainCmd)
}

// loadConfig loads ~/.tokcap/config.yaml, falling back to defaults.
func loadConfig() (*config.Config, error) {
	home, err := homeDir()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(filepath.Join(home, ".tokcap", "config.yaml"))
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
