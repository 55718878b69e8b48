package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	cfgPath    string
	verbose    bool
	jsonOutput bool
	tolerance  float64
	confidence float64
	workers    int

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "arud",
	Short: "arud - classical Arabic meter and rhyme analyzer",
	Long: `arud scans vocalized Arabic verse, names its meter among the
sixteen classical buhur, and reads off the qafiyah.

Input must carry diacritics: the analyzer transcribes recitation, and
recitation cannot be recovered from bare consonants.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return loadConfig()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a YAML config file (default $HOME/.arud.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "emit JSON instead of text")
	rootCmd.PersistentFlags().Float64Var(&tolerance, "tolerance", -1, "allowed fraction of unmarked consonants (0..1)")
	rootCmd.PersistentFlags().Float64Var(&confidence, "confidence", -1, "minimum confidence to name a meter (0..1)")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 0, "concurrent verses in poem mode (0 = one per CPU)")

	rootCmd.AddCommand(verseCmd)
	rootCmd.AddCommand(poemCmd)
	rootCmd.AddCommand(metersCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
