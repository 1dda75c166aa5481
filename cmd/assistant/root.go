package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/fantasy-cricket/internal/app"
	"github.com/riskibarqy/fantasy-cricket/internal/config"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/snapshot"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
	"github.com/riskibarqy/fantasy-cricket/internal/usecase"
	"github.com/spf13/cobra"
)

var (
	sourcesFile string
	seed        uint64
	offline     bool
	noColor     bool
	verbose     bool

	assistant *usecase.AssistantService
)

var rootCmd = &cobra.Command{
	Use:           "assistant",
	Short:         "Fantasy cricket assistant",
	Long:          `assistant acquires upcoming cricket matches, builds squads and answers fantasy questions in the terminal.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if strings.TrimSpace(sourcesFile) != "" {
			cfg.SourcesFile = sourcesFile
		}
		if cmd.Flags().Changed("seed") {
			cfg.RandomSeed = seed
		}
		if offline {
			cfg.NameProviderEnabled = false
			cfg.WeatherEnabled = false
		}

		logger := logging.NewNop()
		if verbose {
			logger = logging.NewJSON(logging.LevelDebug)
		}

		assistant, err = app.NewAssistant(cfg, logger, nil)
		return err
	},
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "error:", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&sourcesFile, "sources", "", "YAML source registry (overrides SOURCES_FILE)")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "random seed for squads and synthetic data (overrides RANDOM_SEED)")
	rootCmd.PersistentFlags().BoolVar(&offline, "offline", false, "skip name and weather lookups")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable bold emphasis")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log pipeline activity as JSON")
}

// acquire runs one acquisition and prints where the data came from.
func acquire(cmd *cobra.Command) (snapshot.Snapshot, error) {
	snap, err := assistant.RequestAcquisition(commandContext(cmd))
	if err != nil {
		return snapshot.Snapshot{}, err
	}
	out := cmd.OutOrStdout()
	switch snap.Status {
	case snapshot.StatusConnected:
		fmt.Fprintf(out, "Connected to %s (%d matches)\n\n", snap.DataSource, len(snap.Events))
	case snapshot.StatusSynthetic:
		fmt.Fprintf(out, "Live sources unavailable, using %s (%d matches)\n\n", snap.DataSource, len(snap.Events))
	default:
		fmt.Fprintln(out, "No matches available")
		fmt.Fprintln(out)
	}
	return snap, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
