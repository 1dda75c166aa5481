package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Acquire matches and answer one question",
	Long: `Acquire matches and answer one question.

Examples:
  assistant ask "who should be captain?"
  assistant ask --offline --seed 42 "differential picks"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAsk(cmd, strings.Join(args, " "))
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, question string) error {
	if _, err := acquire(cmd); err != nil {
		return err
	}

	report, err := assistant.SubmitQuery(commandContext(cmd), question)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderEmphasis(report, !noColor))
	return nil
}
