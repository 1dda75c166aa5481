package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

const chatHelp = `Commands: /events, /select <event id>, /retry, /quit. Anything else is a question.`

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Interactive session against one acquisition",
	Long: `Interactive session against one acquisition.

` + chatHelp,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runChat(cmd)
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command) error {
	if _, err := acquire(cmd); err != nil {
		return err
	}

	ctx := commandContext(cmd)
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, chatHelp)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch {
		case line == "/quit" || line == "/exit":
			return nil
		case line == "/events":
			if err := printEvents(cmd); err != nil {
				fmt.Fprintln(out, "error:", err)
			}
		case line == "/retry":
			if _, err := assistant.Retry(ctx); err != nil {
				fmt.Fprintln(out, "error:", err)
				continue
			}
			if err := printEvents(cmd); err != nil {
				fmt.Fprintln(out, "error:", err)
			}
		case strings.HasPrefix(line, "/select"):
			id := strings.TrimSpace(strings.TrimPrefix(line, "/select"))
			snap, err := assistant.SelectEvent(ctx, id)
			if err != nil {
				fmt.Fprintln(out, "error:", err)
				continue
			}
			fmt.Fprintf(out, "Selected %s\n", snap.Selected.Name)
		default:
			report, err := assistant.SubmitQuery(ctx, line)
			if err != nil {
				fmt.Fprintln(out, "error:", err)
				continue
			}
			fmt.Fprintln(out, renderEmphasis(report, !noColor))
		}
	}
}
