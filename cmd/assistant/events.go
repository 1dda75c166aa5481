package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List the matches of one acquisition",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runEvents(cmd)
	},
}

func init() {
	rootCmd.AddCommand(eventsCmd)
}

func runEvents(cmd *cobra.Command) error {
	if _, err := acquire(cmd); err != nil {
		return err
	}
	return printEvents(cmd)
}

// printEvents lists the current snapshot; the selected event is starred.
func printEvents(cmd *cobra.Command) error {
	snap, ok := assistant.Current()
	if !ok {
		return fmt.Errorf("no snapshot published yet")
	}

	out := cmd.OutOrStdout()
	if !snap.HasEvents() {
		fmt.Fprintln(out, snap.Explanation)
		return nil
	}
	for _, ev := range snap.Events {
		marker := " "
		if ev.ID == snap.Selected.ID {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %s  %s vs %s  %s  %s  %s\n",
			marker,
			ev.ID,
			ev.Teams[0],
			ev.Teams[1],
			ev.Format,
			ev.StartsAt.UTC().Format("Mon 02 Jan 15:04 MST"),
			ev.Venue,
		)
	}
	return nil
}
