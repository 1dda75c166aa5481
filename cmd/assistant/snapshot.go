package main

import (
	"fmt"

	sonic "github.com/bytedance/sonic"
	"github.com/spf13/cobra"
)

type attemptView struct {
	Source      string `json:"source"`
	Endpoint    string `json:"endpoint"`
	Alternative bool   `json:"alternative"`
	Outcome     string `json:"outcome"`
	Records     int    `json:"records"`
}

type snapshotView struct {
	ID          string        `json:"id"`
	Status      string        `json:"status"`
	DataSource  string        `json:"dataSource,omitempty"`
	Explanation string        `json:"explanation,omitempty"`
	Events      int           `json:"events"`
	Selected    string        `json:"selectedEventId,omitempty"`
	Attempts    []attemptView `json:"attempts"`
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print the acquisition outcome and every source attempt as JSON",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runSnapshot(cmd)
	},
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
}

func runSnapshot(cmd *cobra.Command) error {
	snap, err := acquire(cmd)
	if err != nil {
		return err
	}

	view := snapshotView{
		ID:          snap.ID,
		Status:      string(snap.Status),
		DataSource:  snap.DataSource,
		Explanation: snap.Explanation,
		Events:      len(snap.Events),
		Selected:    snap.Selected.ID,
		Attempts:    make([]attemptView, 0, len(snap.Attempts)),
	}
	for _, a := range snap.Attempts {
		view.Attempts = append(view.Attempts, attemptView{
			Source:      a.Source,
			Endpoint:    a.Endpoint,
			Alternative: a.Alternative,
			Outcome:     string(a.Outcome),
			Records:     a.Records,
		})
	}

	raw, err := sonic.ConfigStd.MarshalIndent(view, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(raw))
	return nil
}
