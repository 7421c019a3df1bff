package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lotushuong244-bit/englishmaster/internal/progress"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset learner data",
	Long:  "Deletes the learner profile and progress. With --events, practice and LLM history is purged too.",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		events, _ := cmd.Flags().GetBool("events")
		if !yes {
			return fmt.Errorf("this deletes all progress; re-run with --yes to confirm")
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		if err := progress.NewLedger(st.KVRepo(), nil).Reset(ctx); err != nil {
			return err
		}
		if events {
			if err := st.EventRepo().Purge(ctx); err != nil {
				return fmt.Errorf("purge events: %w", err)
			}
		}
		fmt.Println("Progress reset.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm the reset")
	resetCmd.Flags().Bool("events", false, "Also purge session, score and LLM events")
}
