package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lotushuong244-bit/englishmaster/internal/curriculum"
	"github.com/lotushuong244-bit/englishmaster/internal/progress"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		ledger := progress.NewLedger(st.KVRepo(), nil)
		loggedIn, err := ledger.Load(ctx)
		if err != nil {
			return err
		}
		if !loggedIn {
			fmt.Println("No learner yet. Run englishmaster to log in.")
			return nil
		}
		u := ledger.Snapshot()

		fmt.Printf("Learner:   %s (%s, class %s)\n", u.Profile.Name, u.Profile.StudentID, u.Profile.ClassID)
		fmt.Printf("XP:        %d\n", u.XP)
		fmt.Printf("Level:     %d (%.0f%% to next)\n", u.Level, progress.LevelProgress(u.XP)*100)
		fmt.Printf("Streak:    %d day(s)\n", progress.CurrentStreak(u, time.Now()))
		fmt.Printf("Units:     %d completed\n", len(u.CompletedUnits))

		if len(u.Badges) > 0 {
			labels := make([]string, len(u.Badges))
			for i, b := range u.Badges {
				labels[i] = progress.BadgeLabel(b)
			}
			fmt.Printf("Badges:    %s\n", strings.Join(labels, ", "))
		}

		totals, err := st.EventRepo().XPByMode(ctx, u.Profile.StudentID)
		if err != nil {
			return fmt.Errorf("query XP by mode: %w", err)
		}
		if len(totals) == 0 {
			return nil
		}

		fmt.Println()
		fmt.Printf("%-16s  %6s  %8s\n", "Mode", "Awards", "XP")
		fmt.Println(strings.Repeat("─", 34))
		for _, t := range totals {
			name := t.Mode
			if m, ok := curriculum.ParseMode(t.Mode); ok {
				name = m.DisplayName()
			}
			if name == "" {
				name = "(other)"
			}
			fmt.Printf("%-16s  %6d  %8d\n", name, t.Awards, t.Points)
		}
		return nil
	},
}
