package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lotushuong244-bit/englishmaster/internal/curriculum"
	"github.com/lotushuong244-bit/englishmaster/internal/leaderboard"
	"github.com/lotushuong244-bit/englishmaster/internal/progress"
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show the class leaderboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		catalog, err := curriculum.Default()
		if err != nil {
			return fmt.Errorf("load curriculum: %w", err)
		}
		ledger := progress.NewLedger(st.KVRepo(), nil)
		if _, err := ledger.Load(cmd.Context()); err != nil {
			return err
		}

		entries := leaderboard.Rank(catalog.Classmates(), ledger.Snapshot())
		fmt.Printf("%-4s  %-24s  %-6s  %8s\n", "#", "Name", "Class", "XP")
		fmt.Println(strings.Repeat("─", 48))
		for _, e := range entries {
			marker := ""
			if e.Current {
				marker = "  ← you"
			}
			fmt.Printf("%-4d  %-24s  %-6s  %8d%s\n", e.Rank, truncate(e.Name, 24), e.ClassID, e.XP, marker)
		}
		return nil
	},
}
