package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lotushuong244-bit/englishmaster/internal/curriculum"
	"github.com/lotushuong244-bit/englishmaster/internal/progress"
)

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List course units and their lock status",
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
		user := ledger.Snapshot()

		fmt.Printf("Curriculum %s\n\n", catalog.Version)
		fmt.Printf("%-3s  %-6s  %-28s  %s\n", "", "Unit", "Title", "Modes")
		fmt.Println(strings.Repeat("─", 72))

		units := catalog.Units()
		for i := range units {
			u := &units[i]
			mark := " "
			switch curriculum.Status(units, i, user.CompletedUnits) {
			case curriculum.StatusCompleted:
				mark = "✓"
			case curriculum.StatusLocked:
				mark = "🔒"
			}

			var modes []string
			for _, m := range u.Modes() {
				name := string(m)
				if user.HasCompletedMode(u.ID, m) {
					name += "✓"
				}
				modes = append(modes, name)
			}
			fmt.Printf("%-3s  %-6d  %-28s  %s\n", mark, u.Order, truncate(u.Title, 28), strings.Join(modes, ", "))
		}
		return nil
	},
}
