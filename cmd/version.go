package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/lotushuong244-bit/englishmaster/internal/curriculum"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the app and course versions",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := curriculum.Default()
		if err != nil {
			return err
		}
		fmt.Printf("englishmaster %s\n", buildVersion())
		fmt.Printf("course        %s (%d units)\n", catalog.Version, len(catalog.Units()))
		return nil
	},
}

// buildVersion prefers the ldflags value, then the module version recorded
// by go install.
func buildVersion() string {
	if version != "(devel)" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return version
}
