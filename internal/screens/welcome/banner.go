package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/lotushuong244-bit/englishmaster/internal/ui/theme"
)

const bannerArt = `
 ███████╗███╗   ██╗ ██████╗ ██╗     ██╗███████╗██╗  ██╗
 ██╔════╝████╗  ██║██╔════╝ ██║     ██║██╔════╝██║  ██║
 █████╗  ██╔██╗ ██║██║  ███╗██║     ██║███████╗███████║
 ██╔══╝  ██║╚██╗██║██║   ██║██║     ██║╚════██║██╔══██║
 ███████╗██║ ╚████║╚██████╔╝███████╗██║███████║██║  ██║
 ╚══════╝╚═╝  ╚═══╝ ╚═════╝ ╚══════╝╚═╝╚══════╝╚═╝  ╚═╝
                      M A S T E R`

const bannerCompact = "E N G L I S H   M A S T E R"

// RenderBanner returns the banner in the primary color, or a one-line
// version for terminals narrower than 60 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 60 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
