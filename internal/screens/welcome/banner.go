package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/elemquiz/internal/ui/theme"
)

const bannerArt = `
 ███████╗██╗     ███████╗███╗   ███╗ ██████╗ ██╗   ██╗██╗███████╗
 ██╔════╝██║     ██╔════╝████╗ ████║██╔═══██╗██║   ██║██║╚══███╔╝
 █████╗  ██║     █████╗  ██╔████╔██║██║   ██║██║   ██║██║  ███╔╝
 ██╔══╝  ██║     ██╔══╝  ██║╚██╔╝██║██║▄▄ ██║██║   ██║██║ ███╔╝
 ███████╗███████╗███████╗██║ ╚═╝ ██║╚██████╔╝╚██████╔╝██║███████╗
 ╚══════╝╚══════╝╚══════╝╚═╝     ╚═╝ ╚══▀▀═╝  ╚═════╝ ╚═╝╚══════╝`

const bannerCompact = "E L E M Q U I Z"

// bannerMinWidth is the narrowest terminal that fits bannerArt.
const bannerMinWidth = 68

// RenderBanner returns the ELEMQUIZ banner in the primary color, or the
// spaced-out compact form on narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
