package hanoi

import (
	"fmt"

	"github.com/vovakirdan/tui-hanoi/internal/core"
)

const (
	menuButtonWidth = 10
	menuPadding     = 2
	menuMinW        = 40
	menuMinH        = 14
)

// RenderMenu draws the settings menu: one two-digit counter per setting,
// with the selected one framed by arrow glyphs.
func RenderMenu(dst *core.Screen, s core.Settings, selected core.Setting, style Style) {
	dst.Clear()
	if dst.Width() < menuMinW || dst.Height() < menuMinH {
		renderTooSmall(dst, menuMinW, menuMinH)
		return
	}

	halfX, halfY := dst.Width()/2, dst.Height()/2

	title := core.ColorDefault
	if style.Colors {
		title = core.ColorBrightCyan
	}
	dst.DrawTextCenteredColor(1, "Tower Of Hanoi", title)
	dst.DrawTextCentered(halfY/2, "Arrow keys: Change rules")

	for i, which := range []core.Setting{core.SettingPoles, core.SettingDisks} {
		x := 2 + halfX - menuButtonWidth - menuPadding + i*(menuButtonWidth+menuPadding)
		y := halfY

		dst.DrawText(x+3, y, which.Label())
		dst.DrawText(x, y, fmt.Sprintf("%02d", s.Value(which)))

		if which == selected {
			marker := core.ColorDefault
			if style.Colors {
				marker = core.ColorBrightYellow
			}
			dst.DrawTextColor(x, y-2, `/\`, marker)
			dst.DrawTextColor(x, y+2, `\/`, marker)
		}
	}

	dst.DrawTextCenteredColor(halfY+4, fmt.Sprintf("Best possible: %d moves", OptimalMoves(s.Poles, s.Disks)), core.ColorGray)
	dst.DrawTextCentered(dst.Height()-3, "Press Enter to play!")
	dst.DrawTextCenteredColor(dst.Height()-2, "Tab: scores | Alt+Enter: fullscreen | Q: quit", core.ColorGray)
}
