package hanoi

import (
	"fmt"

	"github.com/vovakirdan/tui-hanoi/internal/core"
)

// Style controls the glyphs and spacing of the board drawing.
type Style struct {
	Padding int    // Empty columns added to the disk count between poles
	Pole    rune   // Bare pole segment
	Marker  rune   // Cursor marker above the selected pole
	Colors  bool   // Color disks and the cursor
	Footer  string // Play screen controls line; empty uses Controls()
}

// DefaultStyle returns the stock glyph set.
func DefaultStyle() Style {
	return Style{
		Padding: 4,
		Pole:    '|',
		Marker:  '@',
		Colors:  true,
	}
}

// MinPadding is the smallest padding at which the widest disks of
// neighbouring poles do not overlap.
const MinPadding = 3

// Rows reserved around the board: header lines above the marker and the
// controls footer below the base.
const (
	headerRows = 8
	footerRows = 4
)

// Layout is the screen geometry of a board.
type Layout struct {
	Spacing int   // Columns between adjacent poles
	PoleX   []int // Column of each pole's axis
	BaseY   int   // Row of the bottom slot
	HeldY   int   // Row of the floating held disk
	MarkerY int   // Row of the cursor marker
}

// NewLayout centers poleCount poles on a screen of the given size.
// Pole i sits at center - halfGroup + i*(diskCount+padding).
func NewLayout(screenW, screenH, poleCount, diskCount, padding int) Layout {
	spacing := diskCount + padding
	halfGroup := (poleCount - 1) * spacing / 2
	center := screenW / 2

	xs := make([]int, poleCount)
	for i := range xs {
		xs[i] = center - halfGroup + i*spacing
	}

	base := screenH - footerRows
	return Layout{
		Spacing: spacing,
		PoleX:   xs,
		BaseY:   base,
		HeldY:   base - diskCount - 2,
		MarkerY: base - diskCount - 3,
	}
}

// DiskWidth returns the number of columns a disk of the given size covers.
func DiskWidth(size int) int {
	return 2*(size/2) + 3
}

// MinSize returns the smallest screen that fits the whole board.
func MinSize(poleCount, diskCount, padding int) (w, h int) {
	w = (poleCount-1)*(diskCount+padding) + DiskWidth(diskCount) + 2
	h = headerRows + diskCount + 3 + footerRows
	return w, h
}

// DiskGlyphs returns the characters of a disk, left to right.
// Tips are [ ] for even sizes and { } for odd ones, the body is '=' and
// the size is printed in the middle column, tens digit just left of it.
func DiskGlyphs(size int) []rune {
	half := size / 2
	lo, hi := -half-1, half+1

	out := make([]rune, 0, hi-lo+1)
	for k := lo; k <= hi; k++ {
		var r rune
		switch {
		case size >= 10 && k == -1:
			r = rune('0' + (size/10)%10)
		case k == 0:
			r = rune('0' + size%10)
		case k == lo:
			r = '['
			if size%2 == 1 {
				r = '{'
			}
		case k == hi:
			r = ']'
			if size%2 == 1 {
				r = '}'
			}
		default:
			r = '='
		}
		out = append(out, r)
	}
	return out
}

// DrawDisk draws a disk centered on column x.
func DrawDisk(dst *core.Screen, size, x, y int, style Style) {
	color := core.ColorDefault
	if style.Colors {
		color = core.DiskColor(size)
	}
	glyphs := DiskGlyphs(size)
	left := x - len(glyphs)/2
	for i, r := range glyphs {
		dst.SetColor(left+i, y, r, color)
	}
}

// RenderBoard draws the poles, their disks, the cursor marker and the
// held disk. It only reads the board.
func RenderBoard(dst *core.Screen, b *Board, style Style) {
	n := b.DiskCount()
	lay := NewLayout(dst.Width(), dst.Height(), b.PoleCount(), n, style.Padding)

	for i, x := range lay.PoleX {
		pole := b.Pole(i)
		for j := 0; j <= n; j++ {
			y := lay.BaseY - j
			if j >= len(pole) {
				dst.Set(x, y, style.Pole)
				continue
			}
			DrawDisk(dst, pole[j], x, y, style)
		}
	}

	x := lay.PoleX[b.Cursor()]
	markerColor := core.ColorDefault
	if style.Colors {
		markerColor = core.ColorBrightYellow
	}
	dst.SetColor(x, lay.MarkerY, style.Marker, markerColor)
	if held, ok := b.Held(); ok {
		DrawDisk(dst, held, x, lay.HeldY, style)
	}
}

// fitsScreen reports whether the board fits dst, drawing a notice when
// it does not.
func fitsScreen(dst *core.Screen, b *Board, style Style) bool {
	w, h := MinSize(b.PoleCount(), b.DiskCount(), style.Padding)
	if dst.Width() >= w && dst.Height() >= h {
		return true
	}
	renderTooSmall(dst, w, h)
	return false
}

func renderTooSmall(dst *core.Screen, w, h int) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y-1, "Window too small")
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d, have %dx%d", w, h, dst.Width(), dst.Height()))
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// Controls returns the control hints shown under the board.
func Controls() string {
	return "Left/Right: move | Up: pick disk | Down: drop disk | R: reset | Esc: main menu"
}

// RenderPlay draws the play screen.
func RenderPlay(dst *core.Screen, b *Board, style Style) {
	dst.Clear()
	if !fitsScreen(dst, b, style) {
		return
	}

	dst.DrawTextCentered(1, "Stack all disks on the rightmost pole")
	dst.DrawTextCentered(2, "You can't stack a disk on top of a smaller disk")
	dst.DrawTextCentered(4, fmt.Sprintf("Moves: %d", b.Moves()))

	RenderBoard(dst, b, style)

	footer := style.Footer
	if footer == "" {
		footer = Controls()
	}
	dst.DrawTextCenteredColor(dst.Height()-2, footer, core.ColorGray)
}

// WinInfo is the summary shown after a puzzle is solved.
type WinInfo struct {
	Moves   int
	Optimal int
	Best    int // Fewest moves on record for this setting, 0 if unknown
}

// RenderWin draws the win screen over the solved board.
func RenderWin(dst *core.Screen, b *Board, info WinInfo, style Style) {
	dst.Clear()
	if !fitsScreen(dst, b, style) {
		return
	}

	highlight := core.ColorDefault
	if style.Colors {
		highlight = core.ColorBrightGreen
	}
	stats := fmt.Sprintf("Optimal: %d", info.Optimal)
	if info.Best > 0 {
		stats += fmt.Sprintf(" | Best: %d", info.Best)
	}
	lines := []string{"You solved the puzzle! :D", WinFeedback(b.PoleCount(), b.DiskCount()), SolvedIn(info.Moves), stats}

	dst.DrawBox(WinFrame(dst.Width(), lines), highlight)
	dst.DrawTextCenteredColor(1, lines[0], highlight)
	dst.DrawTextCentered(3, lines[1])
	dst.DrawTextCentered(5, lines[2])
	dst.DrawTextCentered(6, lines[3])

	RenderBoard(dst, b, style)

	dst.DrawTextCenteredColor(dst.Height()-2, "Press any key to return to the menu", core.ColorGray)
}

// WinFrame returns the box drawn around the win messages. It spans the
// header rows and leaves two blank columns beside the longest line.
func WinFrame(screenW int, lines []string) core.Rect {
	w := 0
	for _, l := range lines {
		w = core.Max(w, len([]rune(l)))
	}
	w += 6
	return core.NewRect((screenW-w)/2, 0, w, headerRows)
}

// SolvedIn formats the move count line of the win screen.
func SolvedIn(moves int) string {
	if moves == 1 {
		return "solved in 1 move"
	}
	return fmt.Sprintf("solved in %d moves", moves)
}
