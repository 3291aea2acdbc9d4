// Package hanoi implements the Tower of Hanoi puzzle: the board model,
// the win check, an optimal solver and the glyph renderer.
package hanoi

import (
	"github.com/vovakirdan/tui-hanoi/internal/core"
)

// Board holds the state of one puzzle session.
//
// Disks are identified by their size 1..DiskCount. Each pole is a stack
// stored bottom-first, so the last element is the top disk. At most one
// disk is held by the cursor at any time; a held disk is on no pole.
type Board struct {
	poles       [][]int
	cursor      int
	held        int // 0 means nothing held
	diskCount   int
	moves       int
	lastDropped int
}

// NewBoard creates a board with all disks stacked on the first pole,
// largest at the bottom. Counts below the playable minimum are raised to
// one disk and one pole.
func NewBoard(poleCount, diskCount int) *Board {
	b := &Board{
		poles:     make([][]int, core.Max(poleCount, 1)),
		diskCount: core.Max(diskCount, 1),
	}
	b.Reset()
	return b
}

// Reset puts every disk back on the first pole and clears the held disk
// and move counter. Pole and disk counts and the cursor are unchanged.
func (b *Board) Reset() {
	for i := range b.poles {
		b.poles[i] = make([]int, 0, b.diskCount)
	}
	for size := b.diskCount; size >= 1; size-- {
		b.poles[0] = append(b.poles[0], size)
	}
	b.held = 0
	b.moves = 0
	b.lastDropped = 0
}

// MoveCursor shifts the cursor by delta poles, clamped to the board.
func (b *Board) MoveCursor(delta int) {
	b.cursor = core.Clamp(b.cursor+delta, 0, len(b.poles)-1)
}

// Grab lifts the top disk of the pole under the cursor.
// It does nothing if a disk is already held or the pole is empty, and
// reports whether a disk was picked up.
func (b *Board) Grab() bool {
	if b.held != 0 {
		return false
	}
	pole := b.poles[b.cursor]
	if len(pole) == 0 {
		return false
	}
	b.held = pole[len(pole)-1]
	b.poles[b.cursor] = pole[:len(pole)-1]
	return true
}

// Drop places the held disk on the pole under the cursor.
// It does nothing if no disk is held or the pole's top disk is smaller
// than the held one, and reports whether the disk was placed.
//
// A placement only counts as a move when the disk differs from the one
// dropped last, so lifting a disk and putting it straight back is free.
func (b *Board) Drop() bool {
	if b.held == 0 {
		return false
	}
	if top, ok := b.Top(b.cursor); ok && top < b.held {
		return false
	}

	disk := b.held
	b.poles[b.cursor] = append(b.poles[b.cursor], disk)
	b.held = 0

	if disk != b.lastDropped {
		b.moves++
	}
	b.lastDropped = disk
	return true
}

// IsWon reports whether every disk sits on the last pole.
func (b *Board) IsWon() bool {
	return len(b.poles[len(b.poles)-1]) == b.diskCount
}

// PoleCount returns the number of poles.
func (b *Board) PoleCount() int {
	return len(b.poles)
}

// DiskCount returns the number of disks in play.
func (b *Board) DiskCount() int {
	return b.diskCount
}

// Cursor returns the index of the pole under the cursor.
func (b *Board) Cursor() int {
	return b.cursor
}

// Held returns the held disk size and whether a disk is held.
func (b *Board) Held() (int, bool) {
	return b.held, b.held != 0
}

// Moves returns the number of counted moves.
func (b *Board) Moves() int {
	return b.moves
}

// Top returns the top disk of pole i. ok is false for an empty or
// nonexistent pole.
func (b *Board) Top(i int) (size int, ok bool) {
	if i < 0 || i >= len(b.poles) || len(b.poles[i]) == 0 {
		return 0, false
	}
	pole := b.poles[i]
	return pole[len(pole)-1], true
}

// Pole returns a copy of pole i, bottom disk first.
func (b *Board) Pole(i int) []int {
	if i < 0 || i >= len(b.poles) {
		return nil
	}
	out := make([]int, len(b.poles[i]))
	copy(out, b.poles[i])
	return out
}

// Poles returns a deep copy of all poles.
func (b *Board) Poles() [][]int {
	out := make([][]int, len(b.poles))
	for i := range b.poles {
		out[i] = b.Pole(i)
	}
	return out
}
