package hanoi

import (
	"fmt"
	"math"
)

// Move transfers the top disk of one pole to another.
type Move struct {
	From int
	To   int
}

// String returns the move in "A -> C" notation.
func (m Move) String() string {
	return fmt.Sprintf("%s -> %s", PoleName(m.From), PoleName(m.To))
}

// PoleName returns the letter used for pole i ("A", "B", ...).
func PoleName(i int) string {
	if i < 0 || i >= 26 {
		return fmt.Sprintf("#%d", i+1)
	}
	return string(rune('A' + i))
}

type fsKey struct{ disks, poles int }

// fsTable memoizes Frame-Stewart counts and the best split per (n, k).
type fsTable struct {
	count map[fsKey]int
	split map[fsKey]int
}

func newFSTable() *fsTable {
	return &fsTable{
		count: make(map[fsKey]int),
		split: make(map[fsKey]int),
	}
}

// moves returns the minimum number of moves to transfer n disks using k
// poles, and records the split that achieves it.
func (t *fsTable) moves(n, k int) int {
	switch {
	case n <= 0:
		return 0
	case n == 1:
		return 1
	case k == 3:
		if n >= 62 {
			return math.MaxInt
		}
		return 1<<n - 1
	}

	key := fsKey{n, k}
	if v, ok := t.count[key]; ok {
		return v
	}

	best, bestSplit := math.MaxInt, 1
	for s := 1; s < n; s++ {
		head, tail := t.moves(s, k), t.moves(n-s, k-1)
		if head > (math.MaxInt-tail)/2 {
			continue
		}
		if v := 2*head + tail; v < best {
			best, bestSplit = v, s
		}
	}
	t.count[key] = best
	t.split[key] = bestSplit
	return best
}

// OptimalMoves returns the fewest moves that solve a puzzle of the given
// size. Three poles give 2^n - 1; more poles use the Frame-Stewart
// recurrence. Fewer than three poles yield 0.
func OptimalMoves(poles, disks int) int {
	if poles < 3 {
		return 0
	}
	return newFSTable().moves(disks, poles)
}

// Solve returns an optimal move list that carries every disk from the
// first pole to the last one. Fewer than three poles yield nil.
func Solve(poles, disks int) []Move {
	if poles < 3 || disks <= 0 {
		return nil
	}

	spares := make([]int, 0, poles-2)
	for i := 1; i < poles-1; i++ {
		spares = append(spares, i)
	}

	t := newFSTable()
	out := make([]Move, 0, t.moves(disks, poles))
	t.solve(disks, 0, poles-1, spares, &out)
	return out
}

func (t *fsTable) solve(n, from, to int, spares []int, out *[]Move) {
	if n <= 0 {
		return
	}
	if n == 1 {
		*out = append(*out, Move{From: from, To: to})
		return
	}

	k := len(spares) + 2
	if k == 3 {
		via := spares[0]
		t.solve(n-1, from, via, []int{to}, out)
		*out = append(*out, Move{From: from, To: to})
		t.solve(n-1, via, to, []int{from}, out)
		return
	}

	t.moves(n, k)
	s := t.split[fsKey{n, k}]
	mid, rest := spares[0], spares[1:]

	// Park the s smallest disks on mid, move the rest without mid, then
	// bring the parked disks over.
	t.solve(s, from, mid, append([]int{to}, rest...), out)
	t.solve(n-s, from, to, rest, out)
	t.solve(s, mid, to, append([]int{from}, rest...), out)
}

// Apply performs m on the board through the cursor, as a player would.
// It reports whether both the grab and the drop succeeded.
func Apply(b *Board, m Move) bool {
	if _, holding := b.Held(); holding {
		return false
	}
	b.MoveCursor(m.From - b.Cursor())
	if b.Cursor() != m.From || !b.Grab() {
		return false
	}
	b.MoveCursor(m.To - b.Cursor())
	if b.Cursor() != m.To || !b.Drop() {
		return false
	}
	return true
}
