package hanoi

// Snapshot captures the complete board state for logging and tests.
type Snapshot struct {
	Poles     [][]int
	Cursor    int
	Held      int // 0 when nothing is held
	DiskCount int
	Moves     int
	Won       bool
}

// Snapshot returns a deep copy of the current board state.
func (b *Board) Snapshot() Snapshot {
	return Snapshot{
		Poles:     b.Poles(),
		Cursor:    b.cursor,
		Held:      b.held,
		DiskCount: b.diskCount,
		Moves:     b.moves,
		Won:       b.IsWon(),
	}
}
