package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hanoi/internal/config"
	"github.com/vovakirdan/tui-hanoi/internal/hanoi"
)

var (
	flagSolvePoles int
	flagSolveDisks int
	flagSolveCheck bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Print an optimal solution",
	Long: `Print a shortest move sequence taking every disk from pole A to the
last pole. Three poles use the classic recursion; more poles use the
Frame-Stewart split.

Examples:
  hanoi solve
  hanoi solve --disks 5
  hanoi solve --poles 4 --disks 8 --check`,
	Args: cobra.NoArgs,
	Run:  runSolve,
}

func init() {
	solveCmd.Flags().IntVar(&flagSolvePoles, "poles", 3, "Number of poles")
	solveCmd.Flags().IntVar(&flagSolveDisks, "disks", 3, "Number of disks")
	solveCmd.Flags().BoolVar(&flagSolveCheck, "check", false, "Replay the solution on a board and verify it")
}

func runSolve(_ *cobra.Command, _ []string) {
	poles, disks := flagSolvePoles, flagSolveDisks
	if poles < config.MinPoles || poles > config.MaxPoles {
		fmt.Fprintf(os.Stderr, "Error: poles must be between %d and %d\n", config.MinPoles, config.MaxPoles)
		os.Exit(1)
	}
	if disks < 1 || disks > config.MaxDisks {
		fmt.Fprintf(os.Stderr, "Error: disks must be between 1 and %d\n", config.MaxDisks)
		os.Exit(1)
	}

	moves := hanoi.Solve(poles, disks)
	fmt.Printf("%d poles, %d disks: %d moves\n", poles, disks, len(moves))
	fmt.Println()

	width := len(fmt.Sprint(len(moves)))
	for i, m := range moves {
		fmt.Printf("  %*d. %s\n", width, i+1, m)
	}

	if !flagSolveCheck {
		return
	}

	b := hanoi.NewBoard(poles, disks)
	for i, m := range moves {
		if !hanoi.Apply(b, m) {
			fmt.Fprintf(os.Stderr, "Error: move %d (%s) is illegal\n", i+1, m)
			os.Exit(1)
		}
	}
	fmt.Println()
	if !b.IsWon() {
		fmt.Fprintln(os.Stderr, "Error: solution does not finish the puzzle")
		os.Exit(1)
	}
	fmt.Printf("Verified: solved in %d moves\n", b.Moves())
}
