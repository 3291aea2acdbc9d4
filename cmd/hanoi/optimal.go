package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hanoi/internal/hanoi"
)

var optimalCmd = &cobra.Command{
	Use:   "optimal",
	Short: "Print optimal move counts for every setting",
	Long: `Shows the fewest moves needed for each pole and disk count the menu
allows, as set by the config file.`,
	Args: cobra.NoArgs,
	Run:  runOptimal,
}

func runOptimal(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	poles, disks := cfg.Settings.Poles, cfg.Settings.Disks

	// Column width fits the largest count: fewest poles, most disks
	width := len(fmt.Sprint(hanoi.OptimalMoves(poles.Min, disks.Max)))
	width = max(width, len("disks"))

	fmt.Println("Optimal moves:")
	fmt.Println()

	fmt.Printf("  %-*s", width, "disks")
	for p := poles.Min; p <= poles.Max; p++ {
		fmt.Printf("  %*s", width, fmt.Sprintf("%dp", p))
	}
	fmt.Println()

	for d := disks.Min; d <= disks.Max; d++ {
		fmt.Printf("  %-*d", width, d)
		for p := poles.Min; p <= poles.Max; p++ {
			fmt.Printf("  %*d", width, hanoi.OptimalMoves(p, d))
		}
		fmt.Println()
	}

	fmt.Println()
	fmt.Println("Run 'hanoi solve --poles P --disks D' to see a solution.")
}
