// hanoi is a Tower of Hanoi puzzle for the terminal.
//
// Usage:
//
//	hanoi                    - Open the settings menu and play
//	hanoi solve              - Print an optimal solution
//	hanoi optimal            - Print optimal move counts for every setting
//	hanoi scores             - Show the best results per setting
//	hanoi serve              - Start SSH server for remote play
//
// Global flags:
//
//	--config <path> - Use a custom YAML config
//	--db <path>     - Set results database path (default: XDG data dir)
//	--log <path>    - Write diagnostics to a file
//	--debug         - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hanoi/internal/config"
)

var (
	// Global flags
	flagConfig  string
	flagDBPath  string
	flagLogPath string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hanoi",
	Short: "Tower of Hanoi in your terminal",
	Long: `Move the whole stack of disks from the leftmost pole to the rightmost
one, one disk at a time, never placing a disk on a smaller one.

Pick the number of poles and disks in the menu, then play.

Controls:
  Left/Right, h/l   - Select pole
  Up, k             - Pick up the top disk
  Down, j           - Drop the held disk
  R                 - Reset the board
  Esc               - Back to the menu
  Tab               - Best results (from the menu)
  Alt+Enter, F11    - Toggle fullscreen
  Q, Ctrl+C         - Quit

Examples:
  hanoi
  hanoi --poles 4 --disks 6
  hanoi solve --disks 4
  hanoi scores
  hanoi serve --ssh :2222`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", config.DefaultDBPath(), "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write diagnostics to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(optimalCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the configuration or exits.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
