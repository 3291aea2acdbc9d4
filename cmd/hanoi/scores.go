package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-hanoi/internal/hanoi"
	"github.com/vovakirdan/tui-hanoi/internal/platform/tui"
	"github.com/vovakirdan/tui-hanoi/internal/storage"
)

var (
	flagScoresPoles  int
	flagScoresDisks  int
	flagScoresLimit  int
	flagScoresID     int64
	flagScoresTUI    bool
	flagScoresClear  bool
	flagScoresRecent bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best results",
	Long: `Without flags, lists every solved setting with its best result.
With --poles and --disks, shows the top results of that setting.

Examples:
  hanoi scores
  hanoi scores --poles 3 --disks 5
  hanoi scores --recent --limit 5
  hanoi scores --id 42
  hanoi scores --tui
  hanoi scores --poles 3 --disks 5 --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresPoles, "poles", 0, "Pole count of the setting to show")
	scoresCmd.Flags().IntVar(&flagScoresDisks, "disks", 0, "Disk count of the setting to show")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of results to show")
	scoresCmd.Flags().Int64Var(&flagScoresID, "id", 0, "Show a single result by its ID")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse results interactively")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the results of the given setting")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "List the most recent results of every setting")
}

// scoresMode is what `hanoi scores` prints.
type scoresMode int

const (
	modeSummary scoresMode = iota
	modeSetting
	modeClear
	modeTUI
	modeRecent
	modeResult
)

// resolveScoresMode checks the flag combination and picks the mode.
func resolveScoresMode(set storage.Setting, id int64, clearSet, tuiMode, recent bool) (scoresMode, error) {
	hasPoles, hasDisks := set.Poles > 0, set.Disks > 0
	if hasPoles != hasDisks {
		return 0, errors.New("--poles and --disks must be given together")
	}
	hasSetting := hasPoles && hasDisks

	switch {
	case id < 0:
		return 0, errors.New("--id must be positive")
	case clearSet:
		if !hasSetting {
			return 0, errors.New("--clear needs --poles and --disks")
		}
		return modeClear, nil
	case id > 0:
		return modeResult, nil
	case tuiMode:
		return modeTUI, nil
	case recent:
		return modeRecent, nil
	case hasSetting:
		return modeSetting, nil
	}
	return modeSummary, nil
}

func runScores(cmd *cobra.Command, _ []string) {
	set := storage.Setting{Poles: flagScoresPoles, Disks: flagScoresDisks}
	mode, err := resolveScoresMode(set, flagScoresID, flagScoresClear, flagScoresTUI, flagScoresRecent)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		cmd.Usage()
		os.Exit(2)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch mode {
	case modeClear:
		if err := store.ClearResults(set); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		fmt.Printf("Cleared results for %d poles / %d disks.\n", set.Poles, set.Disks)

	case modeResult:
		if err := printResult(os.Stdout, store, flagScoresID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			store.Close()
			os.Exit(1)
		}

	case modeTUI:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			store.Close()
			os.Exit(1)
		}

	case modeRecent:
		printRecent(os.Stdout, store, flagScoresLimit)

	case modeSetting:
		printSetting(store, set)

	default:
		printSummary(store)
	}
}

func printSummary(store *storage.Store) {
	stats, err := store.Settings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		return
	}

	fmt.Println("Best Results")
	fmt.Println()

	if len(stats) == 0 {
		fmt.Println("No puzzles solved yet.")
		fmt.Println()
		fmt.Println("Run 'hanoi' to play!")
		return
	}

	fmt.Printf("  %-5s  %-5s  %-6s  %-5s  %-7s  %s\n", "Poles", "Disks", "Solved", "Best", "Optimal", "Fastest")
	fmt.Printf("  %-5s  %-5s  %-6s  %-5s  %-7s  %s\n", "-----", "-----", "------", "----", "-------", "-------")
	for _, st := range stats {
		fmt.Printf("  %-5d  %-5d  %-6d  %-5d  %-7d  %s\n",
			st.Poles, st.Disks, st.Solved, st.BestMoves,
			hanoi.OptimalMoves(st.Poles, st.Disks), tui.FormatDuration(st.BestDuration))
	}
}

func printSetting(store *storage.Store, set storage.Setting) {
	results, err := store.BestResults(set, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		return
	}

	optimal := hanoi.OptimalMoves(set.Poles, set.Disks)
	fmt.Printf("Best Results - %d poles / %d disks (optimal %d)\n", set.Poles, set.Disks, optimal)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'hanoi --poles %d --disks %d' to set the first record!\n", set.Poles, set.Disks)
		return
	}

	fmt.Printf("  %-4s  %-5s  %-7s  %-10s  %s\n", "Rank", "Moves", "Time", "Player", "Date")
	fmt.Printf("  %-4s  %-5s  %-7s  %-10s  %s\n", "----", "-----", "----", "------", "----")
	for i, r := range results {
		fmt.Printf("  %-4d  %-5d  %-7s  %-10s  %s\n",
			i+1, r.Moves, tui.FormatDuration(r.Duration), playerName(r.Player), r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func printRecent(w io.Writer, store *storage.Store, limit int) {
	results, err := store.RecentResults(limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		return
	}

	fmt.Fprintln(w, "Recent Results")
	fmt.Fprintln(w)

	if len(results) == 0 {
		fmt.Fprintln(w, "No puzzles solved yet.")
		return
	}

	fmt.Fprintf(w, "  %-5s  %-5s  %-5s  %-5s  %-7s  %-10s  %s\n", "ID", "Poles", "Disks", "Moves", "Time", "Player", "Date")
	fmt.Fprintf(w, "  %-5s  %-5s  %-5s  %-5s  %-7s  %-10s  %s\n", "--", "-----", "-----", "-----", "----", "------", "----")
	for _, r := range results {
		fmt.Fprintf(w, "  %-5d  %-5d  %-5d  %-5d  %-7s  %-10s  %s\n",
			r.ID, r.Poles, r.Disks, r.Moves, tui.FormatDuration(r.Duration), playerName(r.Player),
			r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func printResult(w io.Writer, store *storage.Store, id int64) error {
	r, err := store.ResultByID(id)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("no result with ID %d", id)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Result #%d\n\n", r.ID)
	fmt.Fprintf(w, "  Setting:  %d poles / %d disks\n", r.Poles, r.Disks)
	fmt.Fprintf(w, "  Moves:    %d (optimal %d, %+d)\n", r.Moves, r.Optimal, r.Moves-r.Optimal)
	fmt.Fprintf(w, "  Time:     %s\n", tui.FormatDuration(r.Duration))
	fmt.Fprintf(w, "  Player:   %s\n", playerName(r.Player))
	fmt.Fprintf(w, "  Date:     %s\n", r.CreatedAt.Format("2006-01-02 15:04"))
	return nil
}

func playerName(p string) string {
	if p == "" {
		return "-"
	}
	return p
}
