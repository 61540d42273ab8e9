// Command analyze prints quick, human-readable statistics about the board
// configurations in the configs directory: whether each config is valid,
// how many words its board hides, the best possible score, and the word
// length distribution. Random boards are sampled with fixed seeds so runs
// are repeatable.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"unicode/utf8"

	"github.com/wricardo/wordgrid-game/game/config"
	"github.com/wricardo/wordgrid-game/game/engine"
	"github.com/wricardo/wordgrid-game/game/grid"
)

// BoardStats summarizes the solution of one board
type BoardStats struct {
	Letters  string
	Words    int
	MaxScore int
	Longest  string
	ByLength map[int]int
}

// ConfigReport is the analysis of one configuration
type ConfigReport struct {
	ConfigID   string
	Name       string
	GridSize   int
	Dictionary string
	DictSize   int
	FixedBoard bool
	Err        error
	// Boards holds one entry for a fixed board, one per sample otherwise
	Boards []BoardStats
}

func main() {
	configDir := flag.String("config-dir", "configs", "Directory containing game configurations")
	samples := flag.Int("samples", 20, "Random boards sampled per config without fixed letters")
	flag.Parse()

	manager, err := config.NewManager(*configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	reports, err := analyzeAll(manager, *samples)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	failed := 0
	for _, r := range reports {
		printReport(os.Stdout, r)
		if r.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}

// analyzeAll analyzes every config the manager lists, in listing order
func analyzeAll(manager *config.Manager, samples int) ([]ConfigReport, error) {
	infos, err := manager.ListConfigs()
	if err != nil {
		return nil, err
	}

	reports := make([]ConfigReport, 0, len(infos))
	for _, info := range infos {
		reports = append(reports, analyzeConfig(manager, info.ConfigID, samples))
	}
	return reports, nil
}

func analyzeConfig(manager *config.Manager, configID string, samples int) ConfigReport {
	report := ConfigReport{ConfigID: configID}

	cfg, err := manager.LoadConfig(configID)
	if err != nil {
		report.Err = err
		return report
	}
	report.Name = cfg.Name
	report.GridSize = cfg.GridSize
	report.Dictionary = cfg.Dictionary
	report.FixedBoard = cfg.Letters != ""

	if err := engine.ValidateGameConfig(cfg); err != nil {
		report.Err = err
		return report
	}

	dict, err := manager.LoadDictionary(cfg)
	if err != nil {
		report.Err = err
		return report
	}
	report.DictSize = dict.Size()

	if report.FixedBoard {
		eng, err := engine.NewEngineWithLetters(cfg, dict, cfg.Letters)
		if err != nil {
			report.Err = err
			return report
		}
		report.Boards = append(report.Boards, boardStats(eng))
		return report
	}

	for seed := 1; seed <= samples; seed++ {
		eng, err := engine.NewEngine(cfg, dict, grid.RandomLetters(uint64(seed)))
		if err != nil {
			report.Err = err
			return report
		}
		report.Boards = append(report.Boards, boardStats(eng))
	}
	return report
}

func boardStats(eng *engine.GameEngine) BoardStats {
	words := eng.Solution()
	stats := BoardStats{
		Letters:  eng.Grid().Letters(),
		Words:    len(words),
		MaxScore: eng.MaxScore(),
		ByLength: make(map[int]int),
	}
	for _, w := range words {
		n := utf8.RuneCountInString(w)
		stats.ByLength[n]++
		if n > utf8.RuneCountInString(stats.Longest) {
			stats.Longest = w
		}
	}
	return stats
}

func printReport(w io.Writer, r ConfigReport) {
	fmt.Fprintf(w, "\n=== Analyzing %s ===\n", r.ConfigID)
	if r.Err != nil {
		fmt.Fprintf(w, "❌ %v\n", r.Err)
		return
	}

	fmt.Fprintf(w, "Name: %s\n", r.Name)
	fmt.Fprintf(w, "Grid Size: %d x %d\n", r.GridSize, r.GridSize)
	fmt.Fprintf(w, "Dictionary: %s (%d words)\n", r.Dictionary, r.DictSize)

	if r.FixedBoard {
		b := r.Boards[0]
		fmt.Fprintf(w, "Board: %s\n", b.Letters)
		fmt.Fprintf(w, "Words: %d, Max Score: %d, Longest: %s\n", b.Words, b.MaxScore, b.Longest)
		fmt.Fprintf(w, "By Length: %s\n", formatLengths(b.ByLength))
		if b.Words == 0 {
			fmt.Fprintf(w, "⚠️  WARNING: the board hides no words, it cannot be won\n")
		} else {
			fmt.Fprintf(w, "✅ Board is playable\n")
		}
		return
	}

	minWords, maxWords, total, empty := -1, 0, 0, 0
	for _, b := range r.Boards {
		total += b.Words
		if minWords < 0 || b.Words < minWords {
			minWords = b.Words
		}
		if b.Words > maxWords {
			maxWords = b.Words
		}
		if b.Words == 0 {
			empty++
		}
	}
	if len(r.Boards) == 0 {
		fmt.Fprintf(w, "Random board, no samples taken\n")
		return
	}

	fmt.Fprintf(w, "Random board, %d samples\n", len(r.Boards))
	fmt.Fprintf(w, "Words per board: min %d, avg %.1f, max %d\n",
		minWords, float64(total)/float64(len(r.Boards)), maxWords)
	if empty > 0 {
		fmt.Fprintf(w, "⚠️  WARNING: %d of %d sampled boards hide no words\n", empty, len(r.Boards))
	} else {
		fmt.Fprintf(w, "✅ Every sampled board hides at least one word\n")
	}
}

// formatLengths renders a length histogram as "3:12 4:7 5:2"
func formatLengths(byLength map[int]int) string {
	lengths := make([]int, 0, len(byLength))
	for n := range byLength {
		lengths = append(lengths, n)
	}
	slices.Sort(lengths)

	out := ""
	for i, n := range lengths {
		if i > 0 {
			out += " "
		}
		out += fmt.Sprintf("%d:%d", n, byLength[n])
	}
	return out
}
