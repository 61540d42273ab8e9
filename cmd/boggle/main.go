// Command boggle solves and inspects letter grids from the command line.
//
//	boggle solve --dict configs/dictionaries/french.txt --size 4 --letters rhreypcswnsntego
//	boggle contains --size 4 --letters rhreypcswnsntego songent
//	boggle words --dict configs/dictionaries/english.txt --length 5
//	boggle render --size 5 --seed 42
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/urfave/cli/v3"
	"github.com/wricardo/wordgrid-game/game/dictionary"
	"github.com/wricardo/wordgrid-game/game/engine"
	"github.com/wricardo/wordgrid-game/game/grid"
)

func main() {
	if err := newApp(os.Stdout).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func dictFlag(required bool) cli.Flag {
	return &cli.StringFlag{
		Name:     "dict",
		Aliases:  []string{"d"},
		Usage:    "word list file, one word per line",
		Required: required,
	}
}

func boardFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "size",
			Aliases: []string{"n"},
			Usage:   "grid side length",
			Value:   4,
		},
		&cli.StringFlag{
			Name:    "letters",
			Aliases: []string{"l"},
			Usage:   "grid letters in row-major order (random when empty)",
		},
		&cli.IntFlag{
			Name:  "seed",
			Usage: "seed for random letters, for repeatable boards",
		},
	}
}

// newApp builds the command tree writing results to out
func newApp(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "boggle",
		Usage: "solve and inspect word grids",
		Commands: []*cli.Command{
			{
				Name:  "solve",
				Usage: "list every dictionary word on a grid",
				Flags: append(boardFlags(),
					dictFlag(true),
					&cli.BoolFlag{
						Name:  "longest-first",
						Usage: "order by length, longest first",
					},
				),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runSolve(cmd, out)
				},
			},
			{
				Name:      "contains",
				Usage:     "check whether a word can be traced on a grid",
				ArgsUsage: "WORD",
				Flags:     append(boardFlags(), dictFlag(false)),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runContains(cmd, out)
				},
			},
			{
				Name:  "words",
				Usage: "list dictionary words by prefix or length",
				Flags: []cli.Flag{
					dictFlag(true),
					&cli.StringFlag{Name: "prefix", Aliases: []string{"p"}, Usage: "words starting with prefix"},
					&cli.IntFlag{Name: "length", Usage: "words with exactly this many letters (overrides prefix)"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runWords(cmd, out)
				},
			},
			{
				Name:  "render",
				Usage: "print a grid",
				Flags: boardFlags(),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					g, err := boardFromFlags(cmd)
					if err != nil {
						return err
					}
					fmt.Fprint(out, g.String())
					return nil
				},
			},
		},
	}
}

// boardFromFlags builds the grid from --size and --letters, or from random
// letters seeded by --seed when no letters are given
func boardFromFlags(cmd *cli.Command) (*grid.Grid, error) {
	size := int(cmd.Int("size"))
	letters := strings.ToLower(cmd.String("letters"))

	if letters == "" {
		var src grid.LetterSource
		if cmd.IsSet("seed") {
			src = grid.RandomLetters(uint64(cmd.Int("seed")))
		}
		return grid.NewRandom(size, src)
	}
	return grid.New(size, letters)
}

func runSolve(cmd *cli.Command, out io.Writer) error {
	g, err := boardFromFlags(cmd)
	if err != nil {
		return err
	}

	dict, err := dictionary.LoadFile(cmd.String("dict"))
	if err != nil {
		return err
	}

	words := engine.NewSolver(g, dict).SolveSorted()
	if cmd.Bool("longest-first") {
		slices.SortStableFunc(words, func(a, b string) int {
			return len([]rune(b)) - len([]rune(a))
		})
	}

	for _, w := range words {
		fmt.Fprintln(out, w)
	}
	fmt.Fprintf(out, "Found %d words worth a total of %d points\n", len(words), engine.TotalScore(words))
	return nil
}

func runContains(cmd *cli.Command, out io.Writer) error {
	if cmd.Args().Len() != 1 {
		return errors.New("expected exactly one WORD argument")
	}
	word := strings.ToLower(cmd.Args().First())

	g, err := boardFromFlags(cmd)
	if err != nil {
		return err
	}

	path, ok := engine.NewSolver(g, nil).Trace(word)
	if !ok {
		fmt.Fprintf(out, "%s: not on board\n", word)
	} else {
		cells := make([]string, len(path))
		for i, c := range path {
			cells[i] = fmt.Sprintf("(%d,%d)", c.Row, c.Col)
		}
		fmt.Fprintf(out, "%s: on board %s\n", word, strings.Join(cells, " "))
	}

	if cmd.String("dict") == "" {
		return nil
	}
	dict, err := dictionary.LoadFile(cmd.String("dict"))
	if err != nil {
		return err
	}
	if dict.ContainsWord(word) {
		fmt.Fprintf(out, "%s: in dictionary\n", word)
	} else {
		fmt.Fprintf(out, "%s: not in dictionary\n", word)
	}
	return nil
}

func runWords(cmd *cli.Command, out io.Writer) error {
	dict, err := dictionary.LoadFile(cmd.String("dict"))
	if err != nil {
		return err
	}

	var words []string
	if n := int(cmd.Int("length")); n > 0 {
		words = dict.WordsOfLength(n)
	} else {
		words = dict.Words(cmd.String("prefix"))
	}

	for _, w := range words {
		fmt.Fprintln(out, w)
	}
	return nil
}
