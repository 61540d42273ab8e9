package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wricardo/wordgrid-game/game/grid"
)

const (
	frenchDict  = "../../configs/dictionaries/french.txt"
	englishDict = "../../configs/dictionaries/english.txt"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := newApp(&out).Run(context.Background(), append([]string{"boggle"}, args...))
	return out.String(), err
}

func TestSolve(t *testing.T) {
	out, err := run(t, "solve", "--dict", frenchDict, "--size", "4", "--letters", "rhreypcswnsntego")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 41)
	assert.Equal(t, "Found 40 words worth a total of 108 points", lines[40])
	assert.Contains(t, lines, "songent")
	assert.NotContains(t, lines, "sono")
	assert.True(t, strings.Compare(lines[0], lines[1]) < 0, "words should be sorted")
}

func TestSolve_LongestFirst(t *testing.T) {
	out, err := run(t, "solve", "--dict", englishDict, "--size", "3", "--letters", "CATSDOGER", "--longest-first")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 17)
	assert.Equal(t, "case", lines[0])
	assert.Equal(t, "toe", lines[15])
	assert.Equal(t, "Found 16 words worth a total of 16 points", lines[16])
}

func TestSolve_Errors(t *testing.T) {
	_, err := run(t, "solve", "--dict", englishDict, "--size", "4", "--letters", "abc")
	assert.Error(t, err, "too few letters")

	_, err = run(t, "solve", "--dict", "missing.txt", "--size", "2", "--letters", "abcd")
	assert.Error(t, err, "missing dictionary")

	_, err = run(t, "solve", "--size", "2", "--letters", "abcd")
	assert.Error(t, err, "dict is required")

	_, err = run(t, "solve", "--dict", englishDict, "--size", "4294967296", "--letters", "abc")
	assert.ErrorIs(t, err, grid.ErrTooFewLetters)

	_, err = run(t, "render", "--size", "4294967296")
	assert.ErrorIs(t, err, grid.ErrInvalidSize)
}

func TestContains(t *testing.T) {
	out, err := run(t, "contains", "--size", "4", "--letters", "rhreypcswnsntego", "songent")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "songent: on board ("), out)
	assert.NotContains(t, out, "dictionary")

	out, err = run(t, "contains", "--size", "4", "--letters", "rhreypcswnsntego", "--dict", frenchDict, "sono")
	require.NoError(t, err)
	assert.Equal(t, "sono: not on board\nsono: in dictionary\n", out)

	_, err = run(t, "contains", "--size", "4", "--letters", "rhreypcswnsntego")
	assert.Error(t, err)
}

func TestWords(t *testing.T) {
	out, err := run(t, "words", "--dict", englishDict, "--prefix", "toa")
	require.NoError(t, err)
	assert.Equal(t, "toad\n", out)

	out, err = run(t, "words", "--dict", englishDict, "--length", "5", "--prefix", "toa")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 31)
	for _, w := range lines {
		assert.Len(t, w, 5)
	}
}

func TestRender(t *testing.T) {
	out, err := run(t, "render", "--size", "3", "--letters", "catsdoger")
	require.NoError(t, err)
	assert.Equal(t, "|c|a|t|\n|s|d|o|\n|g|e|r|\n", out)

	first, err := run(t, "render", "--size", "5", "--seed", "42")
	require.NoError(t, err)
	second, err := run(t, "render", "--size", "5", "--seed", "42")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Len(t, strings.Split(strings.TrimSpace(first), "\n"), 5)
}
