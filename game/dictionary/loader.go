package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrInvalidArgument is returned when a loader is given no input
var ErrInvalidArgument = errors.New("invalid argument")

// Load builds a trie from newline-delimited words. Lines are inserted with
// the usual sanitization; blank lines are ignored.
func Load(r io.Reader) (*Trie, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: nil reader", ErrInvalidArgument)
	}

	t := New()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		t.Insert(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}

	return t, nil
}

// LoadFile builds a trie from a word list file. A missing or unreadable file
// is reported as an error rather than an empty dictionary.
func LoadFile(path string) (*Trie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary: %w", err)
	}
	defer f.Close()

	t, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("dictionary %s: %w", path, err)
	}
	return t, nil
}
