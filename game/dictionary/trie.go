package dictionary

import (
	"strings"
	"unicode"
)

const (
	alphabetSize   = 28
	hyphenSlot     = 26
	apostropheSlot = 27
)

// symbols maps a child slot back to its character. Slot order is the
// enumeration order: a..z, then '-', then '\''.
var symbols = [alphabetSize]byte{
	'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm',
	'n', 'o', 'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z',
	'-', '\'',
}

type node struct {
	children [alphabetSize]*node
	terminal bool
}

// Trie is a prefix tree of sanitized words. It is not safe for concurrent
// mutation, but any number of goroutines may query it once it is built.
type Trie struct {
	root *node
	size int
}

// New creates an empty trie
func New() *Trie {
	return &Trie{root: &node{}}
}

// FromWords creates a trie holding the given words
func FromWords(words ...string) *Trie {
	t := New()
	for _, w := range words {
		t.Insert(w)
	}
	return t
}

// Size returns the number of distinct words stored
func (t *Trie) Size() int {
	return t.size
}

// Insert adds a word. Inserting a word twice, or a word that sanitizes to the
// empty string, has no effect.
func (t *Trie) Insert(word string) {
	clean, ok := sanitize(word)
	if !ok || clean == "" {
		return
	}

	current := t.root
	for i := 0; i < len(clean); i++ {
		idx, _ := slot(rune(clean[i]))
		child := current.children[idx]
		if child == nil {
			child = &node{}
			current.children[idx] = child
		}
		current = child
	}

	if !current.terminal {
		current.terminal = true
		t.size++
	}
}

// ContainsWord reports whether the sanitized word was inserted
func (t *Trie) ContainsWord(word string) bool {
	clean, ok := sanitize(word)
	if !ok || clean == "" {
		return false
	}
	n := t.find(clean)
	return n != nil && n.terminal
}

// IsPrefix reports whether some stored word starts with text. The text is
// not sanitized; uppercase letters and punctuation never match.
func (t *Trie) IsPrefix(text string) bool {
	return t.find(text) != nil
}

// Words returns every word starting with the sanitized prefix, in
// alphabetical order. An empty prefix returns every word.
func (t *Trie) Words(prefix string) []string {
	words := []string{}
	t.Walk(prefix, func(word string) bool {
		words = append(words, word)
		return true
	})
	return words
}

// Walk calls fn for every word starting with the sanitized prefix, in
// alphabetical order, until fn returns false.
func (t *Trie) Walk(prefix string, fn func(word string) bool) {
	clean, ok := sanitize(prefix)
	if !ok {
		return
	}
	start := t.find(clean)
	if start == nil {
		return
	}
	start.walk([]byte(clean), fn)
}

// WordsOfLength returns every word of exactly length symbols, in
// alphabetical order. It returns an empty list when length <= 0.
func (t *Trie) WordsOfLength(length int) []string {
	words := []string{}
	if length <= 0 {
		return words
	}
	t.root.collectLength(make([]byte, 0, length), length, &words)
	return words
}

// find follows text from the root and returns the node it ends on, or nil
// when a symbol has no transition.
func (t *Trie) find(text string) *node {
	current := t.root
	for _, r := range text {
		idx, ok := slot(r)
		if !ok {
			return nil
		}
		current = current.children[idx]
		if current == nil {
			return nil
		}
	}
	return current
}

// walk visits n and its subtree depth first. buf holds the symbols from the
// root to n. It returns false once fn asked to stop.
func (n *node) walk(buf []byte, fn func(string) bool) bool {
	if n.terminal && !fn(string(buf)) {
		return false
	}
	for i, child := range n.children {
		if child == nil {
			continue
		}
		if !child.walk(append(buf, symbols[i]), fn) {
			return false
		}
	}
	return true
}

func (n *node) collectLength(buf []byte, remaining int, words *[]string) {
	if remaining == 0 {
		if n.terminal {
			*words = append(*words, string(buf))
		}
		return
	}
	for i, child := range n.children {
		if child != nil {
			child.collectLength(append(buf, symbols[i]), remaining-1, words)
		}
	}
}

// Sanitize returns word in the tree's canonical form: letters, '-' and '\''
// only, lowercased. The boolean is false when a letter has no slot in the
// alphabet.
func Sanitize(word string) (string, bool) {
	return sanitize(word)
}

func sanitize(word string) (string, bool) {
	var b strings.Builder
	b.Grow(len(word))
	for _, r := range word {
		if !unicode.IsLetter(r) && r != '-' && r != '\'' {
			continue
		}
		r = unicode.ToLower(r)
		if _, ok := slot(r); !ok {
			return "", false
		}
		b.WriteRune(r)
	}
	return b.String(), true
}

func slot(r rune) (int, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return int(r - 'a'), true
	case r == '-':
		return hyphenSlot, true
	case r == '\'':
		return apostropheSlot, true
	}
	return 0, false
}
