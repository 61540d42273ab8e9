// Package dictionary provides the prefix tree used to look up words while
// searching a letter grid.
//
// The tree stores lowercase words over a 28-symbol alphabet: the letters a
// through z, the hyphen and the apostrophe. Every node owns a fixed array of
// 28 children, so lookups cost one array index per symbol regardless of how
// many words are stored.
//
// Sanitization:
//
// Insert, ContainsWord and Words sanitize their argument first. Characters
// that are neither letters nor '-' nor '\'' are discarded and the rest is
// lowercased, so "Chat!" and "chat" are the same word. A word holding a
// letter the alphabet has no slot for (for example an accented letter) cannot
// be stored: Insert ignores it and ContainsWord reports false.
//
// IsPrefix does not sanitize. It is called by the grid search for every
// extension of a candidate path and expects raw alphabet symbols; any other
// character simply makes it return false.
//
// Usage:
//
//	dict, err := dictionary.LoadFile("dictionaries/fr.txt")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	dict.ContainsWord("Songent") // true
//	dict.IsPrefix("son")         // true
//	dict.Words("bu")             // [bu bus but]
//	dict.WordsOfLength(3)        // every three letter word, sorted
package dictionary
