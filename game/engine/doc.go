// Package engine provides the word search and the game logic built on it.
//
// The engine package implements:
//   - Backtracking search for every dictionary word on a letter grid
//   - Path tracing for a single target word
//   - Guess validation and scoring for a game session
//   - Game configuration validation
//
// Core Types:
//
// Solver walks a grid.Grid depth first. From every starting cell it extends
// a candidate string one neighbour at a time, abandons the branch as soon as
// the dictionary reports that no word starts with the candidate, and records
// every candidate of at least MinWordLength letters that is a word. A cell is
// never used twice in one path.
//
// GameEngine owns one grid, solves it once at construction and then scores
// the player's guesses against that solution. GameState is its serializable
// snapshot and GameConfig the JSON board definition it is built from.
//
// Usage:
//
//	dict, err := dictionary.LoadFile("dictionaries/fr.txt")
//	if err != nil {
//		log.Fatal(err)
//	}
//	g, err := grid.New(4, "rhreypcswnsntego")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	solver := engine.NewSolver(g, dict)
//	solver.Contains("songent") // true
//	words := solver.SolveSorted()
//
// Game Rules:
//
// A guess is accepted when it is at least three letters long, is in the
// dictionary, can be traced on the board and was not found before. Points
// follow the classic table: 1 point for 3 or 4 letters, 2 for 5, 3 for 6,
// 5 for 7 and 11 for 8 or more. The game is won once every word of the
// solution has been found.
package engine
