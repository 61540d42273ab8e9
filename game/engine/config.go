package engine

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ValidateGameConfig validates a board configuration
func ValidateGameConfig(config *GameConfig) error {
	if config == nil {
		return fmt.Errorf("config validation: config is required")
	}

	// Validate required fields
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}
	if config.Description == "" {
		return fmt.Errorf("config validation: description is required")
	}
	if config.Dictionary == "" {
		return fmt.Errorf("config validation: dictionary is required")
	}

	// Validate grid size
	if config.GridSize < MinGridSize || config.GridSize > MaxGridSize {
		return fmt.Errorf("config validation: grid_size must be between %d and %d, got %d", MinGridSize, MaxGridSize, config.GridSize)
	}

	// Validate letters when the board is fixed
	if config.Letters != "" {
		need := config.GridSize * config.GridSize
		if got := utf8.RuneCountInString(config.Letters); got < need {
			return fmt.Errorf("config validation: letters must hold at least %d characters for grid_size %d, got %d",
				need, config.GridSize, got)
		}
	}

	// Validate messages
	if config.Messages.Welcome == "" {
		return fmt.Errorf("config validation: messages.welcome is required")
	}
	if config.Messages.Victory == "" {
		return fmt.Errorf("config validation: messages.victory is required")
	}

	// Validate format strings
	if !strings.Contains(config.Messages.Accepted, "%s") || !strings.Contains(config.Messages.Accepted, "%d") {
		return fmt.Errorf("config validation: messages.accepted must contain %%s for the word and %%d for points")
	}
	if !strings.Contains(config.Messages.Victory, "%d") {
		return fmt.Errorf("config validation: messages.victory must contain %%d for word count")
	}

	return nil
}

// DefaultMessages returns the standard player messages
func DefaultMessages() Messages {
	return Messages{
		Welcome:         "Find as many words as you can! Words need at least 3 letters.",
		Accepted:        "Found %s! +%d points",
		AlreadyFound:    "You already found that word",
		NotInDictionary: "Not in the dictionary",
		NotOnBoard:      "That word is not on the board",
		TooShort:        "Words need at least 3 letters",
		GameOver:        "The game is over. Reset to play again",
		Victory:         "Victory! All %d words found!",
	}
}
