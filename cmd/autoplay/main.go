// Command autoplay plays a word grid game through the REST API. It reads
// the board from the server, searches it against a local word list, and
// submits every word it finds, longest first.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"slices"
	"time"
	"unicode/utf8"

	"github.com/wricardo/wordgrid-game/game/dictionary"
	"github.com/wricardo/wordgrid-game/game/engine"
	"github.com/wricardo/wordgrid-game/game/grid"
	"github.com/wricardo/wordgrid-game/game/service"
)

// Client talks to one session of the game server
type Client struct {
	baseURL   string
	sessionID string
	client    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// CreateSession starts a new game and makes it the client's session
func (c *Client) CreateSession(configID string) (*engine.GameState, error) {
	var reqBody []byte
	if configID != "" {
		var err error
		reqBody, err = json.Marshal(map[string]string{"config_id": configID})
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
	}

	var session service.SessionInfo
	if err := c.do("POST", "/api/sessions", reqBody, &session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	c.sessionID = session.ID
	return session.GameState, nil
}

// UseSession switches to an existing session
func (c *Client) UseSession(id string) {
	c.sessionID = id
}

func (c *Client) GetState() (*engine.GameState, error) {
	var state engine.GameState
	if err := c.do("GET", "/api/sessions/"+c.sessionID+"/state", nil, &state); err != nil {
		return nil, fmt.Errorf("get state: %w", err)
	}
	return &state, nil
}

func (c *Client) Guess(word string) (*service.GuessResponse, error) {
	body, err := json.Marshal(map[string]string{"word": word})
	if err != nil {
		return nil, fmt.Errorf("marshal guess: %w", err)
	}

	var result service.GuessResponse
	if err := c.do("POST", "/api/sessions/"+c.sessionID+"/guess", body, &result); err != nil {
		return nil, fmt.Errorf("guess %s: %w", word, err)
	}
	return &result, nil
}

func (c *Client) do(method, path string, body []byte, out interface{}) error {
	req, err := http.NewRequest(method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		return fmt.Errorf("%s - %s", resp.Status, bytes.TrimSpace(data))
	}
	return json.Unmarshal(data, out)
}

// Candidates returns the words of dict traceable on the board in state,
// longest first and alphabetical within a length, skipping words already
// found.
func Candidates(state *engine.GameState, dict engine.Dictionary) ([]string, error) {
	g, err := grid.New(state.GridSize, state.Letters)
	if err != nil {
		return nil, err
	}

	words := engine.NewSolver(g, dict).SolveSorted()
	words = slices.DeleteFunc(words, func(w string) bool {
		_, found := slices.BinarySearch(state.FoundWords, w)
		return found
	})
	slices.SortStableFunc(words, func(a, b string) int {
		return utf8.RuneCountInString(b) - utf8.RuneCountInString(a)
	})
	return words, nil
}

// Summary is the outcome of one Play run
type Summary struct {
	Guesses  int
	Accepted int
	Rejected map[engine.GuessReason]int
	Final    *engine.GameState
}

// Play submits candidates until the game is won, the list runs out, or
// maxGuesses is reached (0 means no limit)
func Play(c *Client, candidates []string, maxGuesses int, delay time.Duration, verbose bool) (*Summary, error) {
	summary := &Summary{Rejected: make(map[engine.GuessReason]int)}

	for _, word := range candidates {
		if maxGuesses > 0 && summary.Guesses >= maxGuesses {
			break
		}

		result, err := c.Guess(word)
		if err != nil {
			return summary, err
		}
		summary.Guesses++
		summary.Final = result.GameState

		if result.Accepted {
			summary.Accepted++
		} else {
			summary.Rejected[result.Reason]++
		}
		if verbose {
			log.Printf("%-12s %-18s score=%d", word, result.Reason, result.GameState.Score)
		}

		if result.GameState.GameOver {
			break
		}
		if delay > 0 {
			time.Sleep(delay)
		}
	}

	return summary, nil
}

func main() {
	serverURL := flag.String("url", "http://localhost:8080", "Game server URL")
	configID := flag.String("config", "", "Game configuration ID (server default when empty)")
	continueSession := flag.String("continue", "", "Resume playing an existing session by ID")
	dictPath := flag.String("dict", "configs/dictionaries/english.txt", "Local word list used to search the board")
	maxGuesses := flag.Int("max-guesses", 0, "Stop after this many guesses (0 = no limit)")
	verbose := flag.Bool("v", false, "Verbose output")
	delayMs := flag.Int("delay", 0, "Delay between guesses in milliseconds")
	flag.Parse()

	dict, err := dictionary.LoadFile(*dictPath)
	if err != nil {
		log.Fatalf("Failed to load word list: %v", err)
	}

	log.Printf("Connecting to game server at %s", *serverURL)
	client := NewClient(*serverURL)

	var state *engine.GameState
	if *continueSession != "" {
		client.UseSession(*continueSession)
		state, err = client.GetState()
	} else {
		state, err = client.CreateSession(*configID)
	}
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	log.Printf("Session %s: %dx%d board %s, %d words hidden", client.sessionID,
		state.GridSize, state.GridSize, state.Letters, state.TotalWords)

	candidates, err := Candidates(state, dict)
	if err != nil {
		log.Fatalf("Failed to read board: %v", err)
	}
	log.Printf("Word list yields %d candidates", len(candidates))

	summary, err := Play(client, candidates, *maxGuesses, time.Duration(*delayMs)*time.Millisecond, *verbose)
	if err != nil {
		log.Fatalf("Stopped: %v", err)
	}

	fmt.Printf("Guesses: %d, accepted: %d\n", summary.Guesses, summary.Accepted)
	for reason, n := range summary.Rejected {
		fmt.Printf("  %s: %d\n", reason, n)
	}
	if summary.Final != nil {
		fmt.Printf("Score: %d/%d, words: %d/%d\n", summary.Final.Score, summary.Final.MaxScore,
			len(summary.Final.FoundWords), summary.Final.TotalWords)
		if summary.Final.Victory {
			fmt.Println("🎉 VICTORY!")
			return
		}
	}
	os.Exit(2)
}
