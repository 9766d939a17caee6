// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate game variants without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/kojo-codeur/Mario/internal/core"
)

// Game is the interface the platform drives once per tick.
// Games contain pure logic with no terminal dependencies (no Bubble Tea).
type Game interface {
	// ID returns a unique identifier (e.g., "mario", "mario_classic").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes the game into its start screen.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// AudioTarget is implemented by games that emit sound cues.
type AudioTarget interface {
	SetAudio(sink core.AudioSink)
}

// LogTarget is implemented by games that log gameplay events.
type LogTarget interface {
	SetLogger(logger *log.Logger)
}

// HighScoreTarget is implemented by games that display the best stored score.
type HighScoreTarget interface {
	SetHighScore(score int)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Wire hands the optional collaborators to a game that accepts them.
// Nil collaborators are skipped.
func Wire(g Game, sink core.AudioSink, logger *log.Logger, highScore int) {
	if t, ok := g.(AudioTarget); ok && sink != nil {
		t.SetAudio(sink)
	}
	if t, ok := g.(LogTarget); ok && logger != nil {
		t.SetLogger(logger)
	}
	if t, ok := g.(HighScoreTarget); ok {
		t.SetHighScore(highScore)
	}
}
