// Package registry provides a global registry of board variants.
// Variants register themselves in init() functions, allowing the platform
// to list and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
)

// Game is the interface the terminal platform drives.
// Implementations contain pure logic with no Bubble Tea dependency.
type Game interface {
	// ID returns a unique identifier for this variant (e.g., "classic", "grid5").
	ID() string

	// Title returns a human-readable name for display (e.g., "Classic 3x3").
	Title() string

	// GridSize returns the board side length.
	GridSize() int

	// Reset starts a fresh session: empty board, X to move, scores cleared.
	// The RuntimeConfig carries screen size, mode, difficulty and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Resize updates the screen size without touching the session.
	Resize(width, height int)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current scores, status line and game-over flag.
	State() core.GameState
}

// GameInfo contains metadata about a registered variant.
type GameInfo struct {
	ID       string
	Title    string
	GridSize int
}

// Factory is a function that creates a new instance of a variant.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
	mu        sync.RWMutex
)

// Register adds a variant factory to the registry.
// Panics if a variant with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// metadata comes from a throwaway instance
	g := f()
	infos[id] = GameInfo{ID: id, Title: g.Title(), GridSize: g.GridSize()}
}

// List returns all registered variants, smallest board first.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].GridSize != result[j].GridSize {
			return result[i].GridSize < result[j].GridSize
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new variant by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// ForGridSize returns the ID of the first variant with the given board size.
func ForGridSize(size int) (string, bool) {
	for _, info := range List() {
		if info.GridSize == size {
			return info.ID, true
		}
	}
	return "", false
}
