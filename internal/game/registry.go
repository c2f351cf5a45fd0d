package game

import (
	"fmt"
	"sort"
	"sync"
)

// Registry manages game registration and lookup.
// It is safe for concurrent use.
type Registry struct {
	games map[string]MiniGame
	mu    sync.RWMutex
}

// NewRegistry creates a registry holding the given games.
func NewRegistry(games ...MiniGame) (*Registry, error) {
	r := &Registry{
		games: make(map[string]MiniGame),
	}
	for _, g := range games {
		if err := r.Register(g); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a game to the registry.
// Registering a second game under an existing command or id is an error.
func (r *Registry) Register(g MiniGame) error {
	if g == nil {
		return fmt.Errorf("cannot register nil game")
	}
	if g.Command() == "" {
		return fmt.Errorf("game command cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.games[g.Command()]; ok {
		return fmt.Errorf("game %q already registered", g.Command())
	}
	for _, existing := range r.games {
		if existing.ID() == g.ID() {
			return fmt.Errorf("game id %d already registered by %q", g.ID(), existing.Command())
		}
	}
	r.games[g.Command()] = g
	return nil
}

// Get retrieves a game by its command.
func (r *Registry) Get(command string) (MiniGame, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.games[command]
	return g, ok
}

// List returns all registered games ordered by catalog id.
// The returned slice is a copy.
func (r *Registry) List() []MiniGame {
	r.mu.RLock()
	defer r.mu.RUnlock()

	games := make([]MiniGame, 0, len(r.games))
	for _, g := range r.games {
		games = append(games, g)
	}
	sort.Slice(games, func(i, j int) bool { return games[i].ID() < games[j].ID() })
	return games
}

// Commands returns all registered game commands in catalog order.
func (r *Registry) Commands() []string {
	games := r.List()
	commands := make([]string, 0, len(games))
	for _, g := range games {
		commands = append(commands, g.Command())
	}
	return commands
}

// Count returns the number of registered games.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.games)
}
