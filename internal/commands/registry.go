package commands

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds registered commands.
type Registry struct {
	mu   sync.RWMutex
	cmds map[string]Command // menu key -> command
}

// NewRegistry creates a new command registry.
func NewRegistry() *Registry {
	return &Registry{
		cmds: make(map[string]Command),
	}
}

// Register adds a command to the registry.
// Returns an error if the key is empty or already registered.
func (r *Registry) Register(c Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := c.Key()
	if key == "" {
		return fmt.Errorf("command has empty key: %s", c.Title())
	}
	if existing, exists := r.cmds[key]; exists {
		return fmt.Errorf("menu key already registered: %s (%s)", key, existing.Title())
	}

	r.cmds[key] = c
	return nil
}

// Find looks up a command by menu key.
func (r *Registry) Find(key string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.cmds[key]
	return cmd, ok
}

// All returns all commands sorted by key.
func (r *Registry) All() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.cmds))
	for key := range r.cmds {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) < len(keys[j])
		}
		return keys[i] < keys[j]
	})

	result := make([]Command, len(keys))
	for i, key := range keys {
		result[i] = r.cmds[key]
	}
	return result
}

// DefaultRegistry is the global command registry.
var DefaultRegistry = NewRegistry()

// Register adds a command to the default registry.
func Register(c Command) {
	if err := DefaultRegistry.Register(c); err != nil {
		panic(err)
	}
}
