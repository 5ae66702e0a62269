package encounter

import (
	"fmt"
	"sync"
)

// Registry tracks active encounters by ID.
// All methods are safe for concurrent use; the encounters themselves are not.
type Registry struct {
	mu         sync.RWMutex
	encounters map[string]*Encounter
}

// NewRegistry creates an empty Registry.
//
// Postcondition: Returns a non-nil Registry ready for use.
func NewRegistry() *Registry {
	return &Registry{encounters: make(map[string]*Encounter)}
}

// Add registers enc under its ID.
//
// Precondition: enc must be non-nil with a non-empty ID.
// Postcondition: Returns an error if an encounter with the same ID is already registered.
func (r *Registry) Add(enc *Encounter) error {
	if enc == nil || enc.ID == "" {
		return fmt.Errorf("encounter must be non-nil with an ID")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.encounters[enc.ID]; exists {
		return fmt.Errorf("encounter %q already registered", enc.ID)
	}
	r.encounters[enc.ID] = enc
	return nil
}

// Get returns the encounter registered under id.
//
// Postcondition: Returns (encounter, true) if found, or (nil, false) otherwise.
func (r *Registry) Get(id string) (*Encounter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	enc, ok := r.encounters[id]
	return enc, ok
}

// Remove deletes the encounter registered under id. Removing an unknown id is a no-op.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.encounters, id)
}

// Len returns the number of registered encounters.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.encounters)
}
