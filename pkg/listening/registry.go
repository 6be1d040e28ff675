// Package listening tracks eavesdropping subscriptions: an observer focusing
// their attention on a subject to overhear that subject's directed messages.
package listening

import "sync"

// Registry maps observer character id → subject character id. Owned by the
// engine; mutated only on the simulation goroutine, but guarded anyway so the
// API surface can read it safely.
type Registry struct {
	mu       sync.RWMutex
	subjects map[string]string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{subjects: make(map[string]string)}
}

// Listen points the observer at a subject, replacing any prior subscription.
func (r *Registry) Listen(observerID, subjectID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subjects[observerID] = subjectID
}

// Stop clears the observer's subscription. Returns whether one existed.
func (r *Registry) Stop(observerID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.subjects[observerID]
	delete(r.subjects, observerID)
	return ok
}

// Subject returns who the observer is listening to, if anyone.
func (r *Registry) Subject(observerID string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.subjects[observerID]
	return id, ok
}

// IsListeningTo reports whether observer has a subscription covering any of
// the given participants.
func (r *Registry) IsListeningTo(observerID string, participants ...string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	subject, ok := r.subjects[observerID]
	if !ok {
		return false
	}
	for _, p := range participants {
		if p == subject {
			return true
		}
	}
	return false
}

// Drop removes every subscription held by or targeting the character. Used
// when a character dies or retires.
func (r *Registry) Drop(characterID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.subjects, characterID)
	for observer, subject := range r.subjects {
		if subject == characterID {
			delete(r.subjects, observer)
		}
	}
}
