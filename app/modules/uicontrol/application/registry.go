package uicontrolservice

import (
	"sync"

	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
	uicontroltypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/uicontrol"
)

// Registry is the in-memory index of live controls, keyed by message id. The
// gateway routes component interactions through it; restoration repopulates it
// after a restart.
type Registry struct {
	mu       sync.RWMutex
	controls map[sharedtypes.MessageID]uicontroltypes.Control
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{controls: make(map[sharedtypes.MessageID]uicontroltypes.Control)}
}

// Register adds or replaces the control under its message id.
func (r *Registry) Register(control uicontroltypes.Control) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.controls[control.MessageID] = control
}

// Unregister drops the control for the message id, if any.
func (r *Registry) Unregister(messageID sharedtypes.MessageID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.controls, messageID)
}

// Resolve returns the registered control for a message id.
func (r *Registry) Resolve(messageID sharedtypes.MessageID) (uicontroltypes.Control, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	control, ok := r.controls[messageID]
	return control, ok
}

// UnregisterMatch drops every control belonging to the match and reports how
// many were registered.
func (r *Registry) UnregisterMatch(matchID sharedtypes.MatchID) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for id, control := range r.controls {
		if control.MatchID == matchID {
			delete(r.controls, id)
			n++
		}
	}
	return n
}

// Len reports how many controls are registered.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.controls)
}
