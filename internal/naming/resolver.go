package naming

import "sync"

// Resolver maps player-facing display names to stable internal names.
// Lookups fold case and accents so typed commands match regardless of
// keyboard layout.
type Resolver interface {
	// ResolveDisplayName converts a display name to its internal name.
	ResolveDisplayName(displayName string) (internalName string, ok bool)

	// DisplayName returns the registered display name for an internal
	// name, or the internal name itself when unregistered.
	DisplayName(internalName string) string

	// Register records a display name for an internal name.
	Register(internalName, displayName string)
}

type resolver struct {
	mu sync.RWMutex

	// Mapping: folded display name -> internal_name
	displayToInternal map[string]string

	// Mapping: internal_name -> display name
	internalToDisplay map[string]string
}

// NewResolver creates an empty resolver.
func NewResolver() Resolver {
	return &resolver{
		displayToInternal: make(map[string]string),
		internalToDisplay: make(map[string]string),
	}
}

func (r *resolver) Register(internalName, displayName string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.displayToInternal[Fold(displayName)] = internalName
	// Internal names are also valid input.
	r.displayToInternal[Fold(internalName)] = internalName
	r.internalToDisplay[internalName] = displayName
}

func (r *resolver) ResolveDisplayName(displayName string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	internal, ok := r.displayToInternal[Fold(displayName)]
	return internal, ok
}

func (r *resolver) DisplayName(internalName string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if display, ok := r.internalToDisplay[internalName]; ok {
		return display
	}
	return internalName
}
