package spans

import (
	"sync"

	"github.com/google/uuid"
)

// Span is one named node in the active span tree.
type Span struct {
	ID     string
	Name   string
	parent *Span
}

// Registry tracks live spans and the currently active one. It is safe
// for concurrent use; the formatter only ever reads from it.
type Registry struct {
	mu      sync.RWMutex
	spans   map[string]*Span
	current *Span
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{spans: make(map[string]*Span)}
}

// Start opens a span under parentID and makes it the current span.
// An empty or unknown parentID nests the span under the current span,
// or at the root when none is active.
func (r *Registry) Start(name, parentID string) *Span {
	r.mu.Lock()
	defer r.mu.Unlock()

	parent := r.current
	if parentID != "" {
		if p, ok := r.spans[parentID]; ok {
			parent = p
		}
	}
	span := &Span{ID: uuid.NewString(), Name: name, parent: parent}
	r.spans[span.ID] = span
	r.current = span
	return span
}

// End closes a span. When the closed span is current, its parent
// becomes current. Ending an unknown identifier is a no-op.
func (r *Registry) End(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	span, ok := r.spans[id]
	if !ok {
		return
	}
	delete(r.spans, id)
	if r.current != nil && r.current.ID == id {
		r.current = span.parent
	}
}

// Chain returns the name chain from the root down to the identified
// span inclusive, or nil when the span is unknown or dead.
func (r *Registry) Chain(id string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	span, ok := r.spans[id]
	if !ok {
		return nil
	}
	return chainOf(span)
}

// CurrentChain returns the name chain of the currently active span,
// or nil when no span is active.
func (r *Registry) CurrentChain() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.current == nil {
		return nil
	}
	return chainOf(r.current)
}

func chainOf(span *Span) []string {
	depth := 0
	for s := span; s != nil; s = s.parent {
		depth++
	}
	chain := make([]string, depth)
	for s := span; s != nil; s = s.parent {
		depth--
		chain[depth] = s.Name
	}
	return chain
}
