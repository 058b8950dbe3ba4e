package widget

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Instance pairs a registered widget with its id.
type Instance struct {
	ID     uuid.UUID
	Widget *Widget
}

// Registry holds the badge instances hosted by this process, in registration
// order.
type Registry struct {
	mu      sync.Mutex
	order   []uuid.UUID
	widgets map[uuid.UUID]*Widget
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{widgets: make(map[uuid.UUID]*Widget)}
}

// Add registers a widget and returns its assigned id.
func (r *Registry) Add(w *Widget) uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.New()
	r.order = append(r.order, id)
	r.widgets[id] = w
	return id
}

// Get looks up a widget by id.
func (r *Registry) Get(id uuid.UUID) (*Widget, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.widgets[id]
	return w, ok
}

// All returns the registered instances in registration order.
func (r *Registry) All() []Instance {
	r.mu.Lock()
	defer r.mu.Unlock()

	instances := make([]Instance, 0, len(r.order))
	for _, id := range r.order {
		instances = append(instances, Instance{ID: id, Widget: r.widgets[id]})
	}
	return instances
}

// StartAll starts every registered widget's refresh loop.
func (r *Registry) StartAll(ctx context.Context) {
	for _, inst := range r.All() {
		inst.Widget.Start(ctx)
	}
}

// StopAll stops every registered widget and waits for their loops to exit.
func (r *Registry) StopAll() {
	for _, inst := range r.All() {
		inst.Widget.Stop()
	}
}
