package booking

import "sync"

// Registry holds open flow sessions in memory. Flows are discarded on
// close or process restart; only submitted bookings are durable.
type Registry struct {
	mu    sync.Mutex
	flows map[string]*Flow
}

func NewRegistry() *Registry {
	return &Registry{flows: make(map[string]*Flow)}
}

func (r *Registry) Add(flow *Flow) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.flows[flow.ID] = flow
}

func (r *Registry) Get(id string) (*Flow, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	flow, ok := r.flows[id]

	return flow, ok
}

// Remove closes a flow, discarding any unsubmitted passenger data.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.flows, id)
}

// WithFlow runs fn while holding the registry lock, serializing all
// mutations of one flow.
func (r *Registry) WithFlow(id string, fn func(*Flow) error) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	flow, ok := r.flows[id]
	if !ok {
		return false, nil
	}

	return true, fn(flow)
}
