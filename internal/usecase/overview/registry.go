package overview

import (
	"sync"
	"time"

	"github.com/BruksfildServices01/moving-backoffice/internal/httperr"
)

// Registry keeps the mounted views of this process. Idle views expire.
type Registry struct {
	mu    sync.RWMutex
	views map[string]*View
	ttl   time.Duration
	now   func() time.Time
}

func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{
		views: make(map[string]*View),
		ttl:   ttl,
		now:   time.Now,
	}
}

func (r *Registry) Add(v *View) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.views[v.ID] = v
}

// Get returns a live view and marks it used.
func (r *Registry) Get(id string) (*View, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.views[id]
	if !ok {
		return nil, httperr.ErrBusinessMsg("view_not_found", "This overview is no longer open. Reload the page.")
	}

	now := r.now()
	if r.ttl > 0 && now.Sub(v.lastUsed) > r.ttl {
		delete(r.views, id)
		return nil, httperr.ErrBusinessMsg("view_not_found", "This overview is no longer open. Reload the page.")
	}
	v.lastUsed = now
	return v, nil
}

func (r *Registry) Remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.views[id]
	delete(r.views, id)
	return ok
}

// Sweep drops every view idle longer than the TTL and returns how many went.
func (r *Registry) Sweep() int {
	if r.ttl <= 0 {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	n := 0
	for id, v := range r.views {
		if now.Sub(v.lastUsed) > r.ttl {
			delete(r.views, id)
			n++
		}
	}
	return n
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.views)
}
