package menu

import (
	"sync"
)

// Repository stores the catalog. The demo ships with an in-memory
// implementation only; state resets on restart.
type Repository interface {
	List() []MenuItem
	Get(id string) (MenuItem, bool)
	Insert(item MenuItem)
	SetAvailability(id string, available bool) bool
	Remove(id string) bool
}

type memoryRepository struct {
	mu    sync.RWMutex
	items []MenuItem
}

// NewRepository creates an in-memory catalog pre-populated with seed,
// newest entries first.
func NewRepository(seed []MenuItem) Repository {
	items := make([]MenuItem, len(seed))
	copy(items, seed)
	return &memoryRepository{items: items}
}

func (r *memoryRepository) List() []MenuItem {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]MenuItem, len(r.items))
	copy(out, r.items)
	return out
}

func (r *memoryRepository) Get(id string) (MenuItem, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.ID == id {
			return item, true
		}
	}
	return MenuItem{}, false
}

// Insert prepends so the newest item shows first, matching the
// most-recent-first display convention.
func (r *memoryRepository) Insert(item MenuItem) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append([]MenuItem{item}, r.items...)
}

func (r *memoryRepository) SetAvailability(id string, available bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].Available = available
			return true
		}
	}
	return false
}

func (r *memoryRepository) Remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true
		}
	}
	return false
}
