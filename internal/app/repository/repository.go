package repository

import (
	"sync"

	"ship_tracker/internal/app/ds"
)

// Repository holds the authoritative id -> ship mapping. Storage is
// in-memory only: the map starts empty and is discarded with the process.
type Repository struct {
	mu    sync.RWMutex
	ships map[string]ds.Ship
}

func New() *Repository {
	return &Repository{
		ships: make(map[string]ds.Ship),
	}
}

// CountShips - number of ships currently stored, for the health endpoint.
func (r *Repository) CountShips() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.ships)
}
