package app

import (
	"slices"
	"strings"
	"sync"

	"github.com/dkeye/Intercom/internal/domain"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// Registry owns the Connection table. It never broadcasts; the Coordinator
// decides when the roster goes out.
type Registry struct {
	mu    sync.RWMutex
	conns map[domain.ConnID]*domain.Connection
}

func NewRegistry() *Registry {
	return &Registry{
		conns: make(map[domain.ConnID]*domain.Connection),
	}
}

// Connect inserts a connection with its placeholder name. Connecting an id
// that is already present keeps the existing entry.
func (r *Registry) Connect(id domain.ConnID) domain.Connection {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.conns[id]; ok {
		return *c
	}
	c := domain.NewConnection(id)
	r.conns[id] = c
	log.Info().Str("module", "app.registry").Str("conn", string(id)).Msg("connection added")
	return *c
}

// Register overwrites the display name. It reports false, leaving the table
// untouched, when id is unknown.
func (r *Registry) Register(id domain.ConnID, name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.conns[id]
	if !ok {
		log.Debug().Str("module", "app.registry").Str("conn", string(id)).Msg("register for unknown connection")
		return false
	}
	c.SetName(name)
	log.Info().Str("module", "app.registry").Str("conn", string(id)).Str("name", c.Name).Msg("registered device")
	return true
}

// Disconnect removes id and reports whether it was present.
func (r *Registry) Disconnect(id domain.ConnID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.conns[id]; !ok {
		return false
	}
	delete(r.conns, id)
	log.Info().Str("module", "app.registry").Str("conn", string(id)).Msg("connection removed")
	return true
}

func (r *Registry) Get(id domain.ConnID) (domain.Connection, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.conns[id]
	if !ok {
		return domain.Connection{}, false
	}
	return *c, true
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.conns)
}

// Snapshot copies the roster, ordered by id.
func (r *Registry) Snapshot() []domain.Connection {
	r.mu.RLock()
	out := lo.MapToSlice(r.conns, func(_ domain.ConnID, c *domain.Connection) domain.Connection {
		return *c
	})
	r.mu.RUnlock()
	slices.SortFunc(out, func(a, b domain.Connection) int {
		return strings.Compare(string(a.ID), string(b.ID))
	})
	return out
}
