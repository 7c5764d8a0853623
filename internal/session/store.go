// Package session keeps one mutation workflow per moderator session,
// addressed by an opaque handle and expired after a period of inactivity.
package session

import (
	"errors"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/ppiankov/claimshift/internal/mutation"
)

// ErrSessionNotFound is returned for unknown, destroyed or expired handles
var ErrSessionNotFound = errors.New("session not found")

// Handle addresses a session
type Handle string

// Factory builds a fresh workflow for a new session
type Factory func(mode mutation.Mode) *mutation.Workflow

// Store holds workflows in memory with sliding expiry
type Store struct {
	cache   *gocache.Cache
	factory Factory
	logger  *zap.Logger
}

// NewStore creates a session store.
// Sessions idle for ttl are dropped; expired entries are purged every cleanupInterval.
func NewStore(factory Factory, ttl, cleanupInterval time.Duration, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := gocache.New(ttl, cleanupInterval)
	c.OnEvicted(func(key string, _ interface{}) {
		logger.Debug("session released", zap.String("session", key))
	})
	return &Store{
		cache:   c,
		factory: factory,
		logger:  logger,
	}
}

// Create starts a session with a freshly initialized workflow
func (s *Store) Create(mode mutation.Mode) (Handle, *mutation.Workflow) {
	h := Handle(uuid.NewString())
	w := s.factory(mode)
	s.cache.Set(string(h), w, gocache.DefaultExpiration)
	s.logger.Debug("session created", zap.String("session", string(h)), zap.Stringer("mode", mode))
	return h, w
}

// Get returns the workflow for h and extends its expiry
func (s *Store) Get(h Handle) (*mutation.Workflow, error) {
	val, found := s.cache.Get(string(h))
	if !found {
		return nil, ErrSessionNotFound
	}
	w := val.(*mutation.Workflow)
	s.cache.Set(string(h), w, gocache.DefaultExpiration)
	return w, nil
}

// Destroy ends the session; unknown handles are ignored
func (s *Store) Destroy(h Handle) {
	s.cache.Delete(string(h))
}

// Len returns the number of live sessions, including expired ones not yet purged
func (s *Store) Len() int {
	return s.cache.ItemCount()
}

// Clear ends every session
func (s *Store) Clear() {
	s.cache.Flush()
}
