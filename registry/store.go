package registry

import (
	"sync"

	"github.com/a-h/phalcomlsp/catalog"
)

// Store owns the Context shared by request handlers. The Context is built once
// when the server is activated, and destroyed when it shuts down.
type Store struct {
	m   sync.RWMutex
	ctx *Context
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{}
}

// Build the Context from the catalog and make it current. The Context is stored
// even if Build returns an error, see Build.
func (s *Store) Build(c catalog.Catalog) (err error) {
	ctx, err := Build(c)
	s.m.Lock()
	defer s.m.Unlock()
	s.ctx = ctx
	return err
}

// Current returns the Context, or nil if it hasn't been built, or has been destroyed.
func (s *Store) Current() *Context {
	s.m.RLock()
	defer s.m.RUnlock()
	return s.ctx
}

// Destroy releases the Context. Queries already holding the Context can finish,
// since it's never modified.
func (s *Store) Destroy() {
	s.m.Lock()
	defer s.m.Unlock()
	s.ctx = nil
}
