// Package documents keeps the text of documents open in the editor.
package documents

import (
	"strings"
	"sync"

	"go.lsp.dev/uri"
)

// Store holds the full text of each open document. The server asks for full
// document sync, so every change replaces the whole text.
type Store struct {
	m         sync.RWMutex
	documents map[uri.URI]document
}

type document struct {
	version int
	lines   []string
}

func NewStore() *Store {
	return &Store{
		documents: map[uri.URI]document{},
	}
}

// Open adds a document, or replaces it if it's already open.
func (s *Store) Open(u uri.URI, version int, text string) {
	s.m.Lock()
	defer s.m.Unlock()
	s.documents[u] = newDocument(version, text)
}

// Update replaces the text of a document. Updates with an older version than the
// stored document are ignored, and ok is false.
func (s *Store) Update(u uri.URI, version int, text string) (ok bool) {
	s.m.Lock()
	defer s.m.Unlock()
	if existing, exists := s.documents[u]; exists && existing.version > version {
		return false
	}
	s.documents[u] = newDocument(version, text)
	return true
}

// Close removes the document.
func (s *Store) Close(u uri.URI) {
	s.m.Lock()
	defer s.m.Unlock()
	delete(s.documents, u)
}

// Line returns the text of the zero based line, without the line ending.
func (s *Store) Line(u uri.URI, line int) (text string, ok bool) {
	s.m.RLock()
	defer s.m.RUnlock()
	d, ok := s.documents[u]
	if !ok || line < 0 || line >= len(d.lines) {
		return "", false
	}
	return d.lines[line], true
}

// Len returns the number of open documents.
func (s *Store) Len() int {
	s.m.RLock()
	defer s.m.RUnlock()
	return len(s.documents)
}

func newDocument(version int, text string) document {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return document{
		version: version,
		lines:   lines,
	}
}
