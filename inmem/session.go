// Package inmem implements the session store as a process-local map.
package inmem

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/seihin/faqgen"
)

// Ensure SessionStore implements faqgen.SessionStore at compile time.
var _ faqgen.SessionStore = (*SessionStore)(nil)

// SessionStore keeps generated items per session in memory. Safe for
// concurrent use.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string][]*faqgen.QAItem
}

// NewSessionStore creates an empty SessionStore.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string][]*faqgen.QAItem),
	}
}

// CreateItems appends items to a session, creating the session on first use.
// Items without an ID or timestamp get them assigned here.
func (s *SessionStore) CreateItems(ctx context.Context, sessionID string, items []*faqgen.QAItem) error {
	if sessionID == "" {
		return faqgen.Errorf(faqgen.EINVALID, "session ID required")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range items {
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		if item.CreatedAt.IsZero() {
			item.CreatedAt = time.Now().UTC()
		}
		s.sessions[sessionID] = append(s.sessions[sessionID], item)
	}
	return nil
}

// FindItems returns all items in a session in insertion order.
func (s *SessionStore) FindItems(ctx context.Context, sessionID string) ([]*faqgen.QAItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items, ok := s.sessions[sessionID]
	if !ok {
		return nil, faqgen.Errorf(faqgen.ENOTFOUND, "session %q not found", sessionID)
	}

	out := make([]*faqgen.QAItem, len(items))
	copy(out, items)
	return out, nil
}

// UpdateItem replaces the stored item with the same ID.
func (s *SessionStore) UpdateItem(ctx context.Context, sessionID string, item *faqgen.QAItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items, ok := s.sessions[sessionID]
	if !ok {
		return faqgen.Errorf(faqgen.ENOTFOUND, "session %q not found", sessionID)
	}
	for i, existing := range items {
		if existing.ID == item.ID {
			items[i] = item
			return nil
		}
	}
	return faqgen.Errorf(faqgen.ENOTFOUND, "item %q not found", item.ID)
}

// DeleteItem removes a single item.
func (s *SessionStore) DeleteItem(ctx context.Context, sessionID, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, ok := s.sessions[sessionID]
	if !ok {
		return faqgen.Errorf(faqgen.ENOTFOUND, "session %q not found", sessionID)
	}
	for i, existing := range items {
		if existing.ID == itemID {
			s.sessions[sessionID] = append(items[:i:i], items[i+1:]...)
			return nil
		}
	}
	return faqgen.Errorf(faqgen.ENOTFOUND, "item %q not found", itemID)
}

// DeleteSession evicts a whole session. Missing sessions are a no-op.
func (s *SessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
	return nil
}
