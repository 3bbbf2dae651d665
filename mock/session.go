package mock

import (
	"context"

	"github.com/seihin/faqgen"
)

var _ faqgen.SessionStore = (*SessionStore)(nil)

// SessionStore is a mock implementation of faqgen.SessionStore.
type SessionStore struct {
	CreateItemsFn   func(ctx context.Context, sessionID string, items []*faqgen.QAItem) error
	FindItemsFn     func(ctx context.Context, sessionID string) ([]*faqgen.QAItem, error)
	UpdateItemFn    func(ctx context.Context, sessionID string, item *faqgen.QAItem) error
	DeleteItemFn    func(ctx context.Context, sessionID, itemID string) error
	DeleteSessionFn func(ctx context.Context, sessionID string) error
}

func (s *SessionStore) CreateItems(ctx context.Context, sessionID string, items []*faqgen.QAItem) error {
	return s.CreateItemsFn(ctx, sessionID, items)
}

func (s *SessionStore) FindItems(ctx context.Context, sessionID string) ([]*faqgen.QAItem, error) {
	return s.FindItemsFn(ctx, sessionID)
}

func (s *SessionStore) UpdateItem(ctx context.Context, sessionID string, item *faqgen.QAItem) error {
	return s.UpdateItemFn(ctx, sessionID, item)
}

func (s *SessionStore) DeleteItem(ctx context.Context, sessionID, itemID string) error {
	return s.DeleteItemFn(ctx, sessionID, itemID)
}

func (s *SessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	return s.DeleteSessionFn(ctx, sessionID)
}
