package faqgen

import "context"

// SessionStore keeps generated items per session for the lifetime of the
// process. There is no persistence beyond this map by design.
type SessionStore interface {
	// CreateItems appends items to a session, assigning IDs and timestamps
	// to items that lack them.
	CreateItems(ctx context.Context, sessionID string, items []*QAItem) error

	// FindItems returns all items in a session in insertion order.
	// Returns ENOTFOUND if the session does not exist.
	FindItems(ctx context.Context, sessionID string) ([]*QAItem, error)

	// UpdateItem replaces the stored item with the same ID.
	// Returns ENOTFOUND if the session or item does not exist.
	UpdateItem(ctx context.Context, sessionID string, item *QAItem) error

	// DeleteItem removes a single item.
	// Returns ENOTFOUND if the session or item does not exist.
	DeleteItem(ctx context.Context, sessionID, itemID string) error

	// DeleteSession evicts a whole session. Deleting a missing session is
	// not an error.
	DeleteSession(ctx context.Context, sessionID string) error
}
