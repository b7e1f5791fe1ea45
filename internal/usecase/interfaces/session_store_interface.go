package interfaces

import (
	"context"
	"vendor_listing/internal/domain/wizard"
)

// ISessionStore keeps live wizard sessions between requests.
//
// Get returns nil (and no error) for unknown or expired sessions.

type ISessionStore interface {
	Put(ctx context.Context, s *wizard.Session) error
	Get(ctx context.Context, id string) (*wizard.Session, error)
	Delete(ctx context.Context, id string) error
}
