package interfaces

import (
	"context"
	"vendor_listing/internal/domain/entities"
)

// IProfileRepository abstracts persistence for vendor listings.
//
// It is the wizard's save collaborator and the reviewer's source of truth:
//   - save a draft or a submission, only while the stored status is still the one the
//     caller last read (empty for a profile that was never stored)
//   - load a stored profile to seed a new wizard session
//   - list the review queue by status
//   - move a profile between statuses only when it is still in the expected one
//
// Lookups return a zero-value Profile (empty ID) when nothing matches; conditional writes
// return one when the condition fails.

type IProfileRepository interface {
	Save(ctx context.Context, p entities.Profile, expected entities.ProfileStatus) (entities.Profile, error)
	GetByID(ctx context.Context, id string) (entities.Profile, error)
	ListByStatus(ctx context.Context, status entities.ProfileStatus) ([]entities.Profile, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.ProfileStatus, note string) (entities.Profile, error)
}
