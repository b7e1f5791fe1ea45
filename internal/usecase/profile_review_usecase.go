package usecase

import (
	"context"
	"errors"
	"strings"

	"vendor_listing/internal/domain/entities"
	"vendor_listing/internal/infrastructure/logging"
	"vendor_listing/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidProfileID        = errors.New("invalid profile id")
	ErrInvalidProfileStatus    = errors.New("invalid profile status")
	ErrInvalidStatusTransition = errors.New("profile is not awaiting review")
)

// IProfileReviewUseCase is the reviewer side of the listing lifecycle.
//
// The wizard only ever moves a profile to pending_review; from there:
//   - Approve => live
//   - Reject  => incomplete, with the reviewer's note kept on the profile

type IProfileReviewUseCase interface {
	GetByID(ctx context.Context, id string) (entities.Profile, error)
	ListByStatus(ctx context.Context, status entities.ProfileStatus) ([]entities.Profile, error)
	Approve(ctx context.Context, id string) (entities.Profile, error)
	Reject(ctx context.Context, id, note string) (entities.Profile, error)
}

type ProfileReviewUseCase struct {
	repo   interfaces.IProfileRepository
	logger *zap.Logger
}

var _ IProfileReviewUseCase = (*ProfileReviewUseCase)(nil)

func NewProfileReviewUseCase(repo interfaces.IProfileRepository, logger *zap.Logger) *ProfileReviewUseCase {
	return &ProfileReviewUseCase{repo: repo, logger: logging.OrNop(logger)}
}

func (u *ProfileReviewUseCase) GetByID(ctx context.Context, id string) (entities.Profile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Profile{}, ErrInvalidProfileID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Profile{}, err
	}
	if p.ID == "" {
		return entities.Profile{}, ErrProfileNotFound
	}
	return p, nil
}

func (u *ProfileReviewUseCase) ListByStatus(ctx context.Context, status entities.ProfileStatus) ([]entities.Profile, error) {
	if status == "" {
		status = entities.ProfileStatusPendingReview
	}
	if !status.Valid() {
		return nil, ErrInvalidProfileStatus
	}
	return u.repo.ListByStatus(ctx, status)
}

func (u *ProfileReviewUseCase) Approve(ctx context.Context, id string) (entities.Profile, error) {
	return u.transition(ctx, id, entities.ProfileStatusLive, "")
}

func (u *ProfileReviewUseCase) Reject(ctx context.Context, id, note string) (entities.Profile, error) {
	return u.transition(ctx, id, entities.ProfileStatusIncomplete, strings.TrimSpace(note))
}

func (u *ProfileReviewUseCase) transition(ctx context.Context, id string, to entities.ProfileStatus, note string) (entities.Profile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Profile{}, ErrInvalidProfileID
	}

	updated, err := u.repo.UpdateStatus(ctx, id, entities.ProfileStatusPendingReview, to, note)
	if err != nil {
		return entities.Profile{}, err
	}
	if updated.ID != "" {
		u.logger.Info("[profile][usecase] review decision",
			zap.String("profile_id", id),
			zap.String("status", string(to)),
		)
		return updated, nil
	}

	// Either the profile is missing or it is no longer pending review.
	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Profile{}, err
	}
	if current.ID == "" {
		return entities.Profile{}, ErrProfileNotFound
	}
	return entities.Profile{}, ErrInvalidStatusTransition
}
