package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"vendor_listing/internal/domain/entities"
	"vendor_listing/internal/domain/wizard"
	"vendor_listing/internal/infrastructure/logging"
	"vendor_listing/internal/usecase/interfaces"

	"github.com/avast/retry-go/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidSessionID   = errors.New("invalid session id")
	ErrSessionNotFound    = errors.New("wizard session not found")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrInvalidStep        = errors.New("invalid step")
	ErrItemNotFound       = errors.New("collection item not found")
	ErrInvalidItemField   = errors.New("invalid item field")
	ErrUnknownSpecialty   = errors.New("unknown specialty")
	ErrPreviewUnavailable = errors.New("preview is only available from the review step")
	ErrProfileChanged     = errors.New("profile status changed since the wizard session started")
)

// StartInput seeds a new wizard session. ProfileID resumes a stored profile; otherwise
// Initial (possibly nil) is merged over the field defaults.
type StartInput struct {
	ProfileID string
	Initial   *entities.Profile
}

// WizardSnapshot is what callers see after every operation.
type WizardSnapshot struct {
	SessionID  string
	ProfileID  string
	State      wizard.State
	Completion int
	Threshold  int
	CanSubmit  bool
	Breakdown  wizard.ScoreBreakdown
	Summaries  []wizard.StepSummary
}

// IProfileWizardUseCase exposes the listing wizard to hosts (HTTP, terminal).
//
// Every call is scoped to a session created by Start. Expected outcomes such as a blocked
// step or a gated submit are reported through the returned booleans, not errors.

type IProfileWizardUseCase interface {
	Start(ctx context.Context, in StartInput) (WizardSnapshot, error)
	Get(ctx context.Context, sessionID string) (WizardSnapshot, error)
	Discard(ctx context.Context, sessionID string) error
	UpdateDraft(ctx context.Context, sessionID string, patch wizard.DraftPatch) (WizardSnapshot, error)

	Next(ctx context.Context, sessionID string) (WizardSnapshot, bool, error)
	Previous(ctx context.Context, sessionID string) (WizardSnapshot, error)
	JumpToStep(ctx context.Context, sessionID string, step wizard.Step) (WizardSnapshot, error)

	AddService(ctx context.Context, sessionID string) (WizardSnapshot, string, error)
	UpdateService(ctx context.Context, sessionID, itemID string, field entities.ServiceField, value string) (WizardSnapshot, error)
	RemoveService(ctx context.Context, sessionID, itemID string) (WizardSnapshot, error)

	AddPackage(ctx context.Context, sessionID string) (WizardSnapshot, string, error)
	UpdatePackage(ctx context.Context, sessionID, itemID string, field entities.PackageField, value string) (WizardSnapshot, error)
	SetPackageInclusions(ctx context.Context, sessionID, itemID string, inclusions []string) (WizardSnapshot, error)
	RemovePackage(ctx context.Context, sessionID, itemID string) (WizardSnapshot, error)

	AddGalleryImages(ctx context.Context, sessionID string, refs []string) (WizardSnapshot, error)
	RemoveGalleryImage(ctx context.Context, sessionID string, index int) (WizardSnapshot, error)
	ToggleSpecialty(ctx context.Context, sessionID, tag string) (WizardSnapshot, error)

	SaveDraft(ctx context.Context, sessionID string) (WizardSnapshot, error)
	Submit(ctx context.Context, sessionID string) (WizardSnapshot, bool, error)
	Preview(ctx context.Context, sessionID string) (ListingPreview, error)
}

type ProfileWizardUseCase struct {
	repo     interfaces.IProfileRepository
	sessions interfaces.ISessionStore
	registry *wizard.Registry
	logger   *zap.Logger
	now      func() time.Time

	saveAttempts uint
	saveDelay    time.Duration
}

var _ IProfileWizardUseCase = (*ProfileWizardUseCase)(nil)

type WizardOption func(*ProfileWizardUseCase)

// WithSaveRetry tunes the retry around the save collaborator.
func WithSaveRetry(attempts uint, delay time.Duration) WizardOption {
	return func(u *ProfileWizardUseCase) {
		u.saveAttempts = attempts
		u.saveDelay = delay
	}
}

func WithRegistry(reg *wizard.Registry) WizardOption {
	return func(u *ProfileWizardUseCase) { u.registry = reg }
}

func WithClock(now func() time.Time) WizardOption {
	return func(u *ProfileWizardUseCase) { u.now = now }
}

func NewProfileWizardUseCase(repo interfaces.IProfileRepository, sessions interfaces.ISessionStore, logger *zap.Logger, opts ...WizardOption) *ProfileWizardUseCase {
	u := &ProfileWizardUseCase{
		repo:         repo,
		sessions:     sessions,
		registry:     wizard.DefaultRegistry(),
		logger:       logging.OrNop(logger),
		now:          func() time.Time { return time.Now().UTC() },
		saveAttempts: 3,
		saveDelay:    100 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *ProfileWizardUseCase) Start(ctx context.Context, in StartInput) (WizardSnapshot, error) {
	now := u.now()
	var seed entities.Profile
	var storedStatus entities.ProfileStatus

	if profileID := strings.TrimSpace(in.ProfileID); profileID != "" {
		stored, err := u.repo.GetByID(ctx, profileID)
		if err != nil {
			return WizardSnapshot{}, err
		}
		if stored.ID == "" {
			return WizardSnapshot{}, ErrProfileNotFound
		}
		seed = stored
		storedStatus = stored.ProfileStatus
	} else {
		if in.Initial != nil {
			seed = in.Initial.Clone()
		}
		seed.ID = uuid.NewString()
		seed.ProfileStatus = entities.ProfileStatusIncomplete
		seed.CreatedAt = now
	}

	sess := &wizard.Session{
		ID:           uuid.NewString(),
		ProfileID:    seed.ID,
		StoredStatus: storedStatus,
		CreatedAt:    now,
		LastActive:   now,
	}
	sess.Controller = wizard.NewController(u.registry, seed,
		wizard.WithSaveFunc(u.saver(sess)),
		wizard.WithPreviewFunc(func(p entities.Profile) { sess.LastPreview = &p }),
	)

	if err := u.sessions.Put(ctx, sess); err != nil {
		return WizardSnapshot{}, err
	}
	u.logger.Info("[wizard][usecase] session started",
		zap.String("session_id", sess.ID),
		zap.String("profile_id", sess.ProfileID),
		zap.Bool("resumed", strings.TrimSpace(in.ProfileID) != ""),
	)
	return snapshotOf(sess), nil
}

func (u *ProfileWizardUseCase) Get(ctx context.Context, sessionID string) (WizardSnapshot, error) {
	return u.apply(ctx, sessionID, func(*wizard.Controller) error { return nil })
}

func (u *ProfileWizardUseCase) Discard(ctx context.Context, sessionID string) error {
	sess, err := u.session(ctx, sessionID)
	if err != nil {
		return err
	}
	u.logger.Info("[wizard][usecase] session discarded", zap.String("session_id", sess.ID))
	return u.sessions.Delete(ctx, sess.ID)
}

func (u *ProfileWizardUseCase) UpdateDraft(ctx context.Context, sessionID string, patch wizard.DraftPatch) (WizardSnapshot, error) {
	return u.apply(ctx, sessionID, func(c *wizard.Controller) error {
		c.Update(patch)
		return nil
	})
}

func (u *ProfileWizardUseCase) Next(ctx context.Context, sessionID string) (WizardSnapshot, bool, error) {
	var advanced bool
	snap, err := u.apply(ctx, sessionID, func(c *wizard.Controller) error {
		from := c.Step()
		advanced = c.Next()
		if !advanced {
			u.logger.Debug("[wizard][usecase] step blocked",
				zap.String("session_id", sessionID),
				zap.Stringer("step", from),
				zap.Int("errors", len(c.Errors())),
			)
		}
		return nil
	})
	return snap, advanced, err
}

func (u *ProfileWizardUseCase) Previous(ctx context.Context, sessionID string) (WizardSnapshot, error) {
	return u.apply(ctx, sessionID, func(c *wizard.Controller) error {
		c.Previous()
		return nil
	})
}

func (u *ProfileWizardUseCase) JumpToStep(ctx context.Context, sessionID string, step wizard.Step) (WizardSnapshot, error) {
	return u.apply(ctx, sessionID, func(c *wizard.Controller) error {
		if !c.JumpToStep(step) {
			return ErrInvalidStep
		}
		return nil
	})
}

func (u *ProfileWizardUseCase) AddService(ctx context.Context, sessionID string) (WizardSnapshot, string, error) {
	var id string
	snap, err := u.apply(ctx, sessionID, func(c *wizard.Controller) error {
		id = c.AddService()
		return nil
	})
	return snap, id, err
}

func (u *ProfileWizardUseCase) UpdateService(ctx context.Context, sessionID, itemID string, field entities.ServiceField, value string) (WizardSnapshot, error) {
	return u.apply(ctx, sessionID, func(c *wizard.Controller) error {
		if _, ok := (entities.Service{}).With(field, value); !ok {
			return ErrInvalidItemField
		}
		if !c.UpdateService(itemID, field, value) {
			return ErrItemNotFound
		}
		return nil
	})
}

func (u *ProfileWizardUseCase) RemoveService(ctx context.Context, sessionID, itemID string) (WizardSnapshot, error) {
	return u.apply(ctx, sessionID, func(c *wizard.Controller) error {
		if !c.RemoveService(itemID) {
			return ErrItemNotFound
		}
		return nil
	})
}

func (u *ProfileWizardUseCase) AddPackage(ctx context.Context, sessionID string) (WizardSnapshot, string, error) {
	var id string
	snap, err := u.apply(ctx, sessionID, func(c *wizard.Controller) error {
		id = c.AddPackage()
		return nil
	})
	return snap, id, err
}

func (u *ProfileWizardUseCase) UpdatePackage(ctx context.Context, sessionID, itemID string, field entities.PackageField, value string) (WizardSnapshot, error) {
	return u.apply(ctx, sessionID, func(c *wizard.Controller) error {
		if _, ok := (entities.PricingPackage{}).With(field, value); !ok {
			return ErrInvalidItemField
		}
		if !c.UpdatePackage(itemID, field, value) {
			return ErrItemNotFound
		}
		return nil
	})
}

func (u *ProfileWizardUseCase) SetPackageInclusions(ctx context.Context, sessionID, itemID string, inclusions []string) (WizardSnapshot, error) {
	return u.apply(ctx, sessionID, func(c *wizard.Controller) error {
		if !c.SetPackageInclusions(itemID, inclusions) {
			return ErrItemNotFound
		}
		return nil
	})
}

func (u *ProfileWizardUseCase) RemovePackage(ctx context.Context, sessionID, itemID string) (WizardSnapshot, error) {
	return u.apply(ctx, sessionID, func(c *wizard.Controller) error {
		if !c.RemovePackage(itemID) {
			return ErrItemNotFound
		}
		return nil
	})
}

func (u *ProfileWizardUseCase) AddGalleryImages(ctx context.Context, sessionID string, refs []string) (WizardSnapshot, error) {
	return u.apply(ctx, sessionID, func(c *wizard.Controller) error {
		c.AddGalleryImages(refs...)
		return nil
	})
}

// RemoveGalleryImage absorbs a stale index: the snapshot is returned unchanged.
func (u *ProfileWizardUseCase) RemoveGalleryImage(ctx context.Context, sessionID string, index int) (WizardSnapshot, error) {
	return u.apply(ctx, sessionID, func(c *wizard.Controller) error {
		c.RemoveGalleryImage(index)
		return nil
	})
}

func (u *ProfileWizardUseCase) ToggleSpecialty(ctx context.Context, sessionID, tag string) (WizardSnapshot, error) {
	return u.apply(ctx, sessionID, func(c *wizard.Controller) error {
		if !c.ToggleSpecialty(tag) {
			return ErrUnknownSpecialty
		}
		return nil
	})
}

func (u *ProfileWizardUseCase) SaveDraft(ctx context.Context, sessionID string) (WizardSnapshot, error) {
	return u.apply(ctx, sessionID, func(c *wizard.Controller) error {
		return c.SaveDraft(ctx)
	})
}

func (u *ProfileWizardUseCase) Submit(ctx context.Context, sessionID string) (WizardSnapshot, bool, error) {
	var submitted bool
	snap, err := u.apply(ctx, sessionID, func(c *wizard.Controller) error {
		var err error
		submitted, err = c.SubmitForReview(ctx)
		if !submitted {
			u.logger.Info("[wizard][usecase] submit gated",
				zap.String("session_id", sessionID),
				zap.Int("completion", c.Completion()),
				zap.Int("threshold", c.Threshold()),
				zap.String("status", string(c.Status())),
			)
		}
		return err
	})
	return snap, submitted, err
}

func (u *ProfileWizardUseCase) Preview(ctx context.Context, sessionID string) (ListingPreview, error) {
	var preview ListingPreview
	_, err := u.withSession(ctx, sessionID, func(sess *wizard.Session) error {
		if !sess.Controller.Preview() || sess.LastPreview == nil {
			return ErrPreviewUnavailable
		}
		preview = BuildListingPreview(*sess.LastPreview, sess.Controller.Completion())
		return nil
	})
	return preview, err
}

// saver is the save collaborator handed to a session's controller. Controllers only call
// it while the session lock is held.
func (u *ProfileWizardUseCase) saver(sess *wizard.Session) wizard.SaveFunc {
	return func(ctx context.Context, p entities.Profile) error {
		return u.persist(ctx, sess, p)
	}
}

// persist writes p only while the stored status is the one the session last read, so a
// reviewer's decision is never overwritten by a session opened before it.
func (u *ProfileWizardUseCase) persist(ctx context.Context, sess *wizard.Session, p entities.Profile) error {
	now := u.now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	var saved entities.Profile
	err := retry.Do(
		func() error {
			var err error
			saved, err = u.repo.Save(ctx, p, sess.StoredStatus)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(u.saveAttempts),
		retry.Delay(u.saveDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			u.logger.Warn("[wizard][usecase] save retry",
				zap.String("profile_id", p.ID),
				zap.Uint("attempt", n+1),
				zap.Error(err),
			)
		}),
	)
	if err != nil {
		u.logger.Error("[wizard][usecase] save failed", zap.String("profile_id", p.ID), zap.Error(err))
		return err
	}
	if saved.ID == "" {
		u.logger.Warn("[wizard][usecase] save rejected, stored status changed",
			zap.String("session_id", sess.ID),
			zap.String("profile_id", p.ID),
			zap.String("expected_status", string(sess.StoredStatus)),
		)
		return ErrProfileChanged
	}

	sess.StoredStatus = p.ProfileStatus
	u.logger.Info("[wizard][usecase] profile saved",
		zap.String("profile_id", p.ID),
		zap.String("status", string(p.ProfileStatus)),
	)
	return nil
}

func (u *ProfileWizardUseCase) apply(ctx context.Context, sessionID string, fn func(c *wizard.Controller) error) (WizardSnapshot, error) {
	return u.withSession(ctx, sessionID, func(sess *wizard.Session) error {
		return fn(sess.Controller)
	})
}

// withSession runs fn under the session lock. The snapshot is taken even when fn fails so
// callers can still render the unchanged state.
func (u *ProfileWizardUseCase) withSession(ctx context.Context, sessionID string, fn func(sess *wizard.Session) error) (WizardSnapshot, error) {
	sess, err := u.session(ctx, sessionID)
	if err != nil {
		return WizardSnapshot{}, err
	}

	sess.Lock()
	defer sess.Unlock()

	sess.LastActive = u.now()
	fnErr := fn(sess)
	return snapshotOf(sess), fnErr
}

func (u *ProfileWizardUseCase) session(ctx context.Context, sessionID string) (*wizard.Session, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrInvalidSessionID
	}
	sess, err := u.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func snapshotOf(sess *wizard.Session) WizardSnapshot {
	c := sess.Controller
	state := c.State()
	state.Draft.ProfileStatus = state.Status
	return WizardSnapshot{
		SessionID:  sess.ID,
		ProfileID:  sess.ProfileID,
		State:      state,
		Completion: c.Completion(),
		Threshold:  c.Threshold(),
		CanSubmit:  c.CanSubmit(),
		Breakdown:  c.Breakdown(),
		Summaries:  c.Summaries(),
	}
}
