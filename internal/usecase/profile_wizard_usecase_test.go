package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"vendor_listing/internal/domain/entities"
	"vendor_listing/internal/domain/wizard"
	mock_interfaces "vendor_listing/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

// wizardHarness backs the session store mock with a map so sessions survive between calls.
type wizardHarness struct {
	uc       *ProfileWizardUseCase
	repo     *mock_interfaces.MockIProfileRepository
	store    *mock_interfaces.MockISessionStore
	sessions map[string]*wizard.Session
}

func newWizardHarness(t *testing.T) *wizardHarness {
	t.Helper()
	ctrl := gomock.NewController(t)
	h := &wizardHarness{
		repo:     mock_interfaces.NewMockIProfileRepository(ctrl),
		store:    mock_interfaces.NewMockISessionStore(ctrl),
		sessions: map[string]*wizard.Session{},
	}
	h.store.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s *wizard.Session) error {
			h.sessions[s.ID] = s
			return nil
		},
	).AnyTimes()
	h.store.EXPECT().Get(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, id string) (*wizard.Session, error) {
			return h.sessions[id], nil
		},
	).AnyTimes()
	h.store.EXPECT().Delete(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, id string) error {
			delete(h.sessions, id)
			return nil
		},
	).AnyTimes()

	h.uc = NewProfileWizardUseCase(h.repo, h.store, nil,
		WithClock(func() time.Time { return fixedNow }),
		WithSaveRetry(2, time.Millisecond),
	)
	return h
}

func (h *wizardHarness) start(t *testing.T, initial *entities.Profile) WizardSnapshot {
	t.Helper()
	snap, err := h.uc.Start(context.Background(), StartInput{Initial: initial})
	if err != nil {
		t.Fatalf("unexpected start error: %v", err)
	}
	return snap
}

func requiredOnlyProfile() *entities.Profile {
	return &entities.Profile{
		BusinessName:  "Golden Hour Studio",
		Category:      "Photography",
		Description:   "Candid wedding photography.",
		Services:      []entities.Service{{Name: "Full day", Price: "$3,000"}},
		Specialties:   entities.SpecialtySet{"Modern"},
		Address:       "12 Harbour St",
		CoverageAreas: []string{"Sydney"},
		GalleryImages: []string{"https://cdn.example.com/a.jpg"},
	}
}

func TestProfileWizardUseCase_Start(t *testing.T) {
	t.Run("new draft gets ids and defaults", func(t *testing.T) {
		h := newWizardHarness(t)
		snap := h.start(t, nil)

		if snap.SessionID == "" || snap.ProfileID == "" {
			t.Fatalf("expected generated ids, got %+v", snap)
		}
		if snap.State.Step != wizard.StepIdentity {
			t.Fatalf("expected identity step, got %s", snap.State.Step)
		}
		if snap.State.Status != entities.ProfileStatusIncomplete {
			t.Fatalf("expected incomplete, got %s", snap.State.Status)
		}
		if snap.Completion != 0 || snap.CanSubmit {
			t.Fatalf("expected empty draft, got completion=%d canSubmit=%v", snap.Completion, snap.CanSubmit)
		}
		if snap.Threshold != wizard.DefaultSubmitThreshold {
			t.Fatalf("expected default threshold, got %d", snap.Threshold)
		}
		if !snap.State.Draft.CreatedAt.Equal(fixedNow) {
			t.Fatalf("expected created_at to be stamped, got %v", snap.State.Draft.CreatedAt)
		}
	})

	t.Run("resume unknown profile", func(t *testing.T) {
		h := newWizardHarness(t)
		h.repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Profile{}, nil)

		_, err := h.uc.Start(context.Background(), StartInput{ProfileID: " p-1 "})
		if !errors.Is(err, ErrProfileNotFound) {
			t.Fatalf("expected ErrProfileNotFound, got %v", err)
		}
	})

	t.Run("resume repo error", func(t *testing.T) {
		h := newWizardHarness(t)
		h.repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Profile{}, errors.New("db"))

		_, err := h.uc.Start(context.Background(), StartInput{ProfileID: "p-1"})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("resume keeps stored status", func(t *testing.T) {
		h := newWizardHarness(t)
		stored := *requiredOnlyProfile()
		stored.ID = "p-1"
		stored.ProfileStatus = entities.ProfileStatusPendingReview
		h.repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(stored, nil)

		snap, err := h.uc.Start(context.Background(), StartInput{ProfileID: "p-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if snap.ProfileID != "p-1" || snap.State.Status != entities.ProfileStatusPendingReview {
			t.Fatalf("unexpected snapshot: %+v", snap)
		}
		if snap.Completion != 80 {
			t.Fatalf("expected 80, got %d", snap.Completion)
		}
	})
}

func TestProfileWizardUseCase_SessionLookup(t *testing.T) {
	h := newWizardHarness(t)

	if _, err := h.uc.Get(context.Background(), "  "); !errors.Is(err, ErrInvalidSessionID) {
		t.Fatalf("expected ErrInvalidSessionID, got %v", err)
	}
	if _, err := h.uc.Get(context.Background(), "missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}

	snap := h.start(t, nil)
	if err := h.uc.Discard(context.Background(), snap.SessionID); err != nil {
		t.Fatalf("unexpected discard error: %v", err)
	}
	if _, err := h.uc.Get(context.Background(), snap.SessionID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected discarded session to be gone, got %v", err)
	}
}

func TestProfileWizardUseCase_Navigation(t *testing.T) {
	ctx := context.Background()

	t.Run("blocked next reports errors", func(t *testing.T) {
		h := newWizardHarness(t)
		snap := h.start(t, nil)

		res, advanced, err := h.uc.Next(ctx, snap.SessionID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if advanced || res.State.Step != wizard.StepIdentity {
			t.Fatalf("expected to stay on identity, got step=%s advanced=%v", res.State.Step, advanced)
		}
		for _, path := range []string{wizard.PathBusinessName, wizard.PathCategory, wizard.PathDescription} {
			if !res.State.Errors.Has(path) {
				t.Fatalf("expected error for %s, got %v", path, res.State.Errors)
			}
		}
	})

	t.Run("patch clears errors and next advances", func(t *testing.T) {
		h := newWizardHarness(t)
		snap := h.start(t, nil)
		_, _, _ = h.uc.Next(ctx, snap.SessionID)

		name, category, desc := "Golden Hour", "Photography", "Candid"
		res, err := h.uc.UpdateDraft(ctx, snap.SessionID, wizard.DraftPatch{
			BusinessName: &name, Category: &category, Description: &desc,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.State.Errors) != 0 {
			t.Fatalf("expected errors cleared, got %v", res.State.Errors)
		}

		res, advanced, err := h.uc.Next(ctx, snap.SessionID)
		if err != nil || !advanced || res.State.Step != wizard.StepOfferings {
			t.Fatalf("expected offerings step, got step=%s advanced=%v err=%v", res.State.Step, advanced, err)
		}

		res, err = h.uc.Previous(ctx, snap.SessionID)
		if err != nil || res.State.Step != wizard.StepIdentity {
			t.Fatalf("expected identity step, got %s err=%v", res.State.Step, err)
		}
	})

	t.Run("jump", func(t *testing.T) {
		h := newWizardHarness(t)
		snap := h.start(t, nil)

		res, err := h.uc.JumpToStep(ctx, snap.SessionID, wizard.StepReview)
		if err != nil || res.State.Step != wizard.StepReview {
			t.Fatalf("expected review step, got %s err=%v", res.State.Step, err)
		}

		res, err = h.uc.JumpToStep(ctx, snap.SessionID, wizard.Step(9))
		if !errors.Is(err, ErrInvalidStep) {
			t.Fatalf("expected ErrInvalidStep, got %v", err)
		}
		if res.State.Step != wizard.StepReview {
			t.Fatalf("expected step unchanged, got %s", res.State.Step)
		}
	})
}

func TestProfileWizardUseCase_Collections(t *testing.T) {
	ctx := context.Background()
	h := newWizardHarness(t)
	snap := h.start(t, nil)
	sid := snap.SessionID

	_, first, err := h.uc.AddService(ctx, sid)
	if err != nil || first == "" {
		t.Fatalf("expected service id, got %q err=%v", first, err)
	}
	_, second, _ := h.uc.AddService(ctx, sid)

	res, err := h.uc.UpdateService(ctx, sid, second, entities.ServiceFieldName, "Ceremony")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.State.Draft.Services[1].Name != "Ceremony" {
		t.Fatalf("expected second service renamed, got %+v", res.State.Draft.Services)
	}

	if _, err := h.uc.UpdateService(ctx, sid, second, entities.ServiceField("colour"), "x"); !errors.Is(err, ErrInvalidItemField) {
		t.Fatalf("expected ErrInvalidItemField, got %v", err)
	}

	// Removing the first row must not shift the id of the second.
	if _, err := h.uc.RemoveService(ctx, sid, first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res, err = h.uc.UpdateService(ctx, sid, second, entities.ServiceFieldPrice, "$900")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := res.State.Draft.Services; len(got) != 1 || got[0].Name != "Ceremony" || got[0].Price != "$900" {
		t.Fatalf("unexpected services: %+v", got)
	}
	if _, err := h.uc.RemoveService(ctx, sid, first); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}

	_, pkgID, _ := h.uc.AddPackage(ctx, sid)
	if _, err := h.uc.UpdatePackage(ctx, sid, pkgID, entities.PackageFieldName, "Gold"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res, err = h.uc.SetPackageInclusions(ctx, sid, pkgID, []string{"Album", " ", "Drone"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inc := res.State.Draft.PricingPackages[0].Inclusions; len(inc) != 2 {
		t.Fatalf("expected blank inclusion dropped, got %v", inc)
	}
	if _, err := h.uc.SetPackageInclusions(ctx, sid, "nope", nil); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
	if _, err := h.uc.RemovePackage(ctx, sid, pkgID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	res, _ = h.uc.AddGalleryImages(ctx, sid, []string{"https://cdn.example.com/a.jpg", "", "blob:b"})
	if len(res.State.Draft.GalleryImages) != 2 {
		t.Fatalf("expected 2 images, got %v", res.State.Draft.GalleryImages)
	}
	res, err = h.uc.RemoveGalleryImage(ctx, sid, 7)
	if err != nil || len(res.State.Draft.GalleryImages) != 2 {
		t.Fatalf("expected stale index to be ignored, got %v err=%v", res.State.Draft.GalleryImages, err)
	}
	res, _ = h.uc.RemoveGalleryImage(ctx, sid, 0)
	if len(res.State.Draft.GalleryImages) != 1 || res.State.Draft.GalleryImages[0] != "blob:b" {
		t.Fatalf("unexpected gallery: %v", res.State.Draft.GalleryImages)
	}

	res, _ = h.uc.ToggleSpecialty(ctx, sid, "Rustic")
	if !res.State.Draft.Specialties.Contains("Rustic") {
		t.Fatalf("expected Rustic toggled on")
	}
	res, _ = h.uc.ToggleSpecialty(ctx, sid, "Rustic")
	if len(res.State.Draft.Specialties) != 0 {
		t.Fatalf("expected toggle to be its own inverse, got %v", res.State.Draft.Specialties)
	}
	if _, err := h.uc.ToggleSpecialty(ctx, sid, "Haunted"); !errors.Is(err, ErrUnknownSpecialty) {
		t.Fatalf("expected ErrUnknownSpecialty, got %v", err)
	}
}

func TestProfileWizardUseCase_SaveDraft(t *testing.T) {
	ctx := context.Background()

	t.Run("persists incomplete draft with timestamps", func(t *testing.T) {
		h := newWizardHarness(t)
		snap := h.start(t, nil)

		h.repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Profile{}), entities.ProfileStatus("")).DoAndReturn(
			func(_ context.Context, p entities.Profile, _ entities.ProfileStatus) (entities.Profile, error) {
				if p.ID != snap.ProfileID || p.ProfileStatus != entities.ProfileStatusIncomplete {
					t.Fatalf("unexpected profile: %+v", p)
				}
				if !p.CreatedAt.Equal(fixedNow) || !p.UpdatedAt.Equal(fixedNow) {
					t.Fatalf("expected timestamps, got %v %v", p.CreatedAt, p.UpdatedAt)
				}
				return p, nil
			},
		)

		if _, err := h.uc.SaveDraft(ctx, snap.SessionID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("retries transient failures", func(t *testing.T) {
		h := newWizardHarness(t)
		snap := h.start(t, nil)

		gomock.InOrder(
			h.repo.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Profile{}, errors.New("throttled")),
			h.repo.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Profile{ID: snap.ProfileID}, nil),
		)

		if _, err := h.uc.SaveDraft(ctx, snap.SessionID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("later saves expect the status last written", func(t *testing.T) {
		h := newWizardHarness(t)
		snap := h.start(t, nil)

		gomock.InOrder(
			h.repo.EXPECT().Save(gomock.Any(), gomock.Any(), entities.ProfileStatus("")).Return(entities.Profile{ID: snap.ProfileID}, nil),
			h.repo.EXPECT().Save(gomock.Any(), gomock.Any(), entities.ProfileStatusIncomplete).Return(entities.Profile{ID: snap.ProfileID}, nil),
		)

		for range 2 {
			if _, err := h.uc.SaveDraft(ctx, snap.SessionID); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
	})

	t.Run("resumed profile expects its stored status", func(t *testing.T) {
		h := newWizardHarness(t)
		stored := *requiredOnlyProfile()
		stored.ID = "p-1"
		stored.ProfileStatus = entities.ProfileStatusPendingReview
		h.repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(stored, nil)
		h.repo.EXPECT().Save(gomock.Any(), gomock.Any(), entities.ProfileStatusPendingReview).Return(stored, nil)

		snap, err := h.uc.Start(ctx, StartInput{ProfileID: "p-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := h.uc.SaveDraft(ctx, snap.SessionID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("does not overwrite a reviewer decision", func(t *testing.T) {
		h := newWizardHarness(t)
		snap := h.start(t, requiredOnlyProfile())

		gomock.InOrder(
			h.repo.EXPECT().Save(gomock.Any(), gomock.Any(), entities.ProfileStatus("")).DoAndReturn(
				func(_ context.Context, p entities.Profile, _ entities.ProfileStatus) (entities.Profile, error) {
					return p, nil
				},
			),
			// the reviewer approved in between, so the pending_review condition fails
			h.repo.EXPECT().Save(gomock.Any(), gomock.Any(), entities.ProfileStatusPendingReview).Return(entities.Profile{}, nil),
		)

		if _, submitted, err := h.uc.Submit(ctx, snap.SessionID); err != nil || !submitted {
			t.Fatalf("expected submit, got submitted=%v err=%v", submitted, err)
		}
		_, err := h.uc.SaveDraft(ctx, snap.SessionID)
		if !errors.Is(err, ErrProfileChanged) {
			t.Fatalf("expected ErrProfileChanged, got %v", err)
		}
	})

	t.Run("returns last error after retries", func(t *testing.T) {
		h := newWizardHarness(t)
		snap := h.start(t, nil)

		h.repo.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Profile{}, errors.New("db")).Times(2)

		_, err := h.uc.SaveDraft(ctx, snap.SessionID)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestProfileWizardUseCase_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("below threshold is gated without saving", func(t *testing.T) {
		h := newWizardHarness(t)
		initial := requiredOnlyProfile()
		initial.GalleryImages = nil
		snap := h.start(t, initial)

		res, submitted, err := h.uc.Submit(ctx, snap.SessionID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if submitted || res.State.Status != entities.ProfileStatusIncomplete {
			t.Fatalf("expected gate, got submitted=%v status=%s", submitted, res.State.Status)
		}
	})

	t.Run("at threshold moves to pending review", func(t *testing.T) {
		h := newWizardHarness(t)
		snap := h.start(t, requiredOnlyProfile())
		if !snap.CanSubmit {
			t.Fatalf("expected submit to be allowed at %d%%", snap.Completion)
		}

		h.repo.EXPECT().Save(gomock.Any(), gomock.Any(), entities.ProfileStatus("")).DoAndReturn(
			func(_ context.Context, p entities.Profile, _ entities.ProfileStatus) (entities.Profile, error) {
				if p.ProfileStatus != entities.ProfileStatusPendingReview {
					t.Fatalf("expected pending_review, got %s", p.ProfileStatus)
				}
				return p, nil
			},
		)

		res, submitted, err := h.uc.Submit(ctx, snap.SessionID)
		if err != nil || !submitted {
			t.Fatalf("expected submit, got submitted=%v err=%v", submitted, err)
		}
		if res.State.Status != entities.ProfileStatusPendingReview || res.State.Draft.ProfileStatus != entities.ProfileStatusPendingReview {
			t.Fatalf("unexpected status: %s", res.State.Status)
		}
	})

	t.Run("save failure keeps local status", func(t *testing.T) {
		h := newWizardHarness(t)
		snap := h.start(t, requiredOnlyProfile())
		h.repo.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Profile{}, errors.New("db")).Times(2)

		res, submitted, err := h.uc.Submit(ctx, snap.SessionID)
		if err == nil || !submitted {
			t.Fatalf("expected submitted with error, got submitted=%v err=%v", submitted, err)
		}
		if res.State.Status != entities.ProfileStatusPendingReview {
			t.Fatalf("expected pending_review, got %s", res.State.Status)
		}
	})
}

func TestProfileWizardUseCase_Preview(t *testing.T) {
	ctx := context.Background()
	h := newWizardHarness(t)
	snap := h.start(t, requiredOnlyProfile())

	if _, err := h.uc.Preview(ctx, snap.SessionID); !errors.Is(err, ErrPreviewUnavailable) {
		t.Fatalf("expected ErrPreviewUnavailable, got %v", err)
	}

	if _, err := h.uc.JumpToStep(ctx, snap.SessionID, wizard.StepReview); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	preview, err := h.uc.Preview(ctx, snap.SessionID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if preview.Slug != "golden-hour-studio" {
		t.Fatalf("unexpected slug %q", preview.Slug)
	}
	if !strings.Contains(preview.Markdown, "# Golden Hour Studio") || !strings.Contains(preview.Markdown, "Profile completion: 80%") {
		t.Fatalf("unexpected markdown:\n%s", preview.Markdown)
	}
	if preview.Profile.ID != snap.ProfileID {
		t.Fatalf("expected preview of the session draft")
	}
}
