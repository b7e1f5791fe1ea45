package response

import (
	"testing"
	"time"

	"vendor_listing/internal/domain/entities"
	"vendor_listing/internal/domain/wizard"
	"vendor_listing/internal/usecase"
)

func TestFromProfile(t *testing.T) {
	now := time.Now().UTC()
	p := entities.Profile{
		ID:           "p-1",
		BusinessName: "Petal & Stem",
		Services:     []entities.Service{{ID: "s-1", Name: "Bouquet", Price: "$90"}},
		Specialties:  entities.SpecialtySet{"Rustic", "Modern"},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	res := FromProfile(p)
	if res.ID != "p-1" || res.BusinessName != "Petal & Stem" {
		t.Fatalf("unexpected identity: %+v", res)
	}
	if res.ProfileStatus != "incomplete" {
		t.Fatalf("expected default status, got %q", res.ProfileStatus)
	}
	if len(res.Services) != 1 || res.Services[0].Price != "$90" {
		t.Fatalf("unexpected services: %+v", res.Services)
	}
	if len(res.Specialties) != 2 || res.Specialties[0] != "Modern" {
		t.Fatalf("expected sorted specialties, got %v", res.Specialties)
	}
	if res.PricingPackages == nil || res.GalleryImages == nil || res.SocialLinks == nil {
		t.Fatalf("collections must be empty, not nil: %+v", res)
	}
	if !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}

func TestFromSnapshot(t *testing.T) {
	snap := usecase.WizardSnapshot{
		SessionID:  "sess-1",
		ProfileID:  "p-1",
		Completion: 60,
		Threshold:  80,
		State: wizard.State{
			Step:   wizard.StepCoverage,
			Status: entities.ProfileStatusIncomplete,
			Errors: wizard.FieldErrors{"address": "Address is required"},
		},
		Breakdown: wizard.ScoreBreakdown{Earned: 12, Total: 20},
	}

	res := FromSnapshot(snap)
	if res.Step != 3 || res.StepName != "Coverage" {
		t.Fatalf("unexpected step: %d %q", res.Step, res.StepName)
	}
	if res.Errors["address"] == "" || res.CanSubmit {
		t.Fatalf("unexpected gate fields: %+v", res)
	}
	if res.Breakdown.MissingRequired == nil || res.Breakdown.MissingOptional == nil {
		t.Fatalf("missing lists must be empty, not nil")
	}
	if res.Summaries == nil {
		t.Fatalf("summaries must be empty, not nil")
	}
}
