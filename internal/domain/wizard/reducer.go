package wizard

import (
	"maps"
	"slices"
	"strings"

	"vendor_listing/internal/domain/entities"
)

// State is one immutable snapshot of the wizard. Reducers take a State and return a new
// one; nothing in a State is written after it has been produced.
type State struct {
	Draft  entities.Profile
	Step   Step
	Errors FieldErrors
	Status entities.ProfileStatus
}

// DraftPatch is a partial update of the draft. Nil pointers leave fields untouched;
// Unset clears nullable numbers by path.
type DraftPatch struct {
	BusinessName         *string
	Category             *string
	Subcategory          *string
	RegistrationID       *string
	Description          *string
	Address              *string
	CoverageAreas        *[]string
	Latitude             *float64
	Longitude            *float64
	PortfolioDescription *string
	FeaturedImage        *string
	Website              *string
	SocialLinks          map[string]string
	YearsExperience      *int
	TeamSize             *int
	Unset                []string
}

func initialState(seed entities.Profile, newID func() string) State {
	draft := seed.Clone().Normalize()
	for i, s := range draft.Services {
		if s.ID == "" {
			draft.Services[i].ID = newID()
		}
	}
	for i, p := range draft.PricingPackages {
		if p.ID == "" {
			draft.PricingPackages[i].ID = newID()
		}
	}
	return State{
		Draft:  draft,
		Step:   FirstStep,
		Errors: FieldErrors{},
		Status: draft.ProfileStatus,
	}
}

// reduceNext validates the current step and advances when it is valid. On failure the
// step is unchanged and the step's errors are replaced by the fresh ones.
func reduceNext(reg *Registry, s State) (State, bool) {
	errs := ValidateStep(reg, s.Step, s.Draft)
	next := s
	next.Errors = withoutStep(reg, s.Errors, s.Step)
	if len(errs) > 0 {
		maps.Copy(next.Errors, errs)
		return next, false
	}
	next.Step = clampStep(s.Step + 1)
	return next, true
}

func reducePrevious(s State) State {
	s.Step = clampStep(s.Step - 1)
	return s
}

func reduceJump(s State, to Step) (State, bool) {
	if !to.Valid() {
		return s, false
	}
	s.Step = to
	return s, true
}

// reducePatch merges p into the draft. Paths touched by the patch lose their errors.
func reducePatch(s State, p DraftPatch) State {
	d := s.Draft
	var touched []string
	setText := func(dst *string, v *string, path string) {
		if v != nil {
			*dst = *v
			touched = append(touched, path)
		}
	}
	setText(&d.BusinessName, p.BusinessName, PathBusinessName)
	setText(&d.Category, p.Category, PathCategory)
	setText(&d.Subcategory, p.Subcategory, PathSubcategory)
	setText(&d.RegistrationID, p.RegistrationID, PathRegistrationID)
	setText(&d.Description, p.Description, PathDescription)
	setText(&d.Address, p.Address, PathAddress)
	setText(&d.PortfolioDescription, p.PortfolioDescription, PathPortfolioDescription)
	setText(&d.FeaturedImage, p.FeaturedImage, PathFeaturedImage)
	setText(&d.Website, p.Website, PathWebsite)

	if p.CoverageAreas != nil {
		d.CoverageAreas = compactStrings(*p.CoverageAreas)
		touched = append(touched, PathCoverageAreas)
	}
	if p.SocialLinks != nil {
		links := make(map[string]string, len(p.SocialLinks))
		for k, v := range p.SocialLinks {
			if k, v = strings.TrimSpace(k), strings.TrimSpace(v); k != "" && v != "" {
				links[k] = v
			}
		}
		d.SocialLinks = links
		touched = append(touched, PathSocialLinks)
	}
	if p.Latitude != nil {
		d.Latitude = ptr(*p.Latitude)
		touched = append(touched, PathLatitude)
	}
	if p.Longitude != nil {
		d.Longitude = ptr(*p.Longitude)
		touched = append(touched, PathLongitude)
	}
	if p.YearsExperience != nil {
		d.YearsExperience = ptr(*p.YearsExperience)
		touched = append(touched, PathYearsExperience)
	}
	if p.TeamSize != nil {
		d.TeamSize = ptr(*p.TeamSize)
		touched = append(touched, PathTeamSize)
	}
	for _, path := range p.Unset {
		switch path {
		case PathLatitude:
			d.Latitude = nil
		case PathLongitude:
			d.Longitude = nil
		case PathYearsExperience:
			d.YearsExperience = nil
		case PathTeamSize:
			d.TeamSize = nil
		default:
			continue
		}
		touched = append(touched, path)
	}
	return withDraft(s, d, touched...)
}

// withDraft installs a new draft and drops errors for the edited paths.
func withDraft(s State, d entities.Profile, touched ...string) State {
	s.Draft = d
	if len(touched) > 0 && len(s.Errors) > 0 {
		errs := s.Errors.clone()
		for _, path := range touched {
			delete(errs, path)
		}
		s.Errors = errs
	}
	return s
}

// draftToSave is the profile handed over by a draft save. It carries the current status:
// incomplete for a fresh draft, unchanged for a profile already in review or live, since
// the wizard never moves a profile backwards.
func draftToSave(s State) entities.Profile {
	return emitted(s)
}

// reduceSubmit applies the completion gate. A gated submit returns s untouched.
func reduceSubmit(reg *Registry, s State, threshold int) (State, entities.Profile, bool) {
	if s.Status == entities.ProfileStatusLive {
		return s, entities.Profile{}, false
	}
	if Completion(reg, s.Draft) < threshold {
		return s, entities.Profile{}, false
	}
	s.Status = entities.ProfileStatusPendingReview
	return s, emitted(s), true
}

func emitted(s State) entities.Profile {
	p := s.Draft.Clone()
	p.ProfileStatus = s.Status
	return p
}

func withoutStep(reg *Registry, errs FieldErrors, step Step) FieldErrors {
	out := errs.clone()
	for path := range out {
		if f, ok := reg.Lookup(path); ok && f.Step == step {
			delete(out, path)
		}
	}
	return out
}

func compactStrings(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v = strings.TrimSpace(v); v != "" && !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}

func ptr[T any](v T) *T {
	return &v
}
