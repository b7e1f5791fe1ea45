package wizard

import (
	"testing"

	"vendor_listing/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullProfile() entities.Profile {
	years := 8
	return entities.Profile{
		BusinessName:         "Golden Hour Studio",
		Category:             "Photography",
		Description:          "Candid wedding photography.",
		Services:             []entities.Service{{ID: "s1", Name: "Full day", Price: "$3,000"}},
		PricingPackages:      []entities.PricingPackage{{ID: "p1", Name: "Gold", Inclusions: []string{"Album"}}},
		Specialties:          entities.SpecialtySet{"Modern"},
		Address:              "12 Harbour St",
		CoverageAreas:        []string{"Sydney"},
		PortfolioDescription: "Recent weddings",
		GalleryImages:        []string{"https://cdn.example.com/a.jpg"},
		Website:              "https://goldenhour.example.com",
		YearsExperience:      &years,
	}
}

func TestDefaultRegistry_Shape(t *testing.T) {
	reg := DefaultRegistry()
	assert.Len(t, reg.RequiredFields(), 8)
	assert.Len(t, reg.OptionalFields(), 4)
	assert.Equal(t, 20, reg.TotalWeight())

	paths := func(fs []Field) []string {
		out := make([]string, 0, len(fs))
		for _, f := range fs {
			out = append(out, f.Path)
		}
		return out
	}
	assert.Equal(t, []string{PathBusinessName, PathCategory, PathDescription}, paths(reg.FieldsForStep(StepIdentity)))
	assert.Empty(t, reg.FieldsForStep(StepReview))
}

func TestCompletion_Bounds(t *testing.T) {
	reg := DefaultRegistry()
	assert.Equal(t, 0, Completion(reg, entities.Profile{}))
	assert.Equal(t, 100, Completion(reg, fullProfile()))
}

func TestCompletion_SeededIdentityScenario(t *testing.T) {
	p := entities.Profile{BusinessName: "A", Category: "Venue"}
	assert.Equal(t, 20, Completion(DefaultRegistry(), p))
}

func TestCompletion_RequiredOnlyCannotReachHundred(t *testing.T) {
	p := fullProfile()
	p.PricingPackages = nil
	p.PortfolioDescription = ""
	p.Website = ""
	p.YearsExperience = nil

	// 16 of 20 points.
	assert.Equal(t, 80, Completion(DefaultRegistry(), p))
}

func TestCompletion_RoundsInsteadOfTruncating(t *testing.T) {
	present := func(entities.Profile) bool { return true }
	absent := func(entities.Profile) bool { return false }

	// 2 of 3 points: 66.67 rounds to 67.
	reg, err := NewRegistry(
		Required("a", "", StepIdentity, present),
		Optional("b", "", StepAny, absent),
	)
	require.NoError(t, err)
	assert.Equal(t, 67, Completion(reg, entities.Profile{}))
}

func TestCompletion_WhitespaceDoesNotCount(t *testing.T) {
	p := entities.Profile{BusinessName: "   ", Category: "\t"}
	assert.Equal(t, 0, Completion(DefaultRegistry(), p))
}

func TestCompletion_MonotonicAsFieldsAreFilled(t *testing.T) {
	reg := DefaultRegistry()
	full := fullProfile()
	steps := []func(p *entities.Profile){
		func(p *entities.Profile) { p.BusinessName = full.BusinessName },
		func(p *entities.Profile) { p.Website = full.Website },
		func(p *entities.Profile) { p.Category = full.Category },
		func(p *entities.Profile) { p.Services = full.Services },
		func(p *entities.Profile) { p.YearsExperience = full.YearsExperience },
		func(p *entities.Profile) { p.Description = full.Description },
		func(p *entities.Profile) { p.Specialties = full.Specialties },
		func(p *entities.Profile) { p.PricingPackages = full.PricingPackages },
		func(p *entities.Profile) { p.Address = full.Address },
		func(p *entities.Profile) { p.CoverageAreas = full.CoverageAreas },
		func(p *entities.Profile) { p.PortfolioDescription = full.PortfolioDescription },
		func(p *entities.Profile) { p.GalleryImages = full.GalleryImages },
	}

	var p entities.Profile
	prev := Completion(reg, p)
	for i, fill := range steps {
		fill(&p)
		got := Completion(reg, p)
		require.GreaterOrEqualf(t, got, prev, "completion dropped after fill %d", i)
		require.LessOrEqual(t, got, 100)
		prev = got
	}
	assert.Equal(t, 100, prev)
}

func TestBreakdown_ListsMissingFields(t *testing.T) {
	b := Breakdown(DefaultRegistry(), entities.Profile{BusinessName: "A", Category: "Venue"})
	assert.Equal(t, 4, b.Earned)
	assert.Equal(t, 20, b.Total)
	assert.Equal(t, 20, b.Percentage)
	assert.Contains(t, b.MissingRequired, PathDescription)
	assert.NotContains(t, b.MissingRequired, PathBusinessName)
	assert.ElementsMatch(t, []string{PathPricingPackages, PathPortfolioDescription, PathWebsite, PathYearsExperience}, b.MissingOptional)
}

func TestNewRegistry_RejectsBadDefinitions(t *testing.T) {
	present := func(entities.Profile) bool { return true }

	cases := []struct {
		name   string
		fields []Field
		want   error
	}{
		{name: "duplicate", fields: []Field{Required("a", "", StepIdentity, present), Optional("a", "", StepAny, present)}, want: ErrDuplicateField},
		{name: "empty path", fields: []Field{Required(" ", "", StepIdentity, present)}, want: ErrInvalidField},
		{name: "nil predicate", fields: []Field{Required("a", "", StepIdentity, nil)}, want: ErrInvalidField},
		{name: "zero weight", fields: []Field{{Path: "a", Step: StepIdentity, Present: present}}, want: ErrInvalidField},
		{name: "review step", fields: []Field{Required("a", "", StepReview, present)}, want: ErrInvalidField},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewRegistry(tc.fields...)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestPredicates(t *testing.T) {
	social := MapPresent(func(p entities.Profile) map[string]string { return p.SocialLinks })
	team := NumberPresent(func(p entities.Profile) *int { return p.TeamSize })
	zero := 0

	assert.False(t, social(entities.Profile{}))
	assert.True(t, social(entities.Profile{SocialLinks: map[string]string{"instagram": "@gh"}}))
	assert.False(t, team(entities.Profile{}))
	assert.True(t, team(entities.Profile{TeamSize: &zero}), "zero is a provided number")
}
