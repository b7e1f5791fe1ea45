package wizard

import (
	"errors"
	"fmt"
	"strings"

	"vendor_listing/internal/domain/entities"
)

const (
	RequiredWeight = 2
	OptionalWeight = 1
)

var (
	ErrDuplicateField = errors.New("duplicate field path")
	ErrInvalidField   = errors.New("invalid field definition")
)

// Predicate reports whether a field counts as filled in. The same predicate decides both
// the progress bar and whether a step may be left.
type Predicate func(p entities.Profile) bool

// Field is one scored entry of the registry.
type Field struct {
	Path     string
	Label    string
	Step     Step
	Required bool
	Weight   int
	Present  Predicate
}

// Required builds a required field with the default weight.
func Required(path, label string, step Step, present Predicate) Field {
	return Field{Path: path, Label: label, Step: step, Required: true, Weight: RequiredWeight, Present: present}
}

// Optional builds an optional field with the default weight.
func Optional(path, label string, step Step, present Predicate) Field {
	return Field{Path: path, Label: label, Step: step, Weight: OptionalWeight, Present: present}
}

func TextPresent(get func(entities.Profile) string) Predicate {
	return func(p entities.Profile) bool {
		return strings.TrimSpace(get(p)) != ""
	}
}

func ListPresent[T any](get func(entities.Profile) []T) Predicate {
	return func(p entities.Profile) bool {
		return len(get(p)) > 0
	}
}

func NumberPresent[T int | float64](get func(entities.Profile) *T) Predicate {
	return func(p entities.Profile) bool {
		return get(p) != nil
	}
}

func MapPresent(get func(entities.Profile) map[string]string) Predicate {
	return func(p entities.Profile) bool {
		return len(get(p)) > 0
	}
}

// Registry is the immutable set of scored fields. It is configuration, not state.
type Registry struct {
	fields []Field
	byPath map[string]int
}

func NewRegistry(fields ...Field) (*Registry, error) {
	r := &Registry{
		fields: make([]Field, 0, len(fields)),
		byPath: make(map[string]int, len(fields)),
	}
	for _, f := range fields {
		f.Path = strings.TrimSpace(f.Path)
		switch {
		case f.Path == "":
			return nil, fmt.Errorf("%w: empty path", ErrInvalidField)
		case f.Present == nil:
			return nil, fmt.Errorf("%w: %s has no presence predicate", ErrInvalidField, f.Path)
		case f.Weight <= 0:
			return nil, fmt.Errorf("%w: %s has weight %d", ErrInvalidField, f.Path, f.Weight)
		case f.Step != StepAny && (!f.Step.Valid() || f.Step == StepReview):
			return nil, fmt.Errorf("%w: %s assigned to step %d", ErrInvalidField, f.Path, f.Step)
		}
		if _, dup := r.byPath[f.Path]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateField, f.Path)
		}
		if f.Label == "" {
			f.Label = f.Path
		}
		r.byPath[f.Path] = len(r.fields)
		r.fields = append(r.fields, f)
	}
	return r, nil
}

// MustRegistry panics on an invalid definition. Only for package-level configuration.
func MustRegistry(fields ...Field) *Registry {
	r, err := NewRegistry(fields...)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Registry) Fields() []Field {
	if r == nil {
		return nil
	}
	return append([]Field(nil), r.fields...)
}

func (r *Registry) RequiredFields() []Field {
	return r.filter(func(f Field) bool { return f.Required })
}

func (r *Registry) OptionalFields() []Field {
	return r.filter(func(f Field) bool { return !f.Required })
}

func (r *Registry) FieldsForStep(step Step) []Field {
	return r.filter(func(f Field) bool { return f.Step == step })
}

func (r *Registry) Lookup(path string) (Field, bool) {
	if r == nil {
		return Field{}, false
	}
	i, ok := r.byPath[path]
	if !ok {
		return Field{}, false
	}
	return r.fields[i], true
}

// TotalWeight is the score of a profile with every registered field present.
func (r *Registry) TotalWeight() int {
	total := 0
	for _, f := range r.fields {
		total += f.Weight
	}
	return total
}

func (r *Registry) filter(keep func(Field) bool) []Field {
	var out []Field
	for _, f := range r.fields {
		if keep(f) {
			out = append(out, f)
		}
	}
	return out
}

// Draft field paths. They double as JSON keys in field error maps.
const (
	PathBusinessName         = "business_name"
	PathCategory             = "category"
	PathSubcategory          = "subcategory"
	PathRegistrationID       = "registration_id"
	PathDescription          = "description"
	PathServices             = "services"
	PathPricingPackages      = "pricing_packages"
	PathSpecialties          = "specialties"
	PathAddress              = "address"
	PathCoverageAreas        = "coverage_areas"
	PathLatitude             = "latitude"
	PathLongitude            = "longitude"
	PathPortfolioDescription = "portfolio_description"
	PathGalleryImages        = "gallery_images"
	PathFeaturedImage        = "featured_image"
	PathWebsite              = "website"
	PathSocialLinks          = "social_links"
	PathYearsExperience      = "years_experience"
	PathTeamSize             = "team_size"
)

var defaultRegistry = MustRegistry(
	Required(PathBusinessName, "Business name", StepIdentity, TextPresent(func(p entities.Profile) string { return p.BusinessName })),
	Required(PathCategory, "Category", StepIdentity, TextPresent(func(p entities.Profile) string { return p.Category })),
	Required(PathDescription, "Description", StepIdentity, TextPresent(func(p entities.Profile) string { return p.Description })),
	Required(PathServices, "Services", StepOfferings, ListPresent(func(p entities.Profile) []entities.Service { return p.Services })),
	Required(PathSpecialties, "Specialties", StepOfferings, ListPresent(func(p entities.Profile) []string { return p.Specialties })),
	Required(PathAddress, "Address", StepCoverage, TextPresent(func(p entities.Profile) string { return p.Address })),
	Required(PathCoverageAreas, "Coverage areas", StepCoverage, ListPresent(func(p entities.Profile) []string { return p.CoverageAreas })),
	Required(PathGalleryImages, "Gallery images", StepPortfolio, ListPresent(func(p entities.Profile) []string { return p.GalleryImages })),

	Optional(PathPricingPackages, "Pricing packages", StepOfferings, ListPresent(func(p entities.Profile) []entities.PricingPackage { return p.PricingPackages })),
	Optional(PathPortfolioDescription, "Portfolio description", StepPortfolio, TextPresent(func(p entities.Profile) string { return p.PortfolioDescription })),
	Optional(PathWebsite, "Website", StepAny, TextPresent(func(p entities.Profile) string { return p.Website })),
	Optional(PathYearsExperience, "Years of experience", StepAny, NumberPresent(func(p entities.Profile) *int { return p.YearsExperience })),
)

// DefaultRegistry is the listing registry: eight required fields and four optional ones.
func DefaultRegistry() *Registry {
	return defaultRegistry
}
