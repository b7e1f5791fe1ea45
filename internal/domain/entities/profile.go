package entities

import (
	"slices"
	"time"
)

// ProfileStatus represents the lifecycle of a vendor listing.
//
// Domain notes:
//   - The wizard only ever moves a profile from incomplete to pending_review.
//   - pending_review -> live and pending_review -> incomplete belong to the reviewer.

type ProfileStatus string

const (
	ProfileStatusIncomplete    ProfileStatus = "incomplete"
	ProfileStatusPendingReview ProfileStatus = "pending_review"
	ProfileStatusLive          ProfileStatus = "live"
)

func (s ProfileStatus) Valid() bool {
	switch s {
	case ProfileStatusIncomplete, ProfileStatusPendingReview, ProfileStatusLive:
		return true
	}
	return false
}

// Profile is the vendor listing edited by the wizard and persisted by the save collaborator.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (profile_status-index): profile_status
//
// Nullable numbers are pointers: nil means "not provided", which is distinct from zero.
type Profile struct {
	ID string `json:"id" yaml:"id"`

	// Identity
	BusinessName   string `json:"business_name" yaml:"business_name"`
	Category       string `json:"category" yaml:"category"`
	Subcategory    string `json:"subcategory" yaml:"subcategory"`
	RegistrationID string `json:"registration_id" yaml:"registration_id"`
	Description    string `json:"description" yaml:"description"`

	// Offerings
	Services        []Service        `json:"services" yaml:"services"`
	PricingPackages []PricingPackage `json:"pricing_packages" yaml:"pricing_packages"`
	Specialties     SpecialtySet     `json:"specialties" yaml:"specialties"`

	// Coverage
	Address       string   `json:"address" yaml:"address"`
	CoverageAreas []string `json:"coverage_areas" yaml:"coverage_areas"`
	Latitude      *float64 `json:"latitude" yaml:"latitude"`
	Longitude     *float64 `json:"longitude" yaml:"longitude"`

	// Portfolio
	PortfolioDescription string   `json:"portfolio_description" yaml:"portfolio_description"`
	GalleryImages        []string `json:"gallery_images" yaml:"gallery_images"`
	FeaturedImage        string   `json:"featured_image" yaml:"featured_image"`

	// Metadata
	Website         string            `json:"website" yaml:"website"`
	SocialLinks     map[string]string `json:"social_links" yaml:"social_links"`
	YearsExperience *int              `json:"years_experience" yaml:"years_experience"`
	TeamSize        *int              `json:"team_size" yaml:"team_size"`

	ProfileStatus ProfileStatus `json:"profile_status" yaml:"profile_status"`
	ReviewNote    string        `json:"review_note,omitempty" yaml:"review_note,omitempty"`
	CreatedAt     time.Time     `json:"created_at" yaml:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at" yaml:"updated_at"`
}

// Normalize replaces nil collections with empty ones and defaults the status, so that a
// seed built from partial data matches the documented field defaults.
func (p Profile) Normalize() Profile {
	if p.Services == nil {
		p.Services = []Service{}
	}
	if p.PricingPackages == nil {
		p.PricingPackages = []PricingPackage{}
	}
	for i := range p.PricingPackages {
		if p.PricingPackages[i].Inclusions == nil {
			p.PricingPackages[i].Inclusions = []string{}
		}
	}
	p.Specialties = p.Specialties.Canonical()
	if p.CoverageAreas == nil {
		p.CoverageAreas = []string{}
	}
	if p.GalleryImages == nil {
		p.GalleryImages = []string{}
	}
	if p.SocialLinks == nil {
		p.SocialLinks = map[string]string{}
	}
	if !p.ProfileStatus.Valid() {
		p.ProfileStatus = ProfileStatusIncomplete
	}
	return p
}

// Clone returns a deep copy. Snapshots handed to collaborators are clones so later edits
// in the wizard cannot reach them.
func (p Profile) Clone() Profile {
	out := p
	out.Services = slices.Clone(p.Services)
	out.PricingPackages = make([]PricingPackage, len(p.PricingPackages))
	for i, pkg := range p.PricingPackages {
		pkg.Inclusions = slices.Clone(pkg.Inclusions)
		out.PricingPackages[i] = pkg
	}
	if p.PricingPackages == nil {
		out.PricingPackages = nil
	}
	out.Specialties = slices.Clone(p.Specialties)
	out.CoverageAreas = slices.Clone(p.CoverageAreas)
	out.GalleryImages = slices.Clone(p.GalleryImages)
	if p.SocialLinks != nil {
		out.SocialLinks = make(map[string]string, len(p.SocialLinks))
		for k, v := range p.SocialLinks {
			out.SocialLinks[k] = v
		}
	}
	out.Latitude = cloneFloat(p.Latitude)
	out.Longitude = cloneFloat(p.Longitude)
	out.YearsExperience = cloneInt(p.YearsExperience)
	out.TeamSize = cloneInt(p.TeamSize)
	return out
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
