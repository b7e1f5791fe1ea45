package request

import (
	"strings"

	"vendor_listing/internal/domain/entities"
	"vendor_listing/internal/domain/wizard"
)

// DraftRequest is a partial draft update. Omitted fields are left untouched, an empty string
// clears a text field, and "unset" clears the nullable numbers it names.
type DraftRequest struct {
	BusinessName         *string           `json:"business_name" binding:"omitempty,max=120"`
	Category             *string           `json:"category" binding:"omitempty,max=80"`
	Subcategory          *string           `json:"subcategory" binding:"omitempty,max=80"`
	RegistrationID       *string           `json:"registration_id" binding:"omitempty,max=64"`
	Description          *string           `json:"description" binding:"omitempty,max=4000"`
	Address              *string           `json:"address" binding:"omitempty,max=300"`
	CoverageAreas        *[]string         `json:"coverage_areas" binding:"omitempty,max=50,dive,max=120"`
	Latitude             *float64          `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude            *float64          `json:"longitude" binding:"omitempty,min=-180,max=180"`
	PortfolioDescription *string           `json:"portfolio_description" binding:"omitempty,max=4000"`
	FeaturedImage        *string           `json:"featured_image" binding:"omitempty,image_ref_or_empty"`
	Website              *string           `json:"website" binding:"omitempty,http_url_or_empty"`
	SocialLinks          map[string]string `json:"social_links" binding:"omitempty,max=20"`
	YearsExperience      *int              `json:"years_experience" binding:"omitempty,min=0,max=200"`
	TeamSize             *int              `json:"team_size" binding:"omitempty,min=0,max=10000"`
	Unset                []string          `json:"unset" binding:"omitempty,dive,oneof=latitude longitude years_experience team_size"`
}

func (r DraftRequest) ToPatch() wizard.DraftPatch {
	return wizard.DraftPatch{
		BusinessName:         r.BusinessName,
		Category:             r.Category,
		Subcategory:          r.Subcategory,
		RegistrationID:       r.RegistrationID,
		Description:          r.Description,
		Address:              r.Address,
		CoverageAreas:        r.CoverageAreas,
		Latitude:             r.Latitude,
		Longitude:            r.Longitude,
		PortfolioDescription: r.PortfolioDescription,
		FeaturedImage:        r.FeaturedImage,
		Website:              r.Website,
		SocialLinks:          r.SocialLinks,
		YearsExperience:      r.YearsExperience,
		TeamSize:             r.TeamSize,
		Unset:                r.Unset,
	}
}

// StartWizardRequest opens a session. profile_id resumes a stored profile and wins over draft.
type StartWizardRequest struct {
	ProfileID string        `json:"profile_id" binding:"omitempty,max=64"`
	Draft     *DraftRequest `json:"draft"`
}

// SeedProfile builds the initial draft; nil when no draft was sent.
func (r StartWizardRequest) SeedProfile() *entities.Profile {
	if r.Draft == nil {
		return nil
	}
	p := entities.Profile{}
	patch := r.Draft.ToPatch()
	assign := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	assign(&p.BusinessName, patch.BusinessName)
	assign(&p.Category, patch.Category)
	assign(&p.Subcategory, patch.Subcategory)
	assign(&p.RegistrationID, patch.RegistrationID)
	assign(&p.Description, patch.Description)
	assign(&p.Address, patch.Address)
	assign(&p.PortfolioDescription, patch.PortfolioDescription)
	assign(&p.FeaturedImage, patch.FeaturedImage)
	assign(&p.Website, patch.Website)
	if patch.CoverageAreas != nil {
		p.CoverageAreas = *patch.CoverageAreas
	}
	p.SocialLinks = patch.SocialLinks
	p.Latitude = patch.Latitude
	p.Longitude = patch.Longitude
	p.YearsExperience = patch.YearsExperience
	p.TeamSize = patch.TeamSize
	return &p
}

func (r StartWizardRequest) ResolveProfileID() string {
	return strings.TrimSpace(r.ProfileID)
}

type JumpStepRequest struct {
	Step int `json:"step" binding:"required,wizard_step"`
}

type UpdateServiceRequest struct {
	Field string `json:"field" binding:"required,oneof=name description price"`
	Value string `json:"value" binding:"max=1000"`
}

type UpdatePackageRequest struct {
	Field string `json:"field" binding:"required,oneof=name description price"`
	Value string `json:"value" binding:"max=1000"`
}

type PackageInclusionsRequest struct {
	Inclusions []string `json:"inclusions" binding:"required,max=50,dive,max=200"`
}

type GalleryImagesRequest struct {
	Images []string `json:"images" binding:"required,min=1,max=50,dive,image_ref"`
}

type ToggleSpecialtyRequest struct {
	Specialty string `json:"specialty" binding:"required,specialty"`
}

type RejectProfileRequest struct {
	Note string `json:"note" binding:"required,max=1000"`
}
