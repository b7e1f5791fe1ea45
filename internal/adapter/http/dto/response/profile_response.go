package response

import (
	"time"

	"vendor_listing/internal/domain/entities"
)

type ServiceResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

type PricingPackageResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Inclusions  []string `json:"inclusions"`
}

type ProfileResponse struct {
	ID                   string                   `json:"id"`
	BusinessName         string                   `json:"business_name"`
	Category             string                   `json:"category"`
	Subcategory          string                   `json:"subcategory"`
	RegistrationID       string                   `json:"registration_id"`
	Description          string                   `json:"description"`
	Services             []ServiceResponse        `json:"services"`
	PricingPackages      []PricingPackageResponse `json:"pricing_packages"`
	Specialties          []string                 `json:"specialties"`
	Address              string                   `json:"address"`
	CoverageAreas        []string                 `json:"coverage_areas"`
	Latitude             *float64                 `json:"latitude"`
	Longitude            *float64                 `json:"longitude"`
	PortfolioDescription string                   `json:"portfolio_description"`
	GalleryImages        []string                 `json:"gallery_images"`
	FeaturedImage        string                   `json:"featured_image"`
	Website              string                   `json:"website"`
	SocialLinks          map[string]string        `json:"social_links"`
	YearsExperience      *int                     `json:"years_experience"`
	TeamSize             *int                     `json:"team_size"`
	ProfileStatus        string                   `json:"profile_status"`
	ReviewNote           string                   `json:"review_note,omitempty"`
	CreatedAt            time.Time                `json:"created_at"`
	UpdatedAt            time.Time                `json:"updated_at"`
}

func FromProfile(p entities.Profile) ProfileResponse {
	p = p.Normalize()
	services := make([]ServiceResponse, 0, len(p.Services))
	for _, s := range p.Services {
		services = append(services, ServiceResponse(s))
	}
	packages := make([]PricingPackageResponse, 0, len(p.PricingPackages))
	for _, pkg := range p.PricingPackages {
		packages = append(packages, PricingPackageResponse(pkg))
	}
	return ProfileResponse{
		ID:                   p.ID,
		BusinessName:         p.BusinessName,
		Category:             p.Category,
		Subcategory:          p.Subcategory,
		RegistrationID:       p.RegistrationID,
		Description:          p.Description,
		Services:             services,
		PricingPackages:      packages,
		Specialties:          []string(p.Specialties),
		Address:              p.Address,
		CoverageAreas:        p.CoverageAreas,
		Latitude:             p.Latitude,
		Longitude:            p.Longitude,
		PortfolioDescription: p.PortfolioDescription,
		GalleryImages:        p.GalleryImages,
		FeaturedImage:        p.FeaturedImage,
		Website:              p.Website,
		SocialLinks:          p.SocialLinks,
		YearsExperience:      p.YearsExperience,
		TeamSize:             p.TeamSize,
		ProfileStatus:        string(p.ProfileStatus),
		ReviewNote:           p.ReviewNote,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}

func FromProfiles(ps []entities.Profile) []ProfileResponse {
	out := make([]ProfileResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProfile(p))
	}
	return out
}
