package usecase

import (
	"fmt"
	"slices"
	"strings"

	"vendor_listing/internal/domain/entities"

	"github.com/gosimple/slug"
)

// ListingPreview is how a draft would look once published.
type ListingPreview struct {
	Slug       string
	Title      string
	Completion int
	Markdown   string
	Profile    entities.Profile
}

// BuildListingPreview renders p as a markdown listing page. Empty sections are left out.
func BuildListingPreview(p entities.Profile, completion int) ListingPreview {
	title := strings.TrimSpace(p.BusinessName)
	if title == "" {
		title = "Untitled listing"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)

	meta := make([]string, 0, 3)
	if p.Category != "" {
		category := p.Category
		if p.Subcategory != "" {
			category += " / " + p.Subcategory
		}
		meta = append(meta, category)
	}
	if p.YearsExperience != nil {
		meta = append(meta, fmt.Sprintf("%d years in business", *p.YearsExperience))
	}
	if p.TeamSize != nil {
		meta = append(meta, fmt.Sprintf("team of %d", *p.TeamSize))
	}
	if len(meta) > 0 {
		fmt.Fprintf(&b, "_%s_\n\n", strings.Join(meta, " · "))
	}
	if p.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", p.Description)
	}

	if len(p.Specialties) > 0 {
		fmt.Fprintf(&b, "**Specialties:** %s\n\n", strings.Join(p.Specialties, ", "))
	}

	if len(p.Services) > 0 {
		b.WriteString("## Services\n\n")
		for _, s := range p.Services {
			b.WriteString(offeringLine(s.Name, s.Price, s.Description))
		}
		b.WriteString("\n")
	}

	if len(p.PricingPackages) > 0 {
		b.WriteString("## Packages\n\n")
		for _, pkg := range p.PricingPackages {
			b.WriteString(offeringLine(pkg.Name, pkg.Price, pkg.Description))
			for _, inc := range pkg.Inclusions {
				fmt.Fprintf(&b, "  - %s\n", inc)
			}
		}
		b.WriteString("\n")
	}

	if p.Address != "" || len(p.CoverageAreas) > 0 {
		b.WriteString("## Where we work\n\n")
		if p.Address != "" {
			fmt.Fprintf(&b, "%s\n\n", p.Address)
		}
		if len(p.CoverageAreas) > 0 {
			fmt.Fprintf(&b, "Serving %s.\n\n", strings.Join(p.CoverageAreas, ", "))
		}
	}

	if p.PortfolioDescription != "" || len(p.GalleryImages) > 0 {
		b.WriteString("## Portfolio\n\n")
		if p.PortfolioDescription != "" {
			fmt.Fprintf(&b, "%s\n\n", p.PortfolioDescription)
		}
		for i, ref := range galleryOrder(p) {
			fmt.Fprintf(&b, "![%s photo %d](%s)\n", title, i+1, ref)
		}
		if len(p.GalleryImages) > 0 {
			b.WriteString("\n")
		}
	}

	if p.Website != "" || len(p.SocialLinks) > 0 {
		b.WriteString("## Contact\n\n")
		if p.Website != "" {
			fmt.Fprintf(&b, "- Website: %s\n", p.Website)
		}
		for _, network := range sortedKeys(p.SocialLinks) {
			fmt.Fprintf(&b, "- %s: %s\n", network, p.SocialLinks[network])
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "---\nProfile completion: %d%%\n", completion)

	return ListingPreview{
		Slug:       slug.Make(title),
		Title:      title,
		Completion: completion,
		Markdown:   b.String(),
		Profile:    p,
	}
}

func offeringLine(name, price, description string) string {
	if name == "" {
		name = "Unnamed"
	}
	line := "- **" + name + "**"
	if price != "" {
		line += " (" + price + ")"
	}
	if description != "" {
		line += ": " + description
	}
	return line + "\n"
}

// galleryOrder puts the featured image first when it is part of the gallery.
func galleryOrder(p entities.Profile) []string {
	i := slices.Index(p.GalleryImages, p.FeaturedImage)
	if p.FeaturedImage == "" || i <= 0 {
		return p.GalleryImages
	}
	out := make([]string, 0, len(p.GalleryImages))
	out = append(out, p.GalleryImages[i])
	out = append(out, p.GalleryImages[:i]...)
	return append(out, p.GalleryImages[i+1:]...)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
