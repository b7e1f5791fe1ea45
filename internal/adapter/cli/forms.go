package cli

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strconv"
	"strings"

	"vendor_listing/internal/domain/entities"
	"vendor_listing/internal/domain/wizard"

	"github.com/charmbracelet/huh"
	"github.com/go-playground/validator/v10"
)

var errMalformedLink = errors.New("links must look like name=https://example.com")

func runForm(groups ...*huh.Group) error {
	return huh.NewForm(groups...).WithTheme(listingTheme()).Run()
}

func identityForm(d entities.Profile) (wizard.DraftPatch, error) {
	name, category, sub, reg, desc := d.BusinessName, d.Category, d.Subcategory, d.RegistrationID, d.Description

	err := runForm(huh.NewGroup(
		huh.NewInput().Title("Business name").CharLimit(120).Value(&name),
		huh.NewSelect[string]().Title("Category").Options(huh.NewOptions(entities.Categories...)...).Value(&category),
		huh.NewInput().Title("Subcategory").Description("Optional").Value(&sub),
		huh.NewInput().Title("Registration ID").Description("Optional").Value(&reg),
		huh.NewText().Title("Description").Description("What couples should know about you").Value(&desc),
	))
	if err != nil {
		return wizard.DraftPatch{}, err
	}
	return wizard.DraftPatch{
		BusinessName:   &name,
		Category:       &category,
		Subcategory:    &sub,
		RegistrationID: &reg,
		Description:    &desc,
	}, nil
}

// specialtyForm returns the tags the user left selected.
func specialtyForm(d entities.Profile) ([]string, error) {
	selected := slices.Clone([]string(d.Specialties))
	err := runForm(huh.NewGroup(
		huh.NewMultiSelect[string]().
			Title("Specialties").
			Options(huh.NewOptions(entities.Specialties...)...).
			Value(&selected),
	))
	return selected, err
}

type serviceInput struct {
	Name, Description, Price string
}

func serviceForm() (serviceInput, error) {
	var in serviceInput
	err := runForm(huh.NewGroup(
		huh.NewInput().Title("Service name").Value(&in.Name).Validate(requiredText),
		huh.NewInput().Title("Description").Value(&in.Description),
		huh.NewInput().Title("Price").Placeholder("from $1,200").Value(&in.Price),
	))
	return in, err
}

type packageInput struct {
	Name, Description, Price, Inclusions string
}

func packageForm() (packageInput, error) {
	var in packageInput
	err := runForm(huh.NewGroup(
		huh.NewInput().Title("Package name").Value(&in.Name).Validate(requiredText),
		huh.NewInput().Title("Description").Value(&in.Description),
		huh.NewInput().Title("Price").Value(&in.Price),
		huh.NewText().Title("Inclusions").Description("One per line").Value(&in.Inclusions),
	))
	return in, err
}

func coverageForm(d entities.Profile) (wizard.DraftPatch, error) {
	address := d.Address
	areas := strings.Join(d.CoverageAreas, ", ")
	lat, lng := formatFloat(d.Latitude), formatFloat(d.Longitude)

	err := runForm(huh.NewGroup(
		huh.NewInput().Title("Address").Value(&address),
		huh.NewInput().Title("Coverage areas").Description("Comma separated").Value(&areas),
		huh.NewInput().Title("Latitude").Description("Optional").Value(&lat).Validate(validFloat),
		huh.NewInput().Title("Longitude").Description("Optional").Value(&lng).Validate(validFloat),
	))
	if err != nil {
		return wizard.DraftPatch{}, err
	}
	return coveragePatch(address, areas, lat, lng)
}

func coveragePatch(address, areas, lat, lng string) (wizard.DraftPatch, error) {
	list := splitList(areas)
	patch := wizard.DraftPatch{Address: &address, CoverageAreas: &list}

	latV, err := parseOptionalFloat(lat)
	if err != nil {
		return wizard.DraftPatch{}, fmt.Errorf("latitude: %w", err)
	}
	lngV, err := parseOptionalFloat(lng)
	if err != nil {
		return wizard.DraftPatch{}, fmt.Errorf("longitude: %w", err)
	}
	if latV == nil {
		patch.Unset = append(patch.Unset, wizard.PathLatitude)
	}
	if lngV == nil {
		patch.Unset = append(patch.Unset, wizard.PathLongitude)
	}
	patch.Latitude, patch.Longitude = latV, lngV
	return patch, nil
}

// portfolioForm returns the draft patch and the image references to append.
func portfolioForm(v *validator.Validate, d entities.Profile) (wizard.DraftPatch, []string, error) {
	desc := d.PortfolioDescription
	featured := d.FeaturedImage
	var images string

	err := runForm(huh.NewGroup(
		huh.NewText().Title("Portfolio description").Value(&desc),
		huh.NewText().
			Title("Add gallery images").
			Description(fmt.Sprintf("%d already uploaded. One URL per line", len(d.GalleryImages))).
			Value(&images).
			Validate(func(s string) error { return validateImageRefs(v, splitList(s)) }),
		huh.NewInput().
			Title("Featured image").
			Value(&featured).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return nil
				}
				return validateImageRefs(v, []string{s})
			}),
	))
	if err != nil {
		return wizard.DraftPatch{}, nil, err
	}
	return wizard.DraftPatch{PortfolioDescription: &desc, FeaturedImage: &featured}, splitList(images), nil
}

// detailsForm edits the fields that belong to no step.
func detailsForm(v *validator.Validate, d entities.Profile) (wizard.DraftPatch, error) {
	website := d.Website
	years, team := formatInt(d.YearsExperience), formatInt(d.TeamSize)
	links := formatLinks(d.SocialLinks)

	err := runForm(huh.NewGroup(
		huh.NewInput().Title("Website").Value(&website).Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return nil
			}
			return v.Var(s, "http_url")
		}),
		huh.NewInput().Title("Years in business").Value(&years).Validate(validInt),
		huh.NewInput().Title("Team size").Value(&team).Validate(validInt),
		huh.NewInput().Title("Social links").Description("name=url, comma separated").Value(&links).Validate(func(s string) error {
			_, err := parseLinks(s)
			return err
		}),
	))
	if err != nil {
		return wizard.DraftPatch{}, err
	}
	return detailsPatch(website, years, team, links)
}

func detailsPatch(website, years, team, links string) (wizard.DraftPatch, error) {
	patch := wizard.DraftPatch{Website: &website}

	yearsV, err := parseOptionalInt(years)
	if err != nil {
		return wizard.DraftPatch{}, fmt.Errorf("years in business: %w", err)
	}
	teamV, err := parseOptionalInt(team)
	if err != nil {
		return wizard.DraftPatch{}, fmt.Errorf("team size: %w", err)
	}
	if yearsV == nil {
		patch.Unset = append(patch.Unset, wizard.PathYearsExperience)
	}
	if teamV == nil {
		patch.Unset = append(patch.Unset, wizard.PathTeamSize)
	}
	patch.YearsExperience, patch.TeamSize = yearsV, teamV

	linkMap, err := parseLinks(links)
	if err != nil {
		return wizard.DraftPatch{}, err
	}
	patch.SocialLinks = linkMap
	return patch, nil
}

// specialtyToggles returns the tags to toggle so that current becomes selected.
func specialtyToggles(current, selected []string) []string {
	var out []string
	for _, tag := range current {
		if !slices.Contains(selected, tag) {
			out = append(out, tag)
		}
	}
	for _, tag := range selected {
		if !slices.Contains(current, tag) && !slices.Contains(out, tag) {
			out = append(out, tag)
		}
	}
	return out
}

func validateImageRefs(v *validator.Validate, refs []string) error {
	for _, ref := range refs {
		if err := v.Var(ref, "image_ref"); err != nil {
			return fmt.Errorf("%q is not an image URL", ref)
		}
	}
	return nil
}

// splitList splits on commas and newlines, dropping blanks.
func splitList(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == '\n' })
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseOptionalFloat(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%q is not a number", s)
	}
	return &f, nil
}

func parseOptionalInt(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%q is not a whole number", s)
	}
	return &n, nil
}

func parseLinks(s string) (map[string]string, error) {
	out := map[string]string{}
	for _, pair := range splitList(s) {
		name, url, ok := strings.Cut(pair, "=")
		name, url = strings.TrimSpace(name), strings.TrimSpace(url)
		if !ok || name == "" || url == "" {
			return nil, errMalformedLink
		}
		out[name] = url
	}
	return out, nil
}

func formatLinks(links map[string]string) string {
	names := make([]string, 0, len(links))
	for name := range links {
		names = append(names, name)
	}
	sort.Strings(names)
	pairs := make([]string, 0, len(names))
	for _, name := range names {
		pairs = append(pairs, name+"="+links[name])
	}
	return strings.Join(pairs, ", ")
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func requiredText(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("required")
	}
	return nil
}

func validFloat(s string) error {
	_, err := parseOptionalFloat(s)
	return err
}

func validInt(s string) error {
	_, err := parseOptionalInt(s)
	return err
}
