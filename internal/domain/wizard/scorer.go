package wizard

import (
	"math"

	"vendor_listing/internal/domain/entities"
)

// ScoreBreakdown explains a completion percentage.
type ScoreBreakdown struct {
	Earned          int      `json:"earned"`
	Total           int      `json:"total"`
	Percentage      int      `json:"percentage"`
	MissingRequired []string `json:"missing_required"`
	MissingOptional []string `json:"missing_optional"`
}

// Completion maps a draft to 0..100. Required fields earn their weight (2 by default) and
// optional fields theirs (1); the ratio is rounded half away from zero, not truncated.
func Completion(reg *Registry, p entities.Profile) int {
	return Breakdown(reg, p).Percentage
}

func Breakdown(reg *Registry, p entities.Profile) ScoreBreakdown {
	b := ScoreBreakdown{MissingRequired: []string{}, MissingOptional: []string{}}
	if reg == nil {
		return b
	}
	for _, f := range reg.fields {
		b.Total += f.Weight
		if f.Present(p) {
			b.Earned += f.Weight
			continue
		}
		if f.Required {
			b.MissingRequired = append(b.MissingRequired, f.Path)
		} else {
			b.MissingOptional = append(b.MissingOptional, f.Path)
		}
	}
	b.Percentage = percentage(b.Earned, b.Total)
	return b
}

func percentage(earned, total int) int {
	if total <= 0 {
		return 0
	}
	pct := int(math.Round(100 * float64(earned) / float64(total)))
	return max(0, min(100, pct))
}
