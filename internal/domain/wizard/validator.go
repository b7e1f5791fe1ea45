package wizard

import (
	"maps"

	"vendor_listing/internal/domain/entities"
)

// FieldErrors maps a field path to a message. Only key presence is meaningful to callers.
type FieldErrors map[string]string

func (e FieldErrors) Has(path string) bool {
	_, ok := e[path]
	return ok
}

func (e FieldErrors) clone() FieldErrors {
	out := make(FieldErrors, len(e))
	maps.Copy(out, e)
	return out
}

// ValidateStep returns the required fields of step whose presence predicate fails.
// The review step owns no fields and is always valid.
func ValidateStep(reg *Registry, step Step, p entities.Profile) FieldErrors {
	errs := FieldErrors{}
	if reg == nil || step == StepReview {
		return errs
	}
	for _, f := range reg.fields {
		if f.Step != step || !f.Required {
			continue
		}
		if !f.Present(p) {
			errs[f.Path] = f.Label + " is required"
		}
	}
	return errs
}

// StepSummary is what the review step shows for each prior step.
type StepSummary struct {
	Step    Step     `json:"step"`
	Name    string   `json:"name"`
	Valid   bool     `json:"valid"`
	Missing []string `json:"missing"`
}

func StepSummaries(reg *Registry, p entities.Profile) []StepSummary {
	out := make([]StepSummary, 0, int(LastStep))
	allValid := true
	for _, s := range Steps() {
		sum := StepSummary{Step: s, Name: s.String(), Missing: []string{}}
		if s == StepReview {
			sum.Valid = allValid
			out = append(out, sum)
			continue
		}
		for _, f := range reg.Fields() {
			if f.Step == s && f.Required && !f.Present(p) {
				sum.Missing = append(sum.Missing, f.Path)
			}
		}
		sum.Valid = len(sum.Missing) == 0
		allValid = allValid && sum.Valid
		out = append(out, sum)
	}
	return out
}
