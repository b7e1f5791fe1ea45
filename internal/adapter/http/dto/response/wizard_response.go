package response

import (
	"maps"

	"vendor_listing/internal/domain/wizard"
	"vendor_listing/internal/usecase"
)

type StepSummaryResponse struct {
	Step    int      `json:"step"`
	Name    string   `json:"name"`
	Valid   bool     `json:"valid"`
	Missing []string `json:"missing"`
}

type BreakdownResponse struct {
	Earned          int      `json:"earned"`
	Total           int      `json:"total"`
	MissingRequired []string `json:"missing_required"`
	MissingOptional []string `json:"missing_optional"`
}

// WizardResponse is returned by every wizard endpoint.
type WizardResponse struct {
	SessionID  string                `json:"session_id"`
	ProfileID  string                `json:"profile_id"`
	Step       int                   `json:"step"`
	StepName   string                `json:"step_name"`
	Status     string                `json:"status"`
	Completion int                   `json:"completion"`
	Threshold  int                   `json:"threshold"`
	CanSubmit  bool                  `json:"can_submit"`
	Errors     map[string]string     `json:"errors"`
	Summaries  []StepSummaryResponse `json:"summaries"`
	Breakdown  BreakdownResponse     `json:"breakdown"`
	Draft      ProfileResponse       `json:"draft"`
}

type NextStepResponse struct {
	Advanced bool           `json:"advanced"`
	Wizard   WizardResponse `json:"wizard"`
}

type SubmitResponse struct {
	Submitted bool           `json:"submitted"`
	Wizard    WizardResponse `json:"wizard"`
}

type ItemCreatedResponse struct {
	ItemID string         `json:"item_id"`
	Wizard WizardResponse `json:"wizard"`
}

type PreviewResponse struct {
	Slug       string          `json:"slug"`
	Title      string          `json:"title"`
	Completion int             `json:"completion"`
	Markdown   string          `json:"markdown"`
	Profile    ProfileResponse `json:"profile"`
}

func FromSnapshot(s usecase.WizardSnapshot) WizardResponse {
	errs := make(map[string]string, len(s.State.Errors))
	maps.Copy(errs, s.State.Errors)

	summaries := make([]StepSummaryResponse, 0, len(s.Summaries))
	for _, sum := range s.Summaries {
		summaries = append(summaries, fromSummary(sum))
	}

	return WizardResponse{
		SessionID:  s.SessionID,
		ProfileID:  s.ProfileID,
		Step:       int(s.State.Step),
		StepName:   s.State.Step.String(),
		Status:     string(s.State.Status),
		Completion: s.Completion,
		Threshold:  s.Threshold,
		CanSubmit:  s.CanSubmit,
		Errors:     errs,
		Summaries:  summaries,
		Breakdown: BreakdownResponse{
			Earned:          s.Breakdown.Earned,
			Total:           s.Breakdown.Total,
			MissingRequired: nonNil(s.Breakdown.MissingRequired),
			MissingOptional: nonNil(s.Breakdown.MissingOptional),
		},
		Draft: FromProfile(s.State.Draft),
	}
}

func FromPreview(p usecase.ListingPreview) PreviewResponse {
	return PreviewResponse{
		Slug:       p.Slug,
		Title:      p.Title,
		Completion: p.Completion,
		Markdown:   p.Markdown,
		Profile:    FromProfile(p.Profile),
	}
}

func fromSummary(s wizard.StepSummary) StepSummaryResponse {
	return StepSummaryResponse{
		Step:    int(s.Step),
		Name:    s.Name,
		Valid:   s.Valid,
		Missing: nonNil(s.Missing),
	}
}

func nonNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
