package cli

import (
	"fmt"
	"strings"

	"vendor_listing/internal/domain/entities"
	"vendor_listing/internal/domain/wizard"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// FormatCompletionTable lists every registered field with its weight and whether the
// profile fills it, followed by the weighted total.
func FormatCompletionTable(reg *wizard.Registry, p entities.Profile) string {
	fields := reg.Fields()
	if len(fields) == 0 {
		return "No fields registered"
	}

	t := table.NewWriter()
	t.AppendHeader(table.Row{"Field", "Step", "Kind", "Weight", "Filled"})
	for _, f := range fields {
		kind := "optional"
		if f.Required {
			kind = "required"
		}
		filled := "no"
		if f.Present(p) {
			filled = "yes"
		}
		t.AppendRow(table.Row{f.Label, f.Step.String(), kind, f.Weight, filled})
	}

	b := wizard.Breakdown(reg, p)
	t.AppendFooter(table.Row{"", "", "", fmt.Sprintf("%d/%d", b.Earned, b.Total), fmt.Sprintf("%d%%", b.Percentage)})

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft},
		{Number: 3, Align: text.AlignCenter},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignCenter},
	})
	return t.Render()
}

// FormatStepTable renders the per-step summary shown on the review step.
func FormatStepTable(summaries []wizard.StepSummary) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"#", "Step", "Complete", "Missing"})
	for _, s := range summaries {
		complete := "yes"
		if !s.Valid {
			complete = "no"
		}
		t.AppendRow(table.Row{int(s.Step), s.Name, complete, strings.Join(s.Missing, ", ")})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 3, Align: text.AlignCenter},
	})
	return t.Render()
}
