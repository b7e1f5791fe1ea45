package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"vendor_listing/internal/adapter/http/validation"
	"vendor_listing/internal/domain/entities"
	"vendor_listing/internal/domain/wizard"
	"vendor_listing/internal/usecase"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/huh"
	"github.com/go-playground/validator/v10"
)

type action string

const (
	actionEdit     action = "edit"
	actionDetails  action = "details"
	actionNext     action = "next"
	actionPrevious action = "previous"
	actionJump     action = "jump"
	actionSave     action = "save"
	actionSubmit   action = "submit"
	actionPreview  action = "preview"
	actionQuit     action = "quit"
)

// Runner drives one wizard session from the terminal.
type Runner struct {
	uc       usecase.IProfileWizardUseCase
	validate *validator.Validate
	renderer *glamour.TermRenderer
	out      io.Writer
}

func NewRunner(uc usecase.IProfileWizardUseCase, out io.Writer) (*Runner, error) {
	v := validator.New()
	if _, err := validation.Register(v); err != nil {
		return nil, err
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return nil, fmt.Errorf("markdown renderer: %w", err)
	}
	return &Runner{uc: uc, validate: v, renderer: renderer, out: out}, nil
}

// Run starts (or resumes) a session and loops on the action menu until the user quits
// or the profile is submitted.
func (r *Runner) Run(ctx context.Context, in usecase.StartInput) error {
	snap, err := r.uc.Start(ctx, in)
	if err != nil {
		return fmt.Errorf("start wizard: %w", err)
	}
	fmt.Fprintln(r.out, bannerStyle.Render("Vendor listing wizard"))

	for {
		r.printHeader(snap)

		act, err := r.chooseAction(snap)
		if errors.Is(err, huh.ErrUserAborted) {
			act = actionQuit
		} else if err != nil {
			return err
		}

		if act == actionQuit {
			return r.quit(ctx, snap)
		}

		next, done, err := r.dispatch(ctx, snap, act)
		switch {
		case errors.Is(err, huh.ErrUserAborted):
			continue
		case errors.Is(err, usecase.ErrSessionNotFound):
			return err
		case err != nil:
			fmt.Fprintln(r.out, warnStyle.Render("! "+err.Error()))
			continue
		}
		snap = next
		if done {
			return r.uc.Discard(ctx, snap.SessionID)
		}
	}
}

func (r *Runner) dispatch(ctx context.Context, snap usecase.WizardSnapshot, act action) (usecase.WizardSnapshot, bool, error) {
	id := snap.SessionID
	switch act {
	case actionEdit:
		s, err := r.editStep(ctx, snap)
		return s, false, err

	case actionDetails:
		patch, err := detailsForm(r.validate, snap.State.Draft)
		if err != nil {
			return snap, false, err
		}
		s, err := r.uc.UpdateDraft(ctx, id, patch)
		return s, false, err

	case actionNext:
		s, advanced, err := r.uc.Next(ctx, id)
		if err == nil && !advanced {
			r.printErrors(s.State.Errors)
		}
		return s, false, err

	case actionPrevious:
		s, err := r.uc.Previous(ctx, id)
		return s, false, err

	case actionJump:
		step, err := r.chooseStep(snap.State.Step)
		if err != nil {
			return snap, false, err
		}
		s, err := r.uc.JumpToStep(ctx, id, step)
		return s, false, err

	case actionSave:
		s, err := r.uc.SaveDraft(ctx, id)
		if err == nil {
			fmt.Fprintln(r.out, okStyle.Render("Draft saved."))
		}
		return s, false, err

	case actionSubmit:
		s, submitted, err := r.uc.Submit(ctx, id)
		if err != nil {
			return s, false, err
		}
		if !submitted {
			fmt.Fprintln(r.out, warnStyle.Render(fmt.Sprintf("Reach %d%% completion to submit (currently %d%%).", s.Threshold, s.Completion)))
			return s, false, nil
		}
		fmt.Fprintln(r.out, okStyle.Render("Submitted for review. We'll let you know once the listing is live."))
		return s, true, nil

	case actionPreview:
		preview, err := r.uc.Preview(ctx, id)
		if err != nil {
			return snap, false, err
		}
		rendered, err := r.renderer.Render(preview.Markdown)
		if err != nil {
			return snap, false, fmt.Errorf("render preview: %w", err)
		}
		fmt.Fprintln(r.out, rendered)
		return snap, false, nil
	}
	return snap, false, fmt.Errorf("unknown action %q", act)
}

func (r *Runner) editStep(ctx context.Context, snap usecase.WizardSnapshot) (usecase.WizardSnapshot, error) {
	id, draft := snap.SessionID, snap.State.Draft

	switch snap.State.Step {
	case wizard.StepIdentity:
		patch, err := identityForm(draft)
		if err != nil {
			return snap, err
		}
		return r.uc.UpdateDraft(ctx, id, patch)

	case wizard.StepOfferings:
		return r.editOfferings(ctx, snap)

	case wizard.StepCoverage:
		patch, err := coverageForm(draft)
		if err != nil {
			return snap, err
		}
		return r.uc.UpdateDraft(ctx, id, patch)

	case wizard.StepPortfolio:
		patch, images, err := portfolioForm(r.validate, draft)
		if err != nil {
			return snap, err
		}
		if len(images) > 0 {
			if snap, err = r.uc.AddGalleryImages(ctx, id, images); err != nil {
				return snap, err
			}
		}
		return r.uc.UpdateDraft(ctx, id, patch)

	case wizard.StepReview:
		fmt.Fprintln(r.out, FormatStepTable(snap.Summaries))
		return snap, nil
	}
	return snap, nil
}

func (r *Runner) editOfferings(ctx context.Context, snap usecase.WizardSnapshot) (usecase.WizardSnapshot, error) {
	id := snap.SessionID
	for {
		var choice string
		err := runForm(huh.NewGroup(huh.NewSelect[string]().
			Title(fmt.Sprintf("Offerings: %d services, %d packages, %d specialties",
				len(snap.State.Draft.Services), len(snap.State.Draft.PricingPackages), len(snap.State.Draft.Specialties))).
			Options(
				huh.NewOption("Add a service", "add-service"),
				huh.NewOption("Remove a service", "remove-service"),
				huh.NewOption("Add a package", "add-package"),
				huh.NewOption("Remove a package", "remove-package"),
				huh.NewOption("Choose specialties", "specialties"),
				huh.NewOption("Done", "done"),
			).
			Value(&choice)))
		if err != nil || choice == "done" {
			return snap, err
		}

		switch choice {
		case "add-service":
			snap, err = r.addService(ctx, snap)
		case "remove-service":
			snap, err = r.removeItem(ctx, snap, serviceOptions(snap.State.Draft.Services), r.uc.RemoveService)
		case "add-package":
			snap, err = r.addPackage(ctx, snap)
		case "remove-package":
			snap, err = r.removeItem(ctx, snap, packageOptions(snap.State.Draft.PricingPackages), r.uc.RemovePackage)
		case "specialties":
			var selected []string
			if selected, err = specialtyForm(snap.State.Draft); err == nil {
				for _, tag := range specialtyToggles(snap.State.Draft.Specialties, selected) {
					if snap, err = r.uc.ToggleSpecialty(ctx, id, tag); err != nil {
						break
					}
				}
			}
		}
		if err != nil && !errors.Is(err, huh.ErrUserAborted) {
			return snap, err
		}
	}
}

func (r *Runner) addService(ctx context.Context, snap usecase.WizardSnapshot) (usecase.WizardSnapshot, error) {
	in, err := serviceForm()
	if err != nil {
		return snap, err
	}
	snap, itemID, err := r.uc.AddService(ctx, snap.SessionID)
	if err != nil {
		return snap, err
	}
	for field, value := range map[entities.ServiceField]string{
		entities.ServiceFieldName:        in.Name,
		entities.ServiceFieldDescription: in.Description,
		entities.ServiceFieldPrice:       in.Price,
	} {
		if snap, err = r.uc.UpdateService(ctx, snap.SessionID, itemID, field, value); err != nil {
			return snap, err
		}
	}
	return snap, nil
}

func (r *Runner) addPackage(ctx context.Context, snap usecase.WizardSnapshot) (usecase.WizardSnapshot, error) {
	in, err := packageForm()
	if err != nil {
		return snap, err
	}
	snap, itemID, err := r.uc.AddPackage(ctx, snap.SessionID)
	if err != nil {
		return snap, err
	}
	for field, value := range map[entities.PackageField]string{
		entities.PackageFieldName:        in.Name,
		entities.PackageFieldDescription: in.Description,
		entities.PackageFieldPrice:       in.Price,
	} {
		if snap, err = r.uc.UpdatePackage(ctx, snap.SessionID, itemID, field, value); err != nil {
			return snap, err
		}
	}
	return r.uc.SetPackageInclusions(ctx, snap.SessionID, itemID, splitList(in.Inclusions))
}

type removeFunc func(ctx context.Context, sessionID, itemID string) (usecase.WizardSnapshot, error)

func (r *Runner) removeItem(ctx context.Context, snap usecase.WizardSnapshot, options []huh.Option[string], remove removeFunc) (usecase.WizardSnapshot, error) {
	if len(options) == 0 {
		fmt.Fprintln(r.out, mutedStyle.Render("Nothing to remove."))
		return snap, nil
	}
	var itemID string
	if err := runForm(huh.NewGroup(huh.NewSelect[string]().Title("Remove which?").Options(options...).Value(&itemID))); err != nil {
		return snap, err
	}
	return remove(ctx, snap.SessionID, itemID)
}

func serviceOptions(services []entities.Service) []huh.Option[string] {
	out := make([]huh.Option[string], 0, len(services))
	for _, s := range services {
		out = append(out, huh.NewOption(itemLabel(s.Name, s.Price), s.ID))
	}
	return out
}

func packageOptions(packages []entities.PricingPackage) []huh.Option[string] {
	out := make([]huh.Option[string], 0, len(packages))
	for _, p := range packages {
		out = append(out, huh.NewOption(itemLabel(p.Name, p.Price), p.ID))
	}
	return out
}

func itemLabel(name, price string) string {
	if strings.TrimSpace(name) == "" {
		name = "(unnamed)"
	}
	if price == "" {
		return name
	}
	return name + " · " + price
}

func (r *Runner) chooseAction(snap usecase.WizardSnapshot) (action, error) {
	var act action
	err := runForm(huh.NewGroup(huh.NewSelect[action]().
		Title("What next?").
		Options(actionOptions(snap)...).
		Value(&act)))
	return act, err
}

// actionOptions lists the menu entries that make sense on the current step.
func actionOptions(snap usecase.WizardSnapshot) []huh.Option[action] {
	step := snap.State.Step
	editLabel := "Edit " + step.String()
	if step == wizard.StepReview {
		editLabel = "Show step summary"
	}

	opts := []huh.Option[action]{huh.NewOption(editLabel, actionEdit)}
	if step < wizard.LastStep {
		opts = append(opts, huh.NewOption("Next step", actionNext))
	}
	if step > wizard.FirstStep {
		opts = append(opts, huh.NewOption("Previous step", actionPrevious))
	}
	opts = append(opts,
		huh.NewOption("Jump to step", actionJump),
		huh.NewOption("Website and business details", actionDetails),
		huh.NewOption("Save draft", actionSave),
	)
	if step == wizard.StepReview {
		opts = append(opts, huh.NewOption("Preview listing", actionPreview))
	}
	if snap.State.Status == entities.ProfileStatusIncomplete {
		opts = append(opts, huh.NewOption("Submit for review", actionSubmit))
	}
	return append(opts, huh.NewOption("Quit", actionQuit))
}

func (r *Runner) chooseStep(current wizard.Step) (wizard.Step, error) {
	step := current
	opts := make([]huh.Option[wizard.Step], 0, int(wizard.LastStep))
	for _, s := range wizard.Steps() {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%d. %s", int(s), s), s))
	}
	err := runForm(huh.NewGroup(huh.NewSelect[wizard.Step]().Title("Jump to").Options(opts...).Value(&step)))
	return step, err
}

func (r *Runner) quit(ctx context.Context, snap usecase.WizardSnapshot) error {
	save := true
	err := runForm(huh.NewGroup(huh.NewConfirm().
		Title("Save your draft before leaving?").
		Affirmative("Save").
		Negative("Discard").
		Value(&save)))
	if err == nil && save {
		if _, err := r.uc.SaveDraft(ctx, snap.SessionID); err != nil {
			return fmt.Errorf("save draft: %w", err)
		}
		fmt.Fprintln(r.out, okStyle.Render("Draft saved. Resume with --profile "+snap.ProfileID))
	}
	return r.uc.Discard(ctx, snap.SessionID)
}

func (r *Runner) printHeader(snap usecase.WizardSnapshot) {
	step := snap.State.Step
	fmt.Fprintf(r.out, "\n%s  %s\n",
		stepStyle.Render(fmt.Sprintf("Step %d of %d: %s", int(step), int(wizard.LastStep), step)),
		mutedStyle.Render(string(snap.State.Status)),
	)
	fmt.Fprintln(r.out, progressBar(snap.Completion, 20))
}

func (r *Runner) printErrors(errs wizard.FieldErrors) {
	paths := make([]string, 0, len(errs))
	for path := range errs {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	for _, path := range paths {
		fmt.Fprintln(r.out, warnStyle.Render("  - "+errs[path]))
	}
}
