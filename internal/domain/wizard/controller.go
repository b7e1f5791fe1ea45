package wizard

import (
	"context"
	"strings"

	"vendor_listing/internal/domain/entities"

	"github.com/google/uuid"
)

// DefaultSubmitThreshold is the completion a draft needs before it can enter review.
const DefaultSubmitThreshold = 80

// SaveFunc receives every saved or submitted profile. Its error is passed back to the
// host untouched; the wizard state does not depend on it.
type SaveFunc func(ctx context.Context, p entities.Profile) error

// PreviewFunc receives the draft shown from the review step.
type PreviewFunc func(p entities.Profile)

type Option func(*Controller)

func WithSaveFunc(fn SaveFunc) Option {
	return func(c *Controller) { c.onSave = fn }
}

func WithPreviewFunc(fn PreviewFunc) Option {
	return func(c *Controller) { c.onPreview = fn }
}

// WithIDGenerator overrides the generator for service and package ids.
func WithIDGenerator(fn func() string) Option {
	return func(c *Controller) { c.newID = fn }
}

func WithSubmitThreshold(pct int) Option {
	return func(c *Controller) { c.threshold = pct }
}

// Controller is the only writer of a draft. It is not safe for concurrent use; hosts
// serialize calls per wizard.
type Controller struct {
	registry  *Registry
	state     State
	threshold int
	onSave    SaveFunc
	onPreview PreviewFunc
	newID     func() string
}

// NewController starts at the first step with initial merged over the field defaults.
func NewController(reg *Registry, initial entities.Profile, opts ...Option) *Controller {
	if reg == nil {
		reg = DefaultRegistry()
	}
	c := &Controller{
		registry:  reg,
		threshold: DefaultSubmitThreshold,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.state = initialState(initial, c.newID)
	return c
}

func (c *Controller) State() State {
	s := c.state
	s.Errors = s.Errors.clone()
	s.Draft = s.Draft.Clone()
	return s
}

// Draft returns a deep copy of the draft carrying the current status.
func (c *Controller) Draft() entities.Profile {
	return emitted(c.state)
}

func (c *Controller) Step() Step                     { return c.state.Step }
func (c *Controller) Status() entities.ProfileStatus { return c.state.Status }
func (c *Controller) Errors() FieldErrors            { return c.state.Errors.clone() }
func (c *Controller) Registry() *Registry            { return c.registry }
func (c *Controller) Threshold() int                 { return c.threshold }

func (c *Controller) Completion() int {
	return Completion(c.registry, c.state.Draft)
}

func (c *Controller) Breakdown() ScoreBreakdown {
	return Breakdown(c.registry, c.state.Draft)
}

func (c *Controller) Summaries() []StepSummary {
	return StepSummaries(c.registry, c.state.Draft)
}

// CanSubmit is the submit gate shown to the user.
func (c *Controller) CanSubmit() bool {
	return c.state.Status != entities.ProfileStatusLive && c.Completion() >= c.threshold
}

// Next advances one step when the current step validates. It reports whether it moved.
func (c *Controller) Next() bool {
	next, ok := reduceNext(c.registry, c.state)
	c.state = next
	return ok
}

func (c *Controller) Previous() {
	c.state = reducePrevious(c.state)
}

// JumpToStep moves to any step without validation. Only out-of-range steps are refused.
func (c *Controller) JumpToStep(step Step) bool {
	next, ok := reduceJump(c.state, step)
	c.state = next
	return ok
}

func (c *Controller) Update(p DraftPatch) {
	c.state = reducePatch(c.state, p)
}

// AddService appends a blank service and returns its id.
func (c *Controller) AddService() string {
	id := c.newID()
	d := c.state.Draft
	d.Services = AddItem(d.Services, entities.Service{ID: id})
	c.state = withDraft(c.state, d, PathServices)
	return id
}

func (c *Controller) UpdateService(id string, field entities.ServiceField, value string) bool {
	d := c.state.Draft
	i := IndexByID(d.Services, id)
	if i < 0 {
		return false
	}
	if _, ok := d.Services[i].With(field, value); !ok {
		return false
	}
	d.Services = UpdateItem(d.Services, i, func(s entities.Service) entities.Service {
		s, _ = s.With(field, value)
		return s
	})
	c.state = withDraft(c.state, d, PathServices)
	return true
}

func (c *Controller) RemoveService(id string) bool {
	d := c.state.Draft
	i := IndexByID(d.Services, id)
	if i < 0 {
		return false
	}
	d.Services = RemoveItem(d.Services, i)
	c.state = withDraft(c.state, d)
	return true
}

// AddPackage appends a blank pricing package and returns its id.
func (c *Controller) AddPackage() string {
	id := c.newID()
	d := c.state.Draft
	d.PricingPackages = AddItem(d.PricingPackages, entities.PricingPackage{ID: id, Inclusions: []string{}})
	c.state = withDraft(c.state, d, PathPricingPackages)
	return id
}

func (c *Controller) UpdatePackage(id string, field entities.PackageField, value string) bool {
	d := c.state.Draft
	i := IndexByID(d.PricingPackages, id)
	if i < 0 {
		return false
	}
	if _, ok := d.PricingPackages[i].With(field, value); !ok {
		return false
	}
	d.PricingPackages = UpdateItem(d.PricingPackages, i, func(p entities.PricingPackage) entities.PricingPackage {
		p, _ = p.With(field, value)
		return p
	})
	c.state = withDraft(c.state, d, PathPricingPackages)
	return true
}

func (c *Controller) SetPackageInclusions(id string, inclusions []string) bool {
	d := c.state.Draft
	i := IndexByID(d.PricingPackages, id)
	if i < 0 {
		return false
	}
	d.PricingPackages = UpdateItem(d.PricingPackages, i, func(p entities.PricingPackage) entities.PricingPackage {
		return p.WithInclusions(inclusions)
	})
	c.state = withDraft(c.state, d, PathPricingPackages)
	return true
}

func (c *Controller) RemovePackage(id string) bool {
	d := c.state.Draft
	i := IndexByID(d.PricingPackages, id)
	if i < 0 {
		return false
	}
	d.PricingPackages = RemoveItem(d.PricingPackages, i)
	c.state = withDraft(c.state, d)
	return true
}

// AddGalleryImages appends ready-to-store references in order and returns how many were
// added.
func (c *Controller) AddGalleryImages(refs ...string) int {
	d := c.state.Draft
	before := len(d.GalleryImages)
	d.GalleryImages = AppendImages(d.GalleryImages, refs...)
	added := len(d.GalleryImages) - before
	if added > 0 {
		c.state = withDraft(c.state, d, PathGalleryImages)
	}
	return added
}

// RemoveGalleryImage removes by position. A stale index is a no-op.
func (c *Controller) RemoveGalleryImage(index int) bool {
	d := c.state.Draft
	if index < 0 || index >= len(d.GalleryImages) {
		return false
	}
	d.GalleryImages = RemoveItem(d.GalleryImages, index)
	c.state = withDraft(c.state, d)
	return true
}

// ToggleSpecialty flips membership of a vocabulary tag. Unknown tags are refused.
func (c *Controller) ToggleSpecialty(tag string) bool {
	tag = strings.TrimSpace(tag)
	if !entities.IsSpecialty(tag) {
		return false
	}
	d := c.state.Draft
	d.Specialties = ToggleMember(d.Specialties, tag)
	c.state = withDraft(c.state, d, PathSpecialties)
	return true
}

// SaveDraft hands the draft to the save collaborator. It is always permitted.
func (c *Controller) SaveDraft(ctx context.Context) error {
	p := draftToSave(c.state)
	if c.onSave == nil {
		return nil
	}
	return c.onSave(ctx, p)
}

// SubmitForReview moves the profile to pending_review when completion reaches the
// threshold. Below it nothing changes and no collaborator is called.
func (c *Controller) SubmitForReview(ctx context.Context) (bool, error) {
	next, p, ok := reduceSubmit(c.registry, c.state, c.threshold)
	if !ok {
		return false, nil
	}
	c.state = next
	if c.onSave == nil {
		return true, nil
	}
	return true, c.onSave(ctx, p)
}

// Preview passes a snapshot of the draft to the preview collaborator. It is only offered
// from the review step.
func (c *Controller) Preview() bool {
	if c.state.Step != StepReview {
		return false
	}
	if c.onPreview != nil {
		c.onPreview(emitted(c.state))
	}
	return true
}
