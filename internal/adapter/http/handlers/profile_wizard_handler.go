package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	request "vendor_listing/internal/adapter/http/dto/request"
	response "vendor_listing/internal/adapter/http/dto/response"
	"vendor_listing/internal/adapter/http/validation"
	"vendor_listing/internal/domain/entities"
	"vendor_listing/internal/domain/wizard"
	"vendor_listing/internal/infrastructure/logging"
	"vendor_listing/internal/usecase"
	"vendor_listing/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidWizardPayload = pkg.NewDomainErrorSimple("INVALID_WIZARD_INPUT", "Invalid wizard payload", http.StatusBadRequest)
	errStepIncomplete       = pkg.NewDomainErrorSimple("STEP_INCOMPLETE", "Current step has missing required fields", http.StatusUnprocessableEntity)
)

// ProfileWizardHandler exposes wizard sessions over HTTP.
//
// Blocked navigation and a gated submit are normal outcomes: next answers 422 with the
// field errors, submit answers 200 with submitted=false.

type ProfileWizardHandler struct {
	usecase    usecase.IProfileWizardUseCase
	translator *validation.Translator
	logger     *zap.Logger
}

func NewProfileWizardHandler(uc usecase.IProfileWizardUseCase, tr *validation.Translator, logger *zap.Logger) *ProfileWizardHandler {
	return &ProfileWizardHandler{usecase: uc, translator: tr, logger: logging.OrNop(logger)}
}

// StartWizard godoc
// @Summary      Start a wizard session
// @Description  Opens a session from an optional seed draft or resumes a stored profile.
// @Tags         wizards
// @Accept       json
// @Produce      json
// @Param        body  body      request.StartWizardRequest  false  "Seed"
// @Success      201   {object}  response.WizardResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /wizards [post]
func (h *ProfileWizardHandler) StartWizard(c *gin.Context) {
	var payload request.StartWizardRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		h.badRequest(c, err)
		return
	}

	snap, err := h.usecase.Start(c.Request.Context(), usecase.StartInput{
		ProfileID: payload.ResolveProfileID(),
		Initial:   payload.SeedProfile(),
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromSnapshot(snap))
}

// GetWizard godoc
// @Summary  Get a wizard session
// @Tags     wizards
// @Produce  json
// @Param    session_id  path      string  true  "Session ID"
// @Success  200         {object}  response.WizardResponse
// @Failure  404         {object}  pkg.HTTPError
// @Router   /wizards/{session_id} [get]
func (h *ProfileWizardHandler) GetWizard(c *gin.Context) {
	h.snapshot(c, func() (usecase.WizardSnapshot, error) {
		return h.usecase.Get(c.Request.Context(), c.Param("session_id"))
	})
}

// DiscardWizard godoc
// @Summary  Discard a wizard session without saving
// @Tags     wizards
// @Param    session_id  path  string  true  "Session ID"
// @Success  204
// @Failure  404  {object}  pkg.HTTPError
// @Router   /wizards/{session_id} [delete]
func (h *ProfileWizardHandler) DiscardWizard(c *gin.Context) {
	if err := h.usecase.Discard(c.Request.Context(), c.Param("session_id")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateDraft godoc
// @Summary  Patch draft fields
// @Tags     wizards
// @Accept   json
// @Produce  json
// @Param    session_id  path      string                true  "Session ID"
// @Param    body        body      request.DraftRequest  true  "Fields to change"
// @Success  200         {object}  response.WizardResponse
// @Failure  400         {object}  pkg.HTTPError
// @Router   /wizards/{session_id}/draft [patch]
func (h *ProfileWizardHandler) UpdateDraft(c *gin.Context) {
	var payload request.DraftRequest
	if !h.bind(c, &payload) {
		return
	}
	h.snapshot(c, func() (usecase.WizardSnapshot, error) {
		return h.usecase.UpdateDraft(c.Request.Context(), c.Param("session_id"), payload.ToPatch())
	})
}

// NextStep godoc
// @Summary  Validate the current step and advance
// @Tags     wizards
// @Produce  json
// @Param    session_id  path      string  true  "Session ID"
// @Success  200         {object}  response.NextStepResponse
// @Failure  422         {object}  pkg.HTTPError
// @Router   /wizards/{session_id}/next [post]
func (h *ProfileWizardHandler) NextStep(c *gin.Context) {
	snap, advanced, err := h.usecase.Next(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	if !advanced {
		appErr := errStepIncomplete.WithDetails(map[string]string(snap.State.Errors))
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.NextStepResponse{Advanced: true, Wizard: response.FromSnapshot(snap)})
}

// PreviousStep godoc
// @Summary  Go back one step
// @Tags     wizards
// @Produce  json
// @Param    session_id  path      string  true  "Session ID"
// @Success  200         {object}  response.WizardResponse
// @Router   /wizards/{session_id}/previous [post]
func (h *ProfileWizardHandler) PreviousStep(c *gin.Context) {
	h.snapshot(c, func() (usecase.WizardSnapshot, error) {
		return h.usecase.Previous(c.Request.Context(), c.Param("session_id"))
	})
}

// JumpToStep godoc
// @Summary  Jump to any step without validation
// @Tags     wizards
// @Accept   json
// @Produce  json
// @Param    session_id  path      string                   true  "Session ID"
// @Param    body        body      request.JumpStepRequest  true  "Target step"
// @Success  200         {object}  response.WizardResponse
// @Failure  400         {object}  pkg.HTTPError
// @Router   /wizards/{session_id}/step [put]
func (h *ProfileWizardHandler) JumpToStep(c *gin.Context) {
	var payload request.JumpStepRequest
	if !h.bind(c, &payload) {
		return
	}
	h.snapshot(c, func() (usecase.WizardSnapshot, error) {
		return h.usecase.JumpToStep(c.Request.Context(), c.Param("session_id"), wizard.Step(payload.Step))
	})
}

// AddService godoc
// @Summary  Append a blank service
// @Tags     offerings
// @Produce  json
// @Param    session_id  path      string  true  "Session ID"
// @Success  201         {object}  response.ItemCreatedResponse
// @Router   /wizards/{session_id}/services [post]
func (h *ProfileWizardHandler) AddService(c *gin.Context) {
	snap, id, err := h.usecase.AddService(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.ItemCreatedResponse{ItemID: id, Wizard: response.FromSnapshot(snap)})
}

// UpdateService godoc
// @Summary  Edit one field of a service
// @Tags     offerings
// @Accept   json
// @Produce  json
// @Param    session_id  path      string                        true  "Session ID"
// @Param    item_id     path      string                        true  "Service ID"
// @Param    body        body      request.UpdateServiceRequest  true  "Field and value"
// @Success  200         {object}  response.WizardResponse
// @Failure  404         {object}  pkg.HTTPError
// @Router   /wizards/{session_id}/services/{item_id} [patch]
func (h *ProfileWizardHandler) UpdateService(c *gin.Context) {
	var payload request.UpdateServiceRequest
	if !h.bind(c, &payload) {
		return
	}
	h.snapshot(c, func() (usecase.WizardSnapshot, error) {
		return h.usecase.UpdateService(c.Request.Context(), c.Param("session_id"), c.Param("item_id"),
			entities.ServiceField(payload.Field), payload.Value)
	})
}

// RemoveService godoc
// @Summary  Remove a service
// @Tags     offerings
// @Produce  json
// @Param    session_id  path      string  true  "Session ID"
// @Param    item_id     path      string  true  "Service ID"
// @Success  200         {object}  response.WizardResponse
// @Failure  404         {object}  pkg.HTTPError
// @Router   /wizards/{session_id}/services/{item_id} [delete]
func (h *ProfileWizardHandler) RemoveService(c *gin.Context) {
	h.snapshot(c, func() (usecase.WizardSnapshot, error) {
		return h.usecase.RemoveService(c.Request.Context(), c.Param("session_id"), c.Param("item_id"))
	})
}

// AddPackage godoc
// @Summary  Append a blank pricing package
// @Tags     offerings
// @Produce  json
// @Param    session_id  path      string  true  "Session ID"
// @Success  201         {object}  response.ItemCreatedResponse
// @Router   /wizards/{session_id}/packages [post]
func (h *ProfileWizardHandler) AddPackage(c *gin.Context) {
	snap, id, err := h.usecase.AddPackage(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.ItemCreatedResponse{ItemID: id, Wizard: response.FromSnapshot(snap)})
}

// UpdatePackage godoc
// @Summary  Edit one field of a pricing package
// @Tags     offerings
// @Accept   json
// @Produce  json
// @Param    session_id  path      string                        true  "Session ID"
// @Param    item_id     path      string                        true  "Package ID"
// @Param    body        body      request.UpdatePackageRequest  true  "Field and value"
// @Success  200         {object}  response.WizardResponse
// @Router   /wizards/{session_id}/packages/{item_id} [patch]
func (h *ProfileWizardHandler) UpdatePackage(c *gin.Context) {
	var payload request.UpdatePackageRequest
	if !h.bind(c, &payload) {
		return
	}
	h.snapshot(c, func() (usecase.WizardSnapshot, error) {
		return h.usecase.UpdatePackage(c.Request.Context(), c.Param("session_id"), c.Param("item_id"),
			entities.PackageField(payload.Field), payload.Value)
	})
}

// SetPackageInclusions godoc
// @Summary  Replace the inclusions of a pricing package
// @Tags     offerings
// @Accept   json
// @Produce  json
// @Param    session_id  path      string                            true  "Session ID"
// @Param    item_id     path      string                            true  "Package ID"
// @Param    body        body      request.PackageInclusionsRequest  true  "Inclusions"
// @Success  200         {object}  response.WizardResponse
// @Router   /wizards/{session_id}/packages/{item_id}/inclusions [put]
func (h *ProfileWizardHandler) SetPackageInclusions(c *gin.Context) {
	var payload request.PackageInclusionsRequest
	if !h.bind(c, &payload) {
		return
	}
	h.snapshot(c, func() (usecase.WizardSnapshot, error) {
		return h.usecase.SetPackageInclusions(c.Request.Context(), c.Param("session_id"), c.Param("item_id"), payload.Inclusions)
	})
}

// RemovePackage godoc
// @Summary  Remove a pricing package
// @Tags     offerings
// @Produce  json
// @Param    session_id  path      string  true  "Session ID"
// @Param    item_id     path      string  true  "Package ID"
// @Success  200         {object}  response.WizardResponse
// @Router   /wizards/{session_id}/packages/{item_id} [delete]
func (h *ProfileWizardHandler) RemovePackage(c *gin.Context) {
	h.snapshot(c, func() (usecase.WizardSnapshot, error) {
		return h.usecase.RemovePackage(c.Request.Context(), c.Param("session_id"), c.Param("item_id"))
	})
}

// AddGalleryImages godoc
// @Summary  Append uploaded image references to the gallery
// @Tags     portfolio
// @Accept   json
// @Produce  json
// @Param    session_id  path      string                        true  "Session ID"
// @Param    body        body      request.GalleryImagesRequest  true  "Image references"
// @Success  200         {object}  response.WizardResponse
// @Router   /wizards/{session_id}/gallery [post]
func (h *ProfileWizardHandler) AddGalleryImages(c *gin.Context) {
	var payload request.GalleryImagesRequest
	if !h.bind(c, &payload) {
		return
	}
	h.snapshot(c, func() (usecase.WizardSnapshot, error) {
		return h.usecase.AddGalleryImages(c.Request.Context(), c.Param("session_id"), payload.Images)
	})
}

// RemoveGalleryImage godoc
// @Summary      Remove a gallery image by position
// @Description  A stale index leaves the gallery unchanged.
// @Tags         portfolio
// @Produce      json
// @Param        session_id  path      string  true  "Session ID"
// @Param        index       path      int     true  "Image position"
// @Success      200         {object}  response.WizardResponse
// @Router       /wizards/{session_id}/gallery/{index} [delete]
func (h *ProfileWizardHandler) RemoveGalleryImage(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}
	h.snapshot(c, func() (usecase.WizardSnapshot, error) {
		return h.usecase.RemoveGalleryImage(c.Request.Context(), c.Param("session_id"), index)
	})
}

// ToggleSpecialty godoc
// @Summary  Toggle a specialty tag
// @Tags     offerings
// @Accept   json
// @Produce  json
// @Param    session_id  path      string                          true  "Session ID"
// @Param    body        body      request.ToggleSpecialtyRequest  true  "Specialty"
// @Success  200         {object}  response.WizardResponse
// @Router   /wizards/{session_id}/specialties/toggle [post]
func (h *ProfileWizardHandler) ToggleSpecialty(c *gin.Context) {
	var payload request.ToggleSpecialtyRequest
	if !h.bind(c, &payload) {
		return
	}
	h.snapshot(c, func() (usecase.WizardSnapshot, error) {
		return h.usecase.ToggleSpecialty(c.Request.Context(), c.Param("session_id"), payload.Specialty)
	})
}

// SaveDraft godoc
// @Summary  Save the draft
// @Tags     lifecycle
// @Produce  json
// @Param    session_id  path      string  true  "Session ID"
// @Success  200         {object}  response.WizardResponse
// @Failure  500         {object}  pkg.HTTPError
// @Router   /wizards/{session_id}/save [post]
func (h *ProfileWizardHandler) SaveDraft(c *gin.Context) {
	h.snapshot(c, func() (usecase.WizardSnapshot, error) {
		return h.usecase.SaveDraft(c.Request.Context(), c.Param("session_id"))
	})
}

// Submit godoc
// @Summary      Submit the profile for review
// @Description  Below the completion threshold nothing changes and submitted is false.
// @Tags         lifecycle
// @Produce      json
// @Param        session_id  path      string  true  "Session ID"
// @Success      200         {object}  response.SubmitResponse
// @Router       /wizards/{session_id}/submit [post]
func (h *ProfileWizardHandler) Submit(c *gin.Context) {
	snap, submitted, err := h.usecase.Submit(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SubmitResponse{Submitted: submitted, Wizard: response.FromSnapshot(snap)})
}

// Preview godoc
// @Summary  Preview the listing from the review step
// @Tags     lifecycle
// @Produce  json
// @Param    session_id  path      string  true  "Session ID"
// @Success  200         {object}  response.PreviewResponse
// @Failure  409         {object}  pkg.HTTPError
// @Router   /wizards/{session_id}/preview [get]
func (h *ProfileWizardHandler) Preview(c *gin.Context) {
	preview, err := h.usecase.Preview(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPreview(preview))
}

func (h *ProfileWizardHandler) bind(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		h.badRequest(c, err)
		return false
	}
	return true
}

func (h *ProfileWizardHandler) badRequest(c *gin.Context, err error) {
	appErr := errInvalidWizardPayload
	if details := h.translator.Details(err); len(details) > 0 {
		appErr = appErr.WithDetails(details)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func (h *ProfileWizardHandler) snapshot(c *gin.Context, call func() (usecase.WizardSnapshot, error)) {
	snap, err := call()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSnapshot(snap))
}

func (h *ProfileWizardHandler) fail(c *gin.Context, err error) {
	appErr := mapWizardError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.logger.Error("[wizard][handler] request failed",
			zap.String("path", c.FullPath()),
			zap.String("session_id", c.Param("session_id")),
			zap.Error(err),
		)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapWizardError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID), errors.Is(err, usecase.ErrInvalidStep), errors.Is(err, usecase.ErrInvalidItemField):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownSpecialty):
		return pkg.NewDomainErrorSimple("UNKNOWN_SPECIALTY", "Specialty is not in the vocabulary", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("WIZARD_NOT_FOUND", "Wizard session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProfileNotFound):
		return pkg.NewDomainErrorSimple("PROFILE_NOT_FOUND", "Profile not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProfileChanged):
		return pkg.NewDomainErrorSimple("PROFILE_STATUS_CHANGED", "The profile was reviewed since this wizard started; start a new session", http.StatusConflict)
	case errors.Is(err, usecase.ErrPreviewUnavailable):
		return pkg.NewDomainErrorSimple("PREVIEW_UNAVAILABLE", "Preview is only available from the review step", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
