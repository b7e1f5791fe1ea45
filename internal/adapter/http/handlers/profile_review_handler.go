package handlers

import (
	"errors"
	"net/http"

	request "vendor_listing/internal/adapter/http/dto/request"
	response "vendor_listing/internal/adapter/http/dto/response"
	"vendor_listing/internal/domain/entities"
	"vendor_listing/internal/infrastructure/logging"
	"vendor_listing/internal/usecase"
	"vendor_listing/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errInvalidReviewPayload = pkg.NewDomainErrorSimple("INVALID_REVIEW_INPUT", "Invalid review payload", http.StatusBadRequest)

// ProfileReviewHandler serves the reviewer queue.

type ProfileReviewHandler struct {
	usecase usecase.IProfileReviewUseCase
	logger  *zap.Logger
}

func NewProfileReviewHandler(uc usecase.IProfileReviewUseCase, logger *zap.Logger) *ProfileReviewHandler {
	return &ProfileReviewHandler{usecase: uc, logger: logging.OrNop(logger)}
}

// ListProfiles godoc
// @Summary  List profiles by status
// @Tags     profiles
// @Produce  json
// @Param    status  query     string  false  "incomplete, pending_review or live (default pending_review)"
// @Success  200     {array}   response.ProfileResponse
// @Failure  400     {object}  pkg.HTTPError
// @Router   /profiles [get]
func (h *ProfileReviewHandler) ListProfiles(c *gin.Context) {
	profiles, err := h.usecase.ListByStatus(c.Request.Context(), entities.ProfileStatus(c.Query("status")))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromProfiles(profiles))
}

// GetProfile godoc
// @Summary  Get a stored profile
// @Tags     profiles
// @Produce  json
// @Param    profile_id  path      string  true  "Profile ID"
// @Success  200         {object}  response.ProfileResponse
// @Failure  404         {object}  pkg.HTTPError
// @Router   /profiles/{profile_id} [get]
func (h *ProfileReviewHandler) GetProfile(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("profile_id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromProfile(p))
}

// ApproveProfile godoc
// @Summary  Publish a profile awaiting review
// @Tags     profiles
// @Produce  json
// @Param    profile_id  path      string  true  "Profile ID"
// @Success  200         {object}  response.ProfileResponse
// @Failure  409         {object}  pkg.HTTPError
// @Router   /profiles/{profile_id}/approve [patch]
func (h *ProfileReviewHandler) ApproveProfile(c *gin.Context) {
	p, err := h.usecase.Approve(c.Request.Context(), c.Param("profile_id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromProfile(p))
}

// RejectProfile godoc
// @Summary  Send a profile back to the vendor
// @Tags     profiles
// @Accept   json
// @Produce  json
// @Param    profile_id  path      string                        true  "Profile ID"
// @Param    body        body      request.RejectProfileRequest  true  "Reviewer note"
// @Success  200         {object}  response.ProfileResponse
// @Failure  409         {object}  pkg.HTTPError
// @Router   /profiles/{profile_id}/reject [patch]
func (h *ProfileReviewHandler) RejectProfile(c *gin.Context) {
	var payload request.RejectProfileRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReviewPayload.HTTPStatus, errInvalidReviewPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.Reject(c.Request.Context(), c.Param("profile_id"), payload.Note)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromProfile(p))
}

func (h *ProfileReviewHandler) fail(c *gin.Context, err error) {
	appErr := mapReviewError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.logger.Error("[profile][handler] request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapReviewError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProfileID), errors.Is(err, usecase.ErrInvalidProfileStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProfileNotFound):
		return pkg.NewDomainErrorSimple("PROFILE_NOT_FOUND", "Profile not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Profile is not awaiting review", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
