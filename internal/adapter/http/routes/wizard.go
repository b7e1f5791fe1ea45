package routes

import (
	"net/http"

	"vendor_listing/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPing     = "/ping"
	PathWizards  = "/wizards"
	PathProfiles = "/profiles"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addWizardRoutes(rg *gin.RouterGroup, h *handlers.ProfileWizardHandler) {
	wizards := rg.Group(PathWizards)
	{
		wizards.POST("", h.StartWizard)
		wizards.GET("/:session_id", h.GetWizard)
		wizards.DELETE("/:session_id", h.DiscardWizard)
		wizards.PATCH("/:session_id/draft", h.UpdateDraft)

		// Navigation
		wizards.POST("/:session_id/next", h.NextStep)
		wizards.POST("/:session_id/previous", h.PreviousStep)
		wizards.PUT("/:session_id/step", h.JumpToStep)

		// Collections
		wizards.POST("/:session_id/services", h.AddService)
		wizards.PATCH("/:session_id/services/:item_id", h.UpdateService)
		wizards.DELETE("/:session_id/services/:item_id", h.RemoveService)
		wizards.POST("/:session_id/packages", h.AddPackage)
		wizards.PATCH("/:session_id/packages/:item_id", h.UpdatePackage)
		wizards.PUT("/:session_id/packages/:item_id/inclusions", h.SetPackageInclusions)
		wizards.DELETE("/:session_id/packages/:item_id", h.RemovePackage)
		wizards.POST("/:session_id/gallery", h.AddGalleryImages)
		wizards.DELETE("/:session_id/gallery/:index", h.RemoveGalleryImage)
		wizards.POST("/:session_id/specialties/toggle", h.ToggleSpecialty)

		// Lifecycle
		wizards.POST("/:session_id/save", h.SaveDraft)
		wizards.POST("/:session_id/submit", h.Submit)
		wizards.GET("/:session_id/preview", h.Preview)
	}
}

func addProfileRoutes(rg *gin.RouterGroup, h *handlers.ProfileReviewHandler) {
	profiles := rg.Group(PathProfiles)
	{
		profiles.GET("", h.ListProfiles)
		profiles.GET("/:profile_id", h.GetProfile)
		profiles.PATCH("/:profile_id/approve", h.ApproveProfile)
		profiles.PATCH("/:profile_id/reject", h.RejectProfile)
	}
}
