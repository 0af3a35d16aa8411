package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"lakbay/internal/models/request_models"
	"lakbay/internal/models/response_models"
	"lakbay/internal/services"
	"lakbay/internal/validation"
	"lakbay/pkg/utils"
)

type ValidationController struct {
	tripService  services.TripServiceInterface
	routeService services.RouteServiceInterface
}

func NewValidationController(
	tripService services.TripServiceInterface,
	routeService services.RouteServiceInterface,
) *ValidationController {
	return &ValidationController{
		tripService:  tripService,
		routeService: routeService,
	}
}

// ValidateItinerary godoc
// @Summary Validate an itinerary
// @Description Run the hotel-consistency and transport checks over a raw itinerary
// @Tags Validation
// @Accept json
// @Produce json
// @Param request body request_models.ValidateItineraryRequest true "Itinerary and confirmed hotels"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /validation/itinerary [post]
func (v *ValidationController) ValidateItinerary(c *gin.Context) {
	var req request_models.ValidateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result := v.tripService.ValidateItinerary(req)

	utils.RespondSuccess(c, result, "Itinerary validated")
}

// SanitizeText godoc
// @Summary Sanitize free-text input
// @Description Strip prompt-injection patterns and normalize traveler-supplied text
// @Tags Validation
// @Accept json
// @Produce json
// @Param request body request_models.SanitizeRequest true "Raw text"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /validation/sanitize [post]
func (v *ValidationController) SanitizeText(c *gin.Context) {
	var req request_models.SanitizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result := validation.SanitizeTravelInput(req.Text)

	utils.RespondSuccess(c, response_models.SanitizeResponse{
		Sanitized:       result.Sanitized,
		HasInjection:    result.HasInjection,
		RemovedPatterns: result.RemovedPatterns,
		Warnings:        result.Warnings,
	}, "Text sanitized")
}

// AssessRoute godoc
// @Summary Classify route convenience
// @Description Bucket a city-pair route by how practical ground transport is
// @Tags Validation
// @Accept json
// @Produce json
// @Param request body request_models.RouteConvenienceRequest true "Route description"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /validation/route [post]
func (v *ValidationController) AssessRoute(c *gin.Context) {
	var req request_models.RouteConvenienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	assessment, err := v.routeService.AssessRoute(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, assessment, "Route assessed")
}
