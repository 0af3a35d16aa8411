package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"lakbay/internal/models/db_models"
	"lakbay/internal/services"
	"lakbay/pkg/utils"
)

type HotelController struct {
	hotelService services.HotelServiceInterface
}

func NewHotelController(hotelService services.HotelServiceInterface) *HotelController {
	return &HotelController{
		hotelService: hotelService,
	}
}

type indexHotelRequest struct {
	HotelName   string  `json:"hotel_name" binding:"required"`
	City        string  `json:"city" binding:"required"`
	Address     string  `json:"address"`
	PricePHP    int     `json:"price_php"`
	Rating      float64 `json:"rating"`
	Description string  `json:"description"`
}

// SearchHotels godoc
// @Summary Search hotel candidates
// @Description Rank known hotels in a city against a free-text query
// @Tags Hotels
// @Produce json
// @Param city query string true "City name"
// @Param q query string true "Free-text query"
// @Success 200 {object} utils.APIResponse
// @Router /hotels/search [get]
func (h *HotelController) SearchHotels(c *gin.Context) {
	city := c.Query("city")
	query := c.Query("q")
	if city == "" || query == "" {
		utils.RespondError(c, http.StatusBadRequest, "city and q are required")
		return
	}

	hotels, err := h.hotelService.FindCandidates(c.Request.Context(), city, query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, hotels, "Hotels fetched successfully")
}

// IndexHotel godoc
// @Summary Index a hotel
// @Description Embed and store a hotel so it becomes searchable
// @Tags Hotels
// @Accept json
// @Produce json
// @Param request body indexHotelRequest true "Hotel payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /hotels [post]
func (h *HotelController) IndexHotel(c *gin.Context) {
	var req indexHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	hotel := db_models.HotelEmbedding{
		HotelName:   req.HotelName,
		City:        req.City,
		Address:     req.Address,
		PricePHP:    req.PricePHP,
		Rating:      req.Rating,
		Description: req.Description,
	}

	if err := h.hotelService.IndexHotel(c.Request.Context(), hotel); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Hotel indexed successfully")
}
