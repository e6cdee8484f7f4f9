package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"voyago/internal/models/request_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{
		tripService: tripService,
	}
}

func (t *TripController) SaveHandler(c *gin.Context) {
	var req request_models.SaveTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	ownerID := c.GetString("user_id")
	if ownerID == "" {
		utils.RespondError(c, http.StatusUnauthorized, "Missing authenticated user")
		return
	}

	if err := t.tripService.SaveItinerary(c.Request.Context(), ownerID, req.Itinerary); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trip saved successfully")
}

func (t *TripController) ListHandler(c *gin.Context) {
	ownerID := c.GetString("user_id")
	if ownerID == "" {
		utils.RespondError(c, http.StatusUnauthorized, "Missing authenticated user")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	itineraries, err := t.tripService.ListItineraries(c.Request.Context(), ownerID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itineraries, "Trips fetched successfully")
}
