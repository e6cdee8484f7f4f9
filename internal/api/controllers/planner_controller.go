package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"voyago/internal/models/request_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type PlannerController struct {
	plannerService services.PlannerServiceInterface
}

func NewPlannerController(plannerService services.PlannerServiceInterface) *PlannerController {
	return &PlannerController{
		plannerService: plannerService,
	}
}

func (p *PlannerController) GenerateHandler(c *gin.Context) {
	var req request_models.TripInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	itinerary, err := p.plannerService.GenerateItinerary(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary generated successfully")
}

func (p *PlannerController) RefineHandler(c *gin.Context) {
	var req request_models.RefineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	itinerary, err := p.plannerService.RefineItinerary(c.Request.Context(), req.Itinerary, req.Request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary refined successfully")
}

// RescheduleHandler never fails on model trouble: the service returns the
// caller's activities unchanged in that case.
func (p *PlannerController) RescheduleHandler(c *gin.Context) {
	var req request_models.RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	activities := p.plannerService.RecalculateSchedule(c.Request.Context(), req.Activities, req.PreviousLocation)
	utils.RespondSuccess(c, activities, "Schedule recalculated")
}

func (p *PlannerController) ChatHandler(c *gin.Context) {
	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	reply, err := p.plannerService.Chat(c.Request.Context(), req.History, req.Message)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"reply": reply}, "Chat reply generated")
}
