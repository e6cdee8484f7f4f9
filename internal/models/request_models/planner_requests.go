package request_models

import "voyago/internal/models/response_models"

type RefineRequest struct {
	Itinerary response_models.Itinerary `json:"itinerary" binding:"required"`
	Request   string                    `json:"request" binding:"required"`
}

type RescheduleRequest struct {
	Activities       []response_models.Activity `json:"activities" binding:"required"`
	PreviousLocation string                     `json:"previous_location"`
}

type ChatRequest struct {
	History []response_models.ChatMessage `json:"history"`
	Message string                        `json:"message" binding:"required"`
}

type AnalyzeContentRequest struct {
	Content string `json:"content" binding:"required"`
}

type SaveTripRequest struct {
	Itinerary response_models.Itinerary `json:"itinerary" binding:"required"`
}
