package request_models

import "voyago/internal/models/response_models"

// TripInput carries the user's trip parameters. Immutable once submitted to
// generation; the logistics block is always re-attached onto the AI output.
type TripInput struct {
	Destination string                     `json:"destination" binding:"required"`
	StartDate   string                     `json:"start_date" binding:"required"`
	Duration    int                        `json:"duration" binding:"required,min=1"`
	BudgetTier  string                     `json:"budget_tier"`
	Travelers   int                        `json:"travelers" binding:"required,min=1"`
	Interests   []string                   `json:"interests"`
	MustVisit   []string                   `json:"must_visit"`
	Logistics   *response_models.Logistics `json:"logistics"`
}
