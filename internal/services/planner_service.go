package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/pkg/utils"
)

type PlannerServiceInterface interface {
	GenerateItinerary(ctx context.Context, input request_models.TripInput) (*response_models.Itinerary, error)
	RefineItinerary(ctx context.Context, current response_models.Itinerary, userRequest string) (*response_models.Itinerary, error)
	RecalculateSchedule(ctx context.Context, activities []response_models.Activity, previousLocation string) []response_models.Activity
	AnalyzeExternalContent(ctx context.Context, content string) response_models.WishlistItem
	Chat(ctx context.Context, history []response_models.ChatMessage, message string) (string, error)
}

// PlannerService sequences Prompt Builder -> completion call -> sanitizer ->
// parser -> reconciliation for each public operation. It keeps no state
// between calls; every operation is pure given its inputs and the completion
// client.
//
// The service does not serialize concurrent operations against the same
// itinerary: if a caller runs refine and reschedule concurrently, the
// later-completing result wins on write-back. Callers that care must
// serialize themselves.
type PlannerService struct {
	completion utils.CompletionClientInterface
}

func NewPlannerService(completion utils.CompletionClientInterface) PlannerServiceInterface {
	return &PlannerService{
		completion: completion,
	}
}

func (p *PlannerService) GenerateItinerary(ctx context.Context, input request_models.TripInput) (*response_models.Itinerary, error) {
	if strings.TrimSpace(input.Destination) == "" || input.Duration < 1 {
		return nil, utils.ErrInvalidInput
	}

	prompt, opts := BuildGeneratePrompt(input)
	raw, err := p.completion.Complete(ctx, prompt, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrNoResponse, err)
	}
	if strings.TrimSpace(raw) == "" {
		return nil, utils.ErrNoResponse
	}

	itinerary, err := ParseItinerary(ExtractJSONPayload(raw))
	if err != nil {
		log.Printf("Generate parse failure, raw response: %s", raw)
		return nil, err
	}

	itinerary.ID = uuid.NewString()
	if itinerary.Title == "" {
		itinerary.Title = fmt.Sprintf("Trip to %s", itinerary.Destination)
	}
	itinerary.Logistics = input.Logistics
	itinerary.Wishlist = []response_models.WishlistItem{}
	itinerary.Settings = response_models.TripSettings{
		StartDate:    input.StartDate,
		DurationDays: input.Duration,
		Travelers:    input.Travelers,
		BudgetTier:   input.BudgetTier,
		Interests:    input.Interests,
		MustVisit:    input.MustVisit,
	}
	fillMissingDates(itinerary, input.StartDate)

	return itinerary, nil
}

func (p *PlannerService) RefineItinerary(ctx context.Context, current response_models.Itinerary, userRequest string) (*response_models.Itinerary, error) {
	if strings.TrimSpace(userRequest) == "" {
		return nil, utils.ErrInvalidInput
	}

	prompt, opts := BuildRefinePrompt(current, userRequest)
	raw, err := p.completion.Complete(ctx, prompt, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrNoResponse, err)
	}
	if strings.TrimSpace(raw) == "" {
		return nil, utils.ErrNoResponse
	}

	candidate, err := ParseItinerary(ExtractJSONPayload(raw))
	if err != nil {
		log.Printf("Refine parse failure, raw response: %s", raw)
		return nil, err
	}

	merged := ReconcileItineraries(&current, *candidate)
	return &merged, nil
}

// RecalculateSchedule fails open: on any failure in the pipeline the original
// activity list is returned unchanged. Rescheduling is a convenience invoked
// from drag-reorder, not a correctness-critical path.
func (p *PlannerService) RecalculateSchedule(ctx context.Context, activities []response_models.Activity, previousLocation string) []response_models.Activity {
	if len(activities) == 0 {
		return activities
	}

	prompt, opts := BuildReschedulePrompt(activities, previousLocation)
	raw, err := p.completion.Complete(ctx, prompt, opts)
	if err != nil || strings.TrimSpace(raw) == "" {
		log.Printf("Reschedule call failed, keeping original schedule: %v", err)
		return activities
	}

	updates, err := ParseScheduleUpdates(ExtractJSONPayload(raw))
	if err != nil {
		log.Printf("Reschedule parse failed, keeping original schedule: %v", err)
		return activities
	}

	byID := make(map[string]response_models.ScheduleUpdate, len(updates))
	for _, u := range updates {
		byID[u.ID] = u
	}

	merged := make([]response_models.Activity, len(activities))
	for i, activity := range activities {
		if update, ok := byID[activity.ID]; ok {
			if update.Time != "" {
				activity.Time = update.Time
			}
			activity.TransportToNext = update.TransportToNext
		}
		merged[i] = activity
	}
	return merged
}

// AnalyzeExternalContent never fails: any error degrades to a placeholder
// analysis, because this is triggered from a casual paste action.
func (p *PlannerService) AnalyzeExternalContent(ctx context.Context, content string) response_models.WishlistItem {
	item := response_models.WishlistItem{
		ID:      uuid.NewString(),
		Content: content,
	}

	prompt, opts := BuildAnalyzePrompt(content)
	raw, err := p.completion.Complete(ctx, prompt, opts)
	if err != nil || strings.TrimSpace(raw) == "" {
		log.Printf("Wishlist analysis call failed: %v", err)
		item.Analysis = placeholderAnalysis()
		return item
	}

	analysis, err := ParseWishlistAnalysis(ExtractJSONPayload(raw))
	if err != nil {
		log.Printf("Wishlist analysis parse failed: %v", err)
		item.Analysis = placeholderAnalysis()
		return item
	}

	item.Analysis = analysis
	return item
}

func (p *PlannerService) Chat(ctx context.Context, history []response_models.ChatMessage, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", utils.ErrInvalidInput
	}

	prompt, opts := BuildChatPrompt(history, message)
	raw, err := p.completion.Complete(ctx, prompt, opts)
	if err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrNoResponse, err)
	}
	if strings.TrimSpace(raw) == "" {
		return "", utils.ErrNoResponse
	}
	return strings.TrimSpace(raw), nil
}

func placeholderAnalysis() *response_models.WishlistAnalysis {
	return &response_models.WishlistAnalysis{
		PossibleName: "Unknown Spot",
		Summary:      "Could not analyze",
		Tags:         []string{},
	}
}

func fillMissingDates(itinerary *response_models.Itinerary, startDate string) {
	if !utils.ValidISODate(startDate) {
		return
	}
	for d := range itinerary.Days {
		if itinerary.Days[d].Date == "" {
			itinerary.Days[d].Date = utils.AddDaysISO(startDate, d)
		}
	}
}
