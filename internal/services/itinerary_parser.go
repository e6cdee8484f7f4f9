package services

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"voyago/internal/models/response_models"
	"voyago/pkg/utils"
)

// ParseItinerary converts sanitized completion output into the itinerary
// model. Fails with ErrMalformedResponse when the text is not valid JSON or
// lacks the required top-level fields. Business content is not validated:
// implausible coordinates or dead links pass through untouched.
func ParseItinerary(sanitized string) (*response_models.Itinerary, error) {
	var itinerary response_models.Itinerary
	if err := json.Unmarshal([]byte(sanitized), &itinerary); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrMalformedResponse, err)
	}

	if itinerary.Destination == "" {
		return nil, fmt.Errorf("%w: missing destination", utils.ErrMalformedResponse)
	}
	if len(itinerary.Days) == 0 {
		return nil, fmt.Errorf("%w: missing days", utils.ErrMalformedResponse)
	}

	normalizeItinerary(&itinerary)
	return &itinerary, nil
}

// normalizeItinerary applies the parse-time defaults unconditionally: every
// activity gets a stable id if the model omitted one, feedback is forced to
// neutral (it is never meaningful coming from the completion service), and
// day ordinals are filled sequentially when absent.
func normalizeItinerary(itinerary *response_models.Itinerary) {
	for d := range itinerary.Days {
		day := &itinerary.Days[d]
		if day.Day == 0 {
			day.Day = d + 1
		}
		for a := range day.Activities {
			normalizeActivity(&day.Activities[a])
		}
	}
	if itinerary.Wishlist == nil {
		itinerary.Wishlist = []response_models.WishlistItem{}
	}
}

func normalizeActivity(activity *response_models.Activity) {
	if activity.ID == "" {
		activity.ID = uuid.NewString()
	}
	activity.Feedback = response_models.FeedbackNeutral
	if activity.Type == "" {
		activity.Type = response_models.ActivityTypeCustom
	}
}

// ParseScheduleUpdates parses the narrow reschedule payload: an array of
// per-activity time/transport updates.
func ParseScheduleUpdates(sanitized string) ([]response_models.ScheduleUpdate, error) {
	var updates []response_models.ScheduleUpdate
	if err := json.Unmarshal([]byte(sanitized), &updates); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrMalformedResponse, err)
	}
	if len(updates) == 0 {
		return nil, fmt.Errorf("%w: empty schedule update", utils.ErrMalformedResponse)
	}
	return updates, nil
}

// ParseWishlistAnalysis parses the small structured analysis payload.
func ParseWishlistAnalysis(sanitized string) (*response_models.WishlistAnalysis, error) {
	var analysis response_models.WishlistAnalysis
	if err := json.Unmarshal([]byte(sanitized), &analysis); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrMalformedResponse, err)
	}
	if analysis.PossibleName == "" && analysis.Summary == "" {
		return nil, fmt.Errorf("%w: empty analysis", utils.ErrMalformedResponse)
	}
	if analysis.Tags == nil {
		analysis.Tags = []string{}
	}
	return &analysis, nil
}
