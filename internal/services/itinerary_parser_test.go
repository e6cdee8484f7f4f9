package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyago/internal/models/response_models"
	"voyago/pkg/utils"
)

func TestParseItinerary_ValidPayload(t *testing.T) {
	payload := `{
		"destination": "Lisbon",
		"title": "Lisbon Highlights",
		"total_budget": 420,
		"currency": "EUR",
		"days": [
			{"day": 1, "date": "2026-05-01", "activities": [
				{"id": "a1", "time": "09:00", "title": "Castle", "type": "culture", "duration_minutes": 90}
			]}
		]
	}`

	itinerary, err := ParseItinerary(payload)
	require.NoError(t, err)
	assert.Equal(t, "Lisbon", itinerary.Destination)
	assert.Len(t, itinerary.Days, 1)
	assert.Equal(t, "a1", itinerary.Days[0].Activities[0].ID)
	assert.NotNil(t, itinerary.Wishlist)
}

func TestParseItinerary_InvalidJSON(t *testing.T) {
	_, err := ParseItinerary("{not json")
	assert.True(t, errors.Is(err, utils.ErrMalformedResponse))
}

func TestParseItinerary_MissingDestination(t *testing.T) {
	_, err := ParseItinerary(`{"days": [{"day": 1, "activities": []}]}`)
	assert.True(t, errors.Is(err, utils.ErrMalformedResponse))
}

func TestParseItinerary_MissingDays(t *testing.T) {
	_, err := ParseItinerary(`{"destination": "Lisbon", "days": []}`)
	assert.True(t, errors.Is(err, utils.ErrMalformedResponse))
}

func TestParseItinerary_NormalizationDefaults(t *testing.T) {
	payload := `{
		"destination": "Porto",
		"days": [
			{"activities": [
				{"title": "Ribeira walk", "feedback": "like"},
				{"id": "keep-me", "title": "Port tasting", "type": "food"}
			]},
			{"activities": []}
		]
	}`

	itinerary, err := ParseItinerary(payload)
	require.NoError(t, err)

	first := itinerary.Days[0].Activities[0]
	assert.NotEmpty(t, first.ID, "missing ids are generated")
	assert.Equal(t, response_models.FeedbackNeutral, first.Feedback, "model-supplied feedback is discarded")
	assert.Equal(t, response_models.ActivityTypeCustom, first.Type)

	assert.Equal(t, "keep-me", itinerary.Days[0].Activities[1].ID)
	assert.Equal(t, response_models.ActivityTypeFood, itinerary.Days[0].Activities[1].Type)

	assert.Equal(t, 1, itinerary.Days[0].Day)
	assert.Equal(t, 2, itinerary.Days[1].Day)
}

func TestParseScheduleUpdates(t *testing.T) {
	updates, err := ParseScheduleUpdates(`[{"id": "a1", "time": "10:30", "transport_to_next": "Walk: 5 min (Free)"}]`)
	require.NoError(t, err)
	require.Len(t, updates, 1)
	assert.Equal(t, "a1", updates[0].ID)
	assert.Equal(t, "10:30", updates[0].Time)
}

func TestParseScheduleUpdates_Empty(t *testing.T) {
	_, err := ParseScheduleUpdates(`[]`)
	assert.True(t, errors.Is(err, utils.ErrMalformedResponse))
}

func TestParseWishlistAnalysis(t *testing.T) {
	analysis, err := ParseWishlistAnalysis(`{"possible_name": "Time Out Market", "summary": "Food hall in Lisbon.", "tags": ["food"]}`)
	require.NoError(t, err)
	assert.Equal(t, "Time Out Market", analysis.PossibleName)
	assert.Equal(t, []string{"food"}, analysis.Tags)
}

func TestParseWishlistAnalysis_EmptyAnalysisRejected(t *testing.T) {
	_, err := ParseWishlistAnalysis(`{"possible_name": "", "summary": "", "tags": null}`)
	assert.True(t, errors.Is(err, utils.ErrMalformedResponse))
}

func TestParseWishlistAnalysis_NilTagsNormalized(t *testing.T) {
	analysis, err := ParseWishlistAnalysis(`{"possible_name": "Somewhere", "summary": "A place."}`)
	require.NoError(t, err)
	assert.NotNil(t, analysis.Tags)
}
