package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/pkg/utils"
)

// fakeCompletionClient returns canned responses and records what it was
// asked, so tests can assert on the options each operation declares.
type fakeCompletionClient struct {
	response string
	err      error

	prompts []string
	opts    []utils.CompletionOptions
}

func (f *fakeCompletionClient) Complete(ctx context.Context, prompt string, opts utils.CompletionOptions) (string, error) {
	f.prompts = append(f.prompts, prompt)
	f.opts = append(f.opts, opts)
	return f.response, f.err
}

const lisbonResponse = "```json\n" + `{
	"destination": "Lisbon",
	"title": "Lisbon in Two Days",
	"total_budget": 260,
	"currency": "EUR",
	"days": [
		{"day": 1, "activities": [
			{"id": "a1", "time": "09:00", "title": "Castle Tour", "type": "culture", "duration_minutes": 120},
			{"id": "a2", "time": "12:30", "title": "Time Out Market", "type": "food", "duration_minutes": 90}
		]},
		{"day": 2, "activities": [
			{"id": "a3", "time": "10:00", "title": "Belem Tower", "type": "culture", "duration_minutes": 60}
		]}
	]
}` + "\n```"

func lisbonInput() request_models.TripInput {
	return request_models.TripInput{
		Destination: "Lisbon",
		StartDate:   "2026-05-01",
		Duration:    2,
		Travelers:   2,
		BudgetTier:  "mid-range",
		Logistics: &response_models.Logistics{
			Arrival: response_models.TravelLeg{Mode: "flight", Location: "LIS", Time: "08:00"},
		},
	}
}

func TestGenerateItinerary(t *testing.T) {
	fake := &fakeCompletionClient{response: lisbonResponse}
	planner := NewPlannerService(fake)

	itinerary, err := planner.GenerateItinerary(context.Background(), lisbonInput())
	require.NoError(t, err)

	assert.NotEmpty(t, itinerary.ID, "a fresh itinerary id is assigned server-side")
	assert.Equal(t, "Lisbon", itinerary.Destination)
	assert.Len(t, itinerary.Days, 2)
	assert.Equal(t, "2026-05-01", itinerary.Days[0].Date, "missing dates are filled from the start date")
	assert.Equal(t, "2026-05-02", itinerary.Days[1].Date)
	assert.NotNil(t, itinerary.Logistics, "user logistics are attached to the output")
	assert.Equal(t, 2, itinerary.Settings.DurationDays)
	assert.Empty(t, itinerary.Wishlist)

	require.Len(t, fake.opts, 1)
	assert.ElementsMatch(t,
		[]string{utils.CapabilityPlaceLookup, utils.CapabilityWebSearch},
		fake.opts[0].Capabilities)
}

func TestGenerateItinerary_InvalidInput(t *testing.T) {
	planner := NewPlannerService(&fakeCompletionClient{})

	_, err := planner.GenerateItinerary(context.Background(), request_models.TripInput{Destination: " "})
	assert.True(t, errors.Is(err, utils.ErrInvalidInput))
}

func TestGenerateItinerary_NoResponse(t *testing.T) {
	planner := NewPlannerService(&fakeCompletionClient{err: errors.New("rate limited")})

	_, err := planner.GenerateItinerary(context.Background(), lisbonInput())
	assert.True(t, errors.Is(err, utils.ErrNoResponse))
}

func TestGenerateItinerary_EmptyResponse(t *testing.T) {
	planner := NewPlannerService(&fakeCompletionClient{response: "   "})

	_, err := planner.GenerateItinerary(context.Background(), lisbonInput())
	assert.True(t, errors.Is(err, utils.ErrNoResponse))
}

func TestGenerateItinerary_MalformedResponse(t *testing.T) {
	planner := NewPlannerService(&fakeCompletionClient{response: "Sorry, I cannot plan this trip."})

	_, err := planner.GenerateItinerary(context.Background(), lisbonInput())
	assert.True(t, errors.Is(err, utils.ErrMalformedResponse))
}

func TestRefineItinerary_PreservesUserState(t *testing.T) {
	current := response_models.Itinerary{
		ID:          "itin-1",
		Destination: "Lisbon",
		Settings:    response_models.TripSettings{StartDate: "2026-05-01", DurationDays: 2},
		Days: []response_models.DayPlan{{
			Day: 1,
			Activities: []response_models.Activity{
				{ID: "a1", Time: "09:00", Title: "Castle Tour", Location: "Sao Jorge Castle", Locked: true, Notes: "pre-booked"},
				{ID: "a2", Time: "12:30", Title: "Time Out Market", Feedback: response_models.FeedbackLike},
			},
		}},
	}

	// The model moved the locked activity and renamed the other one.
	fake := &fakeCompletionClient{response: `{
		"destination": "Lisbon",
		"days": [
			{"day": 1, "activities": [
				{"id": "a1", "time": "15:00", "title": "Castle Tour", "location": "Wrong place"},
				{"id": "a2", "time": "12:30", "title": "Mercado da Ribeira"}
			]}
		]
	}`}
	planner := NewPlannerService(fake)

	refined, err := planner.RefineItinerary(context.Background(), current, "make the afternoon lighter")
	require.NoError(t, err)

	locked := refined.Days[0].Activities[0]
	assert.Equal(t, "09:00", locked.Time, "locked activity keeps its prior time")
	assert.Equal(t, "Sao Jorge Castle", locked.Location)
	assert.Equal(t, "pre-booked", locked.Notes)

	renamed := refined.Days[0].Activities[1]
	assert.Equal(t, "Mercado da Ribeira", renamed.Title, "unlocked AI-owned fields refresh")
	assert.Equal(t, response_models.FeedbackLike, renamed.Feedback, "user feedback survives")

	assert.Equal(t, "itin-1", refined.ID)
	assert.Equal(t, current.Settings, refined.Settings)
}

func TestRefineItinerary_FatalOnMalformed(t *testing.T) {
	planner := NewPlannerService(&fakeCompletionClient{response: "{broken"})

	_, err := planner.RefineItinerary(context.Background(), response_models.Itinerary{ID: "itin-1"}, "anything")
	assert.True(t, errors.Is(err, utils.ErrMalformedResponse))
}

func TestRecalculateSchedule_MergesNarrowUpdates(t *testing.T) {
	activities := []response_models.Activity{
		{ID: "a1", Time: "09:00", Title: "Breakfast", Notes: "window seat"},
		{ID: "a2", Time: "10:00", Title: "Museum"},
	}
	fake := &fakeCompletionClient{response: `[
		{"id": "a1", "time": "09:30", "transport_to_next": "Walk: 12 min (Free)"},
		{"id": "a2", "time": "", "transport_to_next": ""},
		{"id": "ghost", "time": "23:00", "transport_to_next": "Taxi"}
	]`}
	planner := NewPlannerService(fake)

	result := planner.RecalculateSchedule(context.Background(), activities, "Hotel")

	require.Len(t, result, 2)
	assert.Equal(t, "09:30", result[0].Time)
	assert.Equal(t, "Walk: 12 min (Free)", result[0].TransportToNext)
	assert.Equal(t, "window seat", result[0].Notes, "fields outside the narrow payload are untouched")
	assert.Equal(t, "10:00", result[1].Time, "empty time in the update keeps the original")
}

func TestRecalculateSchedule_FailsOpen(t *testing.T) {
	activities := []response_models.Activity{{ID: "a1", Time: "09:00"}}

	for name, fake := range map[string]*fakeCompletionClient{
		"call error": {err: errors.New("boom")},
		"empty":      {response: ""},
		"malformed":  {response: "not json"},
	} {
		planner := NewPlannerService(fake)
		result := planner.RecalculateSchedule(context.Background(), activities, "")
		assert.Equal(t, activities, result, "case %s must return the input unchanged", name)
	}
}

func TestRecalculateSchedule_EmptyInput(t *testing.T) {
	fake := &fakeCompletionClient{}
	planner := NewPlannerService(fake)

	result := planner.RecalculateSchedule(context.Background(), nil, "")
	assert.Empty(t, result)
	assert.Empty(t, fake.prompts, "no completion call for an empty list")
}

func TestAnalyzeExternalContent(t *testing.T) {
	fake := &fakeCompletionClient{response: `{"possible_name": "LX Factory", "summary": "Creative hub under the bridge.", "tags": ["shopping", "food"]}`}
	planner := NewPlannerService(fake)

	item := planner.AnalyzeExternalContent(context.Background(), "https://instagram.com/p/lx")

	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "https://instagram.com/p/lx", item.Content)
	require.NotNil(t, item.Analysis)
	assert.Equal(t, "LX Factory", item.Analysis.PossibleName)

	require.Len(t, fake.opts, 1)
	assert.True(t, fake.opts[0].JSONResponse)
}

func TestAnalyzeExternalContent_NeverFails(t *testing.T) {
	for name, fake := range map[string]*fakeCompletionClient{
		"call error": {err: fmt.Errorf("provider down")},
		"empty":      {response: " "},
		"malformed":  {response: "no json"},
	} {
		planner := NewPlannerService(fake)
		item := planner.AnalyzeExternalContent(context.Background(), "some pasted text")

		require.NotNil(t, item.Analysis, "case %s", name)
		assert.Equal(t, "Unknown Spot", item.Analysis.PossibleName, "case %s", name)
		assert.Equal(t, "Could not analyze", item.Analysis.Summary, "case %s", name)
		assert.Empty(t, item.Analysis.Tags, "case %s", name)
	}
}

func TestChat(t *testing.T) {
	fake := &fakeCompletionClient{response: "  Day two is pretty packed already.  "}
	planner := NewPlannerService(fake)

	reply, err := planner.Chat(context.Background(),
		[]response_models.ChatMessage{{Role: "user", Content: "plan so far?"}},
		"is day two too busy?")
	require.NoError(t, err)
	assert.Equal(t, "Day two is pretty packed already.", reply)

	require.Len(t, fake.opts, 1)
	assert.NotEmpty(t, fake.opts[0].SystemInstruction)
	assert.False(t, fake.opts[0].JSONResponse, "chat replies are plain text")
}

func TestChat_EmptyMessage(t *testing.T) {
	planner := NewPlannerService(&fakeCompletionClient{})

	_, err := planner.Chat(context.Background(), nil, "  ")
	assert.True(t, errors.Is(err, utils.ErrInvalidInput))
}
