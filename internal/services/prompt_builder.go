package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/pkg/utils"
)

// Prompt builders are pure: they render instruction text and declare which
// external capabilities the completion call may use. They have no retry or
// error-handling responsibility.

const itineraryShapeContract = `Return JSON matching this shape exactly (keys verbatim, no extra keys):
{
  "destination": "string",
  "title": "string",
  "total_budget": 0,
  "currency": "EUR",
  "days": [
    {
      "day": 1,
      "date": "YYYY-MM-DD",
      "activities": [
        {
          "id": "string (stable, unique)",
          "time": "HH:MM",
          "title": "string",
          "description": "string",
          "location": "string",
          "type": "food | culture | nature | transport | leisure | logistics | blocked | custom",
          "duration_minutes": 60,
          "estimated_cost": 0,
          "price_detail": "string",
          "coordinates": {"lat": 0, "lng": 0},
          "transport_to_next": "Mode: Duration (Cost) | Mode: Duration (Cost)",
          "map_url": "string",
          "image_url": "string"
        }
      ]
    }
  ]
}`

const chatPersonaInstruction = "You are Voyago's travel-planning assistant. Use the conversation so far to answer questions about the trip, reference actual plan entries, and offer concrete suggestions. Keep answers concise and grounded in the provided context unless the user explicitly asks for speculation."

// BuildGeneratePrompt renders full-itinerary instructions for a fresh trip.
// Place lookup and web search are granted so the model can verify venues and
// opening hours.
func BuildGeneratePrompt(input request_models.TripInput) (string, utils.CompletionOptions) {
	var prompt strings.Builder

	fmt.Fprintf(&prompt, "Create a detailed %d-day travel itinerary for %s starting on %s.\n\n", input.Duration, input.Destination, input.StartDate)
	fmt.Fprintf(&prompt, "Travelers: %d. Budget tier: %s.\n", input.Travelers, budgetTierOrDefault(input.BudgetTier))
	if len(input.Interests) > 0 {
		fmt.Fprintf(&prompt, "Interests: %s.\n", strings.Join(input.Interests, ", "))
	}
	if len(input.MustVisit) > 0 {
		fmt.Fprintf(&prompt, "Must visit: %s.\n", strings.Join(input.MustVisit, ", "))
	}

	prompt.WriteString("\nREQUIREMENTS:\n")
	fmt.Fprintf(&prompt, "1. Generate exactly %d days, dated consecutively from %s.\n", input.Duration, input.StartDate)
	prompt.WriteString("2. Verify that every place exists and is plausibly open at the scheduled time.\n")
	prompt.WriteString("3. For every activity except the last of a day, fill transport_to_next with multi-modal options in exactly this textual format: \"Mode: Duration (Cost) | Mode: Duration (Cost)\", e.g. \"Walk: 10 min (Free) | Taxi: 4 min (8 EUR)\".\n")
	prompt.WriteString("4. Cost estimates must respect the budget tier.\n")
	prompt.WriteString("5. Dates use YYYY-MM-DD, times use 24h HH:MM.\n")
	prompt.WriteString("6. Return ONLY valid JSON, no extra text.\n\n")
	prompt.WriteString(itineraryShapeContract)

	return prompt.String(), utils.CompletionOptions{
		Capabilities: []string{utils.CapabilityPlaceLookup, utils.CapabilityWebSearch},
	}
}

// BuildRefinePrompt renders instructions to produce a full replacement
// itinerary honoring the user's request and the hard constraints on locked,
// blocked and mandatory activities.
func BuildRefinePrompt(current response_models.Itinerary, userRequest string) (string, utils.CompletionOptions) {
	serialized, _ := json.MarshalIndent(current, "", "  ")

	var prompt strings.Builder
	prompt.WriteString("Here is the current travel itinerary as JSON:\n\n")
	prompt.Write(serialized)
	fmt.Fprintf(&prompt, "\n\nUser request: %s\n\n", userRequest)

	prompt.WriteString("Produce a FULL replacement itinerary that honors the request. Hard constraints:\n")
	prompt.WriteString("1. Activities with \"locked\": true keep their time and location exactly as given.\n")
	prompt.WriteString("2. Activities with \"type\": \"blocked\" represent unavailable time; do not overwrite them or schedule anything that conflicts with them.\n")
	prompt.WriteString("3. Activities with \"mandatory\": true must appear somewhere in the output, even if their original time cannot be honored.\n")
	prompt.WriteString("4. Keep existing activity ids for activities you carry over; invent new ids only for new activities.\n")
	prompt.WriteString("5. Return ONLY valid JSON, no extra text.\n\n")
	prompt.WriteString(itineraryShapeContract)

	return prompt.String(), utils.CompletionOptions{
		Capabilities: []string{utils.CapabilityPlaceLookup},
	}
}

// BuildReschedulePrompt renders instructions to recompute start times and
// inter-activity transport for a reordered activity list, preserving the
// given order exactly. Narrow JSON payload, no capability tools.
func BuildReschedulePrompt(activities []response_models.Activity, previousLocation string) (string, utils.CompletionOptions) {
	type rescheduleEntry struct {
		ID       string `json:"id"`
		Title    string `json:"title"`
		Location string `json:"location"`
		Time     string `json:"time"`
		Duration int    `json:"duration_minutes"`
		Locked   bool   `json:"locked"`
	}
	entries := make([]rescheduleEntry, 0, len(activities))
	for _, a := range activities {
		entries = append(entries, rescheduleEntry{
			ID:       a.ID,
			Title:    a.Title,
			Location: a.Location,
			Time:     a.Time,
			Duration: a.DurationMinutes,
			Locked:   a.Locked,
		})
	}
	serialized, _ := json.MarshalIndent(entries, "", "  ")

	var prompt strings.Builder
	prompt.WriteString("The user reordered the activities below. Recompute start times and transport sequentially.\n\n")
	if previousLocation != "" {
		fmt.Fprintf(&prompt, "The day starts from: %s\n\n", previousLocation)
	}
	prompt.Write(serialized)
	prompt.WriteString("\n\nRULES:\n")
	prompt.WriteString("1. Preserve the given order EXACTLY. Do not add, drop or reorder entries.\n")
	prompt.WriteString("2. Activities with \"locked\": true keep their time verbatim; arrange the rest of the sequence around them.\n")
	prompt.WriteString("3. Recompute only the start time and the transport to the next activity, in the format \"Mode: Duration (Cost) | Mode: Duration (Cost)\".\n")
	prompt.WriteString("4. Return ONLY a JSON array in this shape:\n")
	prompt.WriteString(`[{"id": "string", "time": "HH:MM", "transport_to_next": "string"}]`)

	return prompt.String(), utils.CompletionOptions{JSONResponse: true}
}

// BuildAnalyzePrompt requests a small structured analysis of user-pasted
// content (a URL or free text).
func BuildAnalyzePrompt(content string) (string, utils.CompletionOptions) {
	var prompt strings.Builder
	prompt.WriteString("A traveler saved this link or note for later:\n\n")
	prompt.WriteString(content)
	prompt.WriteString("\n\nIdentify what place or experience it likely refers to. Return ONLY JSON in this shape:\n")
	prompt.WriteString(`{"possible_name": "string", "summary": "one or two sentences", "tags": ["tag"]}`)

	return prompt.String(), utils.CompletionOptions{JSONResponse: true}
}

// BuildChatPrompt flattens the conversation for a stateless assistant call.
// History is truncated to the most recent messages.
func BuildChatPrompt(history []response_models.ChatMessage, message string) (string, utils.CompletionOptions) {
	const historyLimit = 20
	if len(history) > historyLimit {
		history = history[len(history)-historyLimit:]
	}

	var prompt strings.Builder
	for _, m := range history {
		if m.Content == "" {
			continue
		}
		role := m.Role
		if role != "user" && role != "assistant" {
			continue
		}
		fmt.Fprintf(&prompt, "%s: %s\n", role, m.Content)
	}
	fmt.Fprintf(&prompt, "user: %s\n", message)

	return prompt.String(), utils.CompletionOptions{
		SystemInstruction: chatPersonaInstruction,
	}
}

func budgetTierOrDefault(tier string) string {
	if tier == "" {
		return "mid-range"
	}
	return tier
}
