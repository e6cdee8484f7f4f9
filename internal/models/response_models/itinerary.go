package response_models

// Itinerary is the aggregate root for a generated travel plan. Its ID is
// assigned once at creation and survives every regeneration.
type Itinerary struct {
	ID          string         `json:"id"`
	Destination string         `json:"destination"`
	Title       string         `json:"title"`
	TotalBudget float64        `json:"total_budget"`
	Currency    string         `json:"currency"`
	Days        []DayPlan      `json:"days"`
	Logistics   *Logistics     `json:"logistics,omitempty"`
	Wishlist    []WishlistItem `json:"wishlist"`
	Settings    TripSettings   `json:"settings"`
}

// TripSettings echoes the user's trip parameters back on the itinerary. The
// completion service is never authoritative for these fields.
type TripSettings struct {
	StartDate    string   `json:"start_date"`
	DurationDays int      `json:"duration_days"`
	Travelers    int      `json:"travelers"`
	BudgetTier   string   `json:"budget_tier"`
	Interests    []string `json:"interests"`
	MustVisit    []string `json:"must_visit,omitempty"`
}

type DayPlan struct {
	Day        int        `json:"day"`
	Date       string     `json:"date"`
	Activities []Activity `json:"activities"`
}

// Activity fields split into two ownership classes. The AI-owned fields are
// overwritten on every successful regeneration; the user-owned fields are
// carried forward by reconciliation (see services.ReconcileItineraries).
type Activity struct {
	ID string `json:"id"`

	// AI-owned
	Time            string  `json:"time"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Location        string  `json:"location"`
	Type            string  `json:"type"`
	DurationMinutes int     `json:"duration_minutes"`
	EstimatedCost   float64 `json:"estimated_cost"`
	PriceDetail     string  `json:"price_detail,omitempty"`
	Coordinates     *LatLng `json:"coordinates,omitempty"`
	TransportToNext string  `json:"transport_to_next,omitempty"`
	MapURL          string  `json:"map_url,omitempty"`
	ImageURL        string  `json:"image_url,omitempty"`

	// User-owned
	Locked            bool     `json:"locked"`
	Mandatory         bool     `json:"mandatory"`
	Notes             string   `json:"notes,omitempty"`
	Feedback          string   `json:"feedback"`
	ActualCost        *float64 `json:"actual_cost,omitempty"`
	SelectedTransport string   `json:"selected_transport,omitempty"`
}

// Activity type enum values the prompt contract allows.
const (
	ActivityTypeFood      = "food"
	ActivityTypeCulture   = "culture"
	ActivityTypeNature    = "nature"
	ActivityTypeTransport = "transport"
	ActivityTypeLeisure   = "leisure"
	ActivityTypeLogistics = "logistics"
	ActivityTypeBlocked   = "blocked"
	ActivityTypeCustom    = "custom"
)

const (
	FeedbackNeutral = "neutral"
	FeedbackLike    = "like"
	FeedbackDislike = "dislike"
)

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Logistics is supplied by the user and never produced by the completion
// service; it is re-attached onto every generated itinerary.
type Logistics struct {
	Arrival       TravelLeg     `json:"arrival"`
	Departure     TravelLeg     `json:"departure"`
	Accommodation Accommodation `json:"accommodation"`
}

type TravelLeg struct {
	Mode     string `json:"mode"`
	Location string `json:"location"`
	Time     string `json:"time"`
	Address  string `json:"address,omitempty"`
}

type Accommodation struct {
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	Coordinates *LatLng `json:"coordinates,omitempty"`
}

type WishlistItem struct {
	ID       string            `json:"id"`
	Content  string            `json:"content"`
	Analysis *WishlistAnalysis `json:"analysis,omitempty"`
}

type WishlistAnalysis struct {
	PossibleName string   `json:"possible_name"`
	Summary      string   `json:"summary"`
	Tags         []string `json:"tags"`
}

// ScheduleUpdate is the narrow payload returned by a reschedule call: only
// the per-activity fields the model is allowed to recompute.
type ScheduleUpdate struct {
	ID              string `json:"id"`
	Time            string `json:"time"`
	TransportToNext string `json:"transport_to_next"`
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
