package services

import "voyago/internal/models/response_models"

// ReconcileItineraries merges a freshly parsed candidate itinerary against
// the prior one so user-owned state survives regeneration while AI-owned
// fields are refreshed.
//
// Per-activity, joined on the stable activity id:
//   - locked prior activities replace the candidate entirely; a lock means
//     immutable across reconciliation, not just partially protected
//   - otherwise the user-owned fields are copied from the prior activity
//   - ids new in the candidate keep parse-time defaults
//
// Itinerary-level fields the user supplied (id, logistics, wishlist, trip
// settings) always come from previous; the completion service is never
// authoritative for them.
//
// Reconciliation never errors. When the candidate dropped a day or an
// activity id, the prior user state attached to it is lost; that matches the
// product's current "the model owns itinerary shape" stance.
func ReconcileItineraries(previous *response_models.Itinerary, candidate response_models.Itinerary) response_models.Itinerary {
	merged := candidate
	merged.Days = make([]response_models.DayPlan, len(candidate.Days))

	prior := priorActivityLookup(previous)

	for d, day := range candidate.Days {
		mergedDay := day
		mergedDay.Activities = make([]response_models.Activity, len(day.Activities))
		for a, activity := range day.Activities {
			mergedDay.Activities[a] = mergeActivity(prior, activity)
		}
		merged.Days[d] = mergedDay
	}

	if previous != nil {
		merged.ID = previous.ID
		merged.Logistics = previous.Logistics
		merged.Wishlist = previous.Wishlist
		merged.Settings = previous.Settings
	}
	if merged.Wishlist == nil {
		merged.Wishlist = []response_models.WishlistItem{}
	}

	return merged
}

func priorActivityLookup(previous *response_models.Itinerary) map[string]response_models.Activity {
	lookup := make(map[string]response_models.Activity)
	if previous == nil {
		return lookup
	}
	for _, day := range previous.Days {
		for _, activity := range day.Activities {
			lookup[activity.ID] = activity
		}
	}
	return lookup
}

func mergeActivity(prior map[string]response_models.Activity, candidate response_models.Activity) response_models.Activity {
	previous, known := prior[candidate.ID]
	if !known {
		return withUserDefaults(candidate)
	}
	if previous.Locked {
		return previous
	}
	copyUserOwnedFields(&candidate, previous)
	return candidate
}

// copyUserOwnedFields is the single definition of activity field ownership:
// everything assigned here belongs to the user and survives regeneration;
// every other Activity field belongs to the AI and is refreshed.
func copyUserOwnedFields(dst *response_models.Activity, src response_models.Activity) {
	dst.Locked = src.Locked
	dst.Mandatory = src.Mandatory
	dst.Notes = src.Notes
	dst.Feedback = src.Feedback
	dst.ActualCost = src.ActualCost
	dst.SelectedTransport = src.SelectedTransport
}

func withUserDefaults(activity response_models.Activity) response_models.Activity {
	activity.Locked = false
	activity.Mandatory = false
	activity.Notes = ""
	activity.ActualCost = nil
	activity.SelectedTransport = ""
	activity.Feedback = response_models.FeedbackNeutral
	return activity
}
