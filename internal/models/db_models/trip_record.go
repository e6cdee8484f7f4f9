package db_models

import "github.com/google/uuid"

// TripRecord stores one itinerary snapshot per row. The payload column holds
// the full serialized itinerary; destination/title are denormalized so lists
// render without deserializing every row.
type TripRecord struct {
	BaseModel
	OwnerID     uuid.UUID `gorm:"type:uuid;index"`
	ItineraryID string    `gorm:"uniqueIndex;column:itinerary_id"`
	Destination string
	Title       string
	Payload     []byte `gorm:"type:jsonb"`
}
