package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"voyago/internal/models/db_models"
)

type TripRepository interface {
	Upsert(ctx context.Context, record *db_models.TripRecord) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID, page, pageSize int) ([]db_models.TripRecord, error)
	FindByItineraryID(ctx context.Context, itineraryID string) (*db_models.TripRecord, error)
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{
		db: db,
	}
}

// Upsert inserts the snapshot or, when the itinerary id already exists,
// refreshes the stored payload. Regeneration never reissues ids, so the
// conflict target is the itinerary id alone.
func (t *tripRepository) Upsert(ctx context.Context, record *db_models.TripRecord) error {
	return t.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "itinerary_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"destination", "title", "payload", "updated_at"}),
		}).
		Create(record).Error
}

func (t *tripRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, page, pageSize int) ([]db_models.TripRecord, error) {
	var records []db_models.TripRecord
	err := t.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("updated_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (t *tripRepository) FindByItineraryID(ctx context.Context, itineraryID string) (*db_models.TripRecord, error) {
	var record db_models.TripRecord
	err := t.db.WithContext(ctx).First(&record, "itinerary_id = ?", itineraryID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}
