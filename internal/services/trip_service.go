package services

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"voyago/internal/models/db_models"
	"voyago/internal/models/response_models"
	"voyago/internal/repositories"
	"voyago/pkg/mem"
	"voyago/pkg/utils"
)

type TripServiceInterface interface {
	SaveItinerary(ctx context.Context, ownerID string, itinerary response_models.Itinerary) error
	ListItineraries(ctx context.Context, ownerID string, page, pageSize int) ([]response_models.Itinerary, error)
}

// TripService persists itinerary snapshots. With no postgres configured it
// degrades to the in-process store so the planner stays usable; those
// snapshots do not survive a restart.
type TripService struct {
	tripRepo   repositories.TripRepository
	localStore *mem.LocalTripStore
}

func NewTripService(tripRepo repositories.TripRepository, localStore *mem.LocalTripStore) TripServiceInterface {
	return &TripService{
		tripRepo:   tripRepo,
		localStore: localStore,
	}
}

func (t *TripService) SaveItinerary(ctx context.Context, ownerID string, itinerary response_models.Itinerary) error {
	if itinerary.ID == "" {
		return utils.ErrInvalidInput
	}

	payload, err := json.Marshal(itinerary)
	if err != nil {
		return utils.ErrInvalidInput
	}

	if t.tripRepo == nil {
		log.Printf("Postgres not configured, saving itinerary %s to the local store", itinerary.ID)
		t.localStore.Upsert(itinerary.ID, ownerID, payload)
		return nil
	}

	owner, err := uuid.Parse(ownerID)
	if err != nil {
		return utils.ErrInvalidInput
	}

	record := &db_models.TripRecord{
		OwnerID:     owner,
		ItineraryID: itinerary.ID,
		Destination: itinerary.Destination,
		Title:       itinerary.Title,
		Payload:     payload,
	}
	if err := t.tripRepo.Upsert(ctx, record); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (t *TripService) ListItineraries(ctx context.Context, ownerID string, page, pageSize int) ([]response_models.Itinerary, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	if t.tripRepo == nil {
		return decodeItineraries(t.localStore.ListByOwner(ownerID)), nil
	}

	owner, err := uuid.Parse(ownerID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	records, err := t.tripRepo.ListByOwner(ctx, owner, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	payloads := make([][]byte, 0, len(records))
	for _, record := range records {
		payloads = append(payloads, record.Payload)
	}
	return decodeItineraries(payloads), nil
}

func decodeItineraries(payloads [][]byte) []response_models.Itinerary {
	out := make([]response_models.Itinerary, 0, len(payloads))
	for _, payload := range payloads {
		var itinerary response_models.Itinerary
		if err := json.Unmarshal(payload, &itinerary); err != nil {
			log.Printf("Skipping undecodable itinerary snapshot: %v", err)
			continue
		}
		out = append(out, itinerary)
	}
	return out
}
