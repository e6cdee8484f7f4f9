package services

import (
	"context"
	"log"
	"strings"

	"github.com/lib/pq"
	"voyago/internal/models/db_models"
	"voyago/internal/models/response_models"
	"voyago/internal/repositories"
	"voyago/pkg/utils"
)

type WishlistServiceInterface interface {
	AnalyzeAndSave(ctx context.Context, content string) (response_models.WishlistItem, error)
	FindSimilarSaved(ctx context.Context, query string, limit int) ([]response_models.WishlistItem, error)
}

// WishlistService wraps the planner's content analysis with persistence:
// analyzed items are embedded so previously saved spots can be surfaced for
// a related query later.
type WishlistService struct {
	planner      PlannerServiceInterface
	wishlistRepo repositories.WishlistRepository
	embeddings   utils.EmbeddingClientInterface
}

func NewWishlistService(
	planner PlannerServiceInterface,
	wishlistRepo repositories.WishlistRepository,
	embeddings utils.EmbeddingClientInterface,
) WishlistServiceInterface {
	return &WishlistService{
		planner:      planner,
		wishlistRepo: wishlistRepo,
		embeddings:   embeddings,
	}
}

// AnalyzeAndSave never fails the analysis itself; persistence is best-effort
// and its failure only costs the similarity lookup later.
func (w *WishlistService) AnalyzeAndSave(ctx context.Context, content string) (response_models.WishlistItem, error) {
	if strings.TrimSpace(content) == "" {
		return response_models.WishlistItem{}, utils.ErrInvalidInput
	}

	item := w.planner.AnalyzeExternalContent(ctx, content)

	if w.wishlistRepo == nil {
		return item, nil
	}

	vector, err := w.embeddings.GetEmbedding(ctx, embeddingText(item))
	if err != nil {
		log.Printf("Wishlist embedding failed for item %s: %v", item.ID, err)
		return item, nil
	}

	record := db_models.WishlistEmbedding{
		ItemID:       item.ID,
		Content:      item.Content,
		PossibleName: item.Analysis.PossibleName,
		Summary:      item.Analysis.Summary,
		Tags:         pq.StringArray(item.Analysis.Tags),
		Embedding:    vector,
	}
	if err := w.wishlistRepo.CreateEmbedding(ctx, record); err != nil {
		log.Printf("Wishlist embedding save failed for item %s: %v", item.ID, err)
	}

	return item, nil
}

func (w *WishlistService) FindSimilarSaved(ctx context.Context, query string, limit int) ([]response_models.WishlistItem, error) {
	if strings.TrimSpace(query) == "" {
		return nil, utils.ErrInvalidInput
	}
	if w.wishlistRepo == nil {
		return nil, utils.ErrStorageUnavailable
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}

	vector, err := w.embeddings.GetEmbedding(ctx, query)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	records, err := w.wishlistRepo.FindSimilarByVector(ctx, vector, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	items := make([]response_models.WishlistItem, 0, len(records))
	for _, record := range records {
		items = append(items, response_models.WishlistItem{
			ID:      record.ItemID,
			Content: record.Content,
			Analysis: &response_models.WishlistAnalysis{
				PossibleName: record.PossibleName,
				Summary:      record.Summary,
				Tags:         []string(record.Tags),
			},
		})
	}
	return items, nil
}

func embeddingText(item response_models.WishlistItem) string {
	if item.Analysis == nil {
		return item.Content
	}
	return item.Content + " " + item.Analysis.PossibleName + " " + item.Analysis.Summary
}
