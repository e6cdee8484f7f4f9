package repositories

import (
	"context"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"voyago/internal/models/db_models"
)

type WishlistRepository interface {
	CreateEmbedding(ctx context.Context, item db_models.WishlistEmbedding) error
	FindSimilarByVector(ctx context.Context, vector pgvector.Vector, limit int) ([]db_models.WishlistEmbedding, error)
}

type wishlistRepository struct {
	db *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) WishlistRepository {
	return &wishlistRepository{
		db: db,
	}
}

func (w *wishlistRepository) CreateEmbedding(ctx context.Context, item db_models.WishlistEmbedding) error {
	return w.db.WithContext(ctx).Create(&item).Error
}

func (w *wishlistRepository) FindSimilarByVector(ctx context.Context, vector pgvector.Vector, limit int) ([]db_models.WishlistEmbedding, error) {
	var results []db_models.WishlistEmbedding

	query := `
        SELECT *, (1 - (embedding <=> $1)) as similarity
        FROM wishlist_embeddings
        WHERE (1 - (embedding <=> $1)) > 0.7
        ORDER BY embedding <=> $1
        LIMIT $2
    `

	err := w.db.WithContext(ctx).Raw(query, vector.String(), limit).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
