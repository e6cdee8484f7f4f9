package db_models

import (
	"time"

	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

type WishlistEmbedding struct {
	ItemID       string `gorm:"primaryKey;column:item_id"`
	Content      string
	PossibleName string
	Summary      string
	Tags         pq.StringArray  `gorm:"type:text[]"`
	Embedding    pgvector.Vector `gorm:"type:vector(1536)"`
	CreatedAt    time.Time       `gorm:"autoCreateTime"`
}
