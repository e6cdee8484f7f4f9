package services

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyago/internal/models/db_models"
	"voyago/internal/repositories"
	"voyago/pkg/utils"
)

type fakeWishlistRepo struct {
	created []db_models.WishlistEmbedding
	similar []db_models.WishlistEmbedding
	err     error
}

func (f *fakeWishlistRepo) CreateEmbedding(ctx context.Context, item db_models.WishlistEmbedding) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, item)
	return nil
}

func (f *fakeWishlistRepo) FindSimilarByVector(ctx context.Context, vector pgvector.Vector, limit int) ([]db_models.WishlistEmbedding, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.similar, nil
}

// The repo parameter is the interface type on purpose: passing nil here must
// produce the same nil interface db_fx injects when postgres is absent, not a
// typed nil that would slip past the service's guards.
func newWishlistFixture(completionResponse string, repo repositories.WishlistRepository) WishlistServiceInterface {
	planner := NewPlannerService(&fakeCompletionClient{response: completionResponse})
	embeddings := &utils.LocalHashEmbeddingClient{}
	return NewWishlistService(planner, repo, embeddings)
}

func TestWishlistService_AnalyzeAndSave(t *testing.T) {
	repo := &fakeWishlistRepo{}
	service := newWishlistFixture(`{"possible_name": "LX Factory", "summary": "Creative hub.", "tags": ["shopping"]}`, repo)

	item, err := service.AnalyzeAndSave(context.Background(), "https://instagram.com/p/lx")
	require.NoError(t, err)
	require.NotNil(t, item.Analysis)
	assert.Equal(t, "LX Factory", item.Analysis.PossibleName)

	require.Len(t, repo.created, 1)
	saved := repo.created[0]
	assert.Equal(t, item.ID, saved.ItemID)
	assert.Equal(t, "LX Factory", saved.PossibleName)
	assert.NotEmpty(t, saved.Embedding.Slice())
}

func TestWishlistService_AnalyzeWithoutRepository(t *testing.T) {
	service := newWishlistFixture(`{"possible_name": "Spot", "summary": "A place.", "tags": []}`, nil)

	item, err := service.AnalyzeAndSave(context.Background(), "some note")
	require.NoError(t, err, "missing storage never fails the analysis")
	assert.Equal(t, "Spot", item.Analysis.PossibleName)
}

func TestWishlistService_SaveFailureStillReturnsItem(t *testing.T) {
	repo := &fakeWishlistRepo{err: errors.New("insert failed")}
	service := newWishlistFixture(`{"possible_name": "Spot", "summary": "A place.", "tags": []}`, repo)

	item, err := service.AnalyzeAndSave(context.Background(), "some note")
	require.NoError(t, err)
	assert.NotNil(t, item.Analysis)
}

func TestWishlistService_AnalyzeRejectsEmptyContent(t *testing.T) {
	service := newWishlistFixture("", &fakeWishlistRepo{})

	_, err := service.AnalyzeAndSave(context.Background(), "   ")
	assert.True(t, errors.Is(err, utils.ErrInvalidInput))
}

func TestWishlistService_FindSimilarSaved(t *testing.T) {
	repo := &fakeWishlistRepo{similar: []db_models.WishlistEmbedding{
		{ItemID: "w1", Content: "pasteis", PossibleName: "Pasteis de Belem", Summary: "Famous bakery.", Tags: pq.StringArray{"food"}},
	}}
	service := newWishlistFixture("", repo)

	items, err := service.FindSimilarSaved(context.Background(), "custard tarts", 5)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "w1", items[0].ID)
	require.NotNil(t, items[0].Analysis)
	assert.Equal(t, "Pasteis de Belem", items[0].Analysis.PossibleName)
}

func TestWishlistService_FindSimilarWithoutRepository(t *testing.T) {
	service := newWishlistFixture("", nil)

	_, err := service.FindSimilarSaved(context.Background(), "anything", 5)
	assert.True(t, errors.Is(err, utils.ErrStorageUnavailable))
}
