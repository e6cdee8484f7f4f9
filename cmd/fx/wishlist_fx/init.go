package wishlist_fx

import (
	"log"
	"os"
	"strings"

	"go.uber.org/fx"
	"voyago/internal/api/controllers"
	"voyago/internal/repositories"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

var Module = fx.Provide(
	ProvideEmbeddingClient,
	ProvideWishlistService,
	ProvideWishlistController)

// ProvideEmbeddingClient picks the embedding backend. The local hash client
// needs no credential, so it is the default unless OpenAI is configured.
func ProvideEmbeddingClient() (utils.EmbeddingClientInterface, error) {
	provider := os.Getenv("EMBEDDING_PROVIDER")
	if provider == "" {
		if os.Getenv("OPENAI_API_KEY") != "" {
			provider = "openai"
		} else {
			provider = "local"
		}
	}

	apiKey := os.Getenv("OPENAI_API_KEY")
	model := os.Getenv("OPENAI_EMBEDDING_MODEL")
	if strings.ToLower(provider) == "openai" && apiKey == "" {
		log.Fatal("OPENAI_API_KEY is required when using OpenAI embeddings")
	}

	log.Printf("Initializing %s embedding client", provider)
	return utils.NewEmbeddingClient(provider, apiKey, model)
}

func ProvideWishlistService(
	planner services.PlannerServiceInterface,
	wishlistRepo repositories.WishlistRepository,
	embeddings utils.EmbeddingClientInterface,
) services.WishlistServiceInterface {
	return services.NewWishlistService(planner, wishlistRepo, embeddings)
}

func ProvideWishlistController(wishlistService services.WishlistServiceInterface) *controllers.WishlistController {
	return controllers.NewWishlistController(wishlistService)
}
