package planner_fx

import (
	"log"
	"os"
	"strings"

	"go.uber.org/fx"
	"voyago/internal/api/controllers"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

var Module = fx.Provide(
	ProvideCompletionClient,
	ProvidePlannerService,
	ProvidePlannerController)

// ProvideCompletionClient builds the single completion client the process
// uses, from environment configuration. Constructed once here and injected
// everywhere it is needed.
func ProvideCompletionClient() (utils.CompletionClientInterface, error) {
	provider := getEnvWithDefault("COMPLETION_PROVIDER", "gemini")

	var apiKey, model string
	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = os.Getenv("OPENAI_MODEL")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	default:
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = os.Getenv("GEMINI_MODEL")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	log.Printf("Initializing %s completion client", provider)
	return utils.NewCompletionClient(provider, apiKey, model)
}

func ProvidePlannerService(completion utils.CompletionClientInterface) services.PlannerServiceInterface {
	return services.NewPlannerService(completion)
}

func ProvidePlannerController(plannerService services.PlannerServiceInterface) *controllers.PlannerController {
	return controllers.NewPlannerController(plannerService)
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
