package account_fx

import (
	"go.uber.org/fx"
	"voyago/internal/api/controllers"
	"voyago/internal/repositories"
	"voyago/internal/services"
)

var Module = fx.Provide(
	ProvideAccountService,
	ProvideAccountController)

func ProvideAccountService(accountRepo repositories.AccountRepository) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo)
}

func ProvideAccountController(accountService services.AccountServiceInterface) *controllers.AccountController {
	return controllers.NewAccountController(accountService)
}
