package controllers_fx

import (
	"go.uber.org/fx"

	"healthpulse/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewLifestyleController),
	fx.Provide(controllers.NewDashboardController),
	fx.Provide(controllers.NewHealthTipsController),
	fx.Provide(controllers.NewChatController),
)
