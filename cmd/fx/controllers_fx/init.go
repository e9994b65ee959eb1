package controllers_fx

import (
	"go.uber.org/fx"
	"utsav/internal/api/controllers"
	"utsav/internal/services"
)

var Module = fx.Provide(provideConversationController, provideRequestController)

func provideConversationController(conversationService services.ConversationServiceInterface) *controllers.ConversationController {
	return controllers.NewConversationController(conversationService)
}

func provideRequestController(requestService services.RequestServiceInterface) *controllers.RequestController {
	return controllers.NewRequestController(requestService)
}
