package conversation_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"utsav/internal/services"
	mem "utsav/pkg/memcache"
)

var Module = fx.Provide(provideConversationService)

func provideConversationService(
	sessions mem.SessionStore,
	catalogService services.CatalogServiceInterface,
	allocService services.AllocationServiceInterface,
	vendorService services.VendorServiceInterface,
	requestService services.RequestServiceInterface,
	logger *zap.Logger,
) services.ConversationServiceInterface {
	return services.NewConversationService(sessions, catalogService, allocService, vendorService, requestService, logger)
}
