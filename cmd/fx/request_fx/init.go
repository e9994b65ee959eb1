package request_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"utsav/internal/config"
	"utsav/internal/repositories"
	"utsav/internal/services"
)

var Module = fx.Provide(provideRequestRepo, provideRequestService)

func provideRequestRepo(db *gorm.DB) repositories.RequestRepository {
	return repositories.NewRequestRepository(db)
}

func provideRequestService(requestRepo repositories.RequestRepository, cfg *config.PlannerConfig, logger *zap.Logger) services.RequestServiceInterface {
	return services.NewRequestService(requestRepo, cfg, logger)
}
