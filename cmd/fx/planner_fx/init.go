package planner_fx

import (
	"go.uber.org/fx"
	"utsav/internal/config"
	"utsav/internal/services"
)

var Module = fx.Provide(provideCatalogService, provideAllocationService)

func provideCatalogService(cfg *config.PlannerConfig) services.CatalogServiceInterface {
	return services.NewCatalogService(cfg)
}

func provideAllocationService(cfg *config.PlannerConfig) services.AllocationServiceInterface {
	return services.NewAllocationService(cfg)
}
