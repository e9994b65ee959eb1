package config_fx

import (
	"go.uber.org/fx"
	"utsav/internal/config"
)

var Module = fx.Provide(providePlannerConfig)

func providePlannerConfig() (*config.PlannerConfig, error) {
	return config.LoadPlannerConfig()
}
