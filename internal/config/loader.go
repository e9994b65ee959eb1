package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoadPlannerConfig reads planner.yaml if one exists and overlays it on the
// compiled-in defaults. The service boots with no config file at all.
func LoadPlannerConfig() (*PlannerConfig, error) {
	cfg := DefaultPlannerConfig()

	v := viper.New()
	v.SetConfigName("planner")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")
	v.SetEnvPrefix("utsav")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading planner config: %w", err)
	}

	var override PlannerConfig
	if err := v.Unmarshal(&override); err != nil {
		return nil, fmt.Errorf("unmarshal planner config: %w", err)
	}
	mergePlannerConfig(cfg, &override)

	if err := validatePlannerConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid planner config: %w", err)
	}
	return cfg, nil
}

func mergePlannerConfig(base, override *PlannerConfig) {
	if len(override.EventTypes) > 0 {
		base.EventTypes = override.EventTypes
	}
	if len(override.Catalogs) > 0 {
		base.Catalogs = override.Catalogs
	}
	if len(override.DefaultCatalog) > 0 {
		base.DefaultCatalog = override.DefaultCatalog
	}
	if len(override.Percentages) > 0 {
		base.Percentages = override.Percentages
	}
	if len(override.DefaultTable) > 0 {
		base.DefaultTable = override.DefaultTable
	}
	if override.Dedupe != "" {
		base.Dedupe = override.Dedupe
	}
	if override.SessionTTLMin > 0 {
		base.SessionTTLMin = override.SessionTTLMin
	}
}

func validatePlannerConfig(cfg *PlannerConfig) error {
	if len(cfg.EventTypes) == 0 {
		return fmt.Errorf("no event types configured")
	}
	if len(cfg.DefaultCatalog) == 0 {
		return fmt.Errorf("default catalog must not be empty")
	}
	if len(cfg.DefaultTable) == 0 {
		return fmt.Errorf("default percentage table must not be empty")
	}
	for eventType, table := range cfg.Percentages {
		for _, row := range table {
			if row.Percent < 0 {
				return fmt.Errorf("negative percent for %s/%s", eventType, row.Category)
			}
		}
	}
	switch cfg.Dedupe {
	case DedupeSessionFirst, DedupeStoreFirst:
	default:
		return fmt.Errorf("unknown dedupe precedence %q", cfg.Dedupe)
	}
	return nil
}
