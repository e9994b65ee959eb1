package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPlannerConfig_IsValid(t *testing.T) {
	cfg := DefaultPlannerConfig()
	require.NoError(t, validatePlannerConfig(cfg))

	assert.NotEmpty(t, cfg.DefaultCatalog, "unknown event types must resolve to a non-empty list")
	assert.NotEmpty(t, cfg.DefaultTable)
	for _, et := range cfg.EventTypes {
		assert.NotEmpty(t, cfg.Catalogs[et.ID], "event type %s has no catalog", et.ID)
		assert.NotEmpty(t, cfg.Percentages[et.ID], "event type %s has no percentage table", et.ID)
	}
}

func TestMergePlannerConfig_OverridesWholeSections(t *testing.T) {
	base := DefaultPlannerConfig()
	override := &PlannerConfig{
		Dedupe:        DedupeSessionFirst,
		SessionTTLMin: 30,
		Percentages: map[string]PercentageTable{
			"wedding": {{Category: "Venue", Percent: 100}},
		},
	}

	mergePlannerConfig(base, override)

	assert.Equal(t, DedupeSessionFirst, base.Dedupe)
	assert.Equal(t, 30, base.SessionTTLMin)
	require.Len(t, base.Percentages, 1, "override replaces the whole section")
	assert.NotEmpty(t, base.EventTypes, "untouched sections keep their defaults")
}

func TestValidatePlannerConfig_Rejections(t *testing.T) {
	cfg := DefaultPlannerConfig()
	cfg.Dedupe = "coinflip"
	assert.Error(t, validatePlannerConfig(cfg))

	cfg = DefaultPlannerConfig()
	cfg.DefaultCatalog = nil
	assert.Error(t, validatePlannerConfig(cfg))

	cfg = DefaultPlannerConfig()
	cfg.Percentages["wedding"] = PercentageTable{{Category: "Venue", Percent: -1}}
	assert.Error(t, validatePlannerConfig(cfg))
}
