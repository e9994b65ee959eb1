package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"utsav/internal/config"
)

func TestChecklistFor_BirthdayDefaults(t *testing.T) {
	svc := NewCatalogService(config.DefaultPlannerConfig())

	checklist := svc.ChecklistFor("birthday")

	selected := map[string]bool{}
	for _, item := range checklist {
		selected[item.Category] = item.Selected
	}
	for _, category := range []string{"Caterer", "Decorator", "Photographer", "Entertainment"} {
		assert.True(t, selected[category], "%s should default selected", category)
	}
	for _, category := range []string{"Venue", "SoundLighting", "Anchor", "MakeupArtist"} {
		has, ok := selected[category]
		require.True(t, ok, "%s should be on the birthday checklist", category)
		assert.False(t, has, "%s should default unselected", category)
	}
}

func TestChecklistFor_UnknownEventTypeFallsBackToGenericList(t *testing.T) {
	svc := NewCatalogService(config.DefaultPlannerConfig())

	checklist := svc.ChecklistFor("quinceanera")
	assert.NotEmpty(t, checklist)

	generic := svc.ChecklistFor("")
	assert.Equal(t, checklist, generic)
}

func TestChecklistFor_ReturnsCopies(t *testing.T) {
	svc := NewCatalogService(config.DefaultPlannerConfig())

	first := svc.ChecklistFor("wedding")
	first[0].Selected = !first[0].Selected

	second := svc.ChecklistFor("wedding")
	assert.NotEqual(t, first[0].Selected, second[0].Selected,
		"user toggles must not leak back into the catalog")
}

func TestListEventTypes(t *testing.T) {
	svc := NewCatalogService(config.DefaultPlannerConfig())

	eventTypes := svc.ListEventTypes()
	require.NotEmpty(t, eventTypes)
	assert.Equal(t, "wedding", eventTypes[0].ID)
	assert.True(t, svc.IsKnownEventType("birthday"))
	assert.False(t, svc.IsKnownEventType("quinceanera"))
	assert.Equal(t, "Birthday Party", svc.EventTypeName("birthday"))
}
