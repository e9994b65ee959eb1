package session_models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleSelection_Involution(t *testing.T) {
	s := NewSession("")
	s.ToggleSelection("a")
	s.ToggleSelection("b")
	before := s.SelectedIDs()

	s.ToggleSelection("c")
	s.ToggleSelection("c")

	assert.ElementsMatch(t, before, s.SelectedIDs(),
		"toggling twice must restore the original set")
}

func TestToggleSelection_AddThenDoubleToggle(t *testing.T) {
	s := NewSession("")

	s.ToggleSelection("3")
	s.ToggleSelection("7")
	s.ToggleSelection("7")

	assert.Equal(t, []string{"3"}, s.SelectedIDs())
	assert.Equal(t, 1, s.SelectionCount())
}

func TestRememberVendors_CarriesOverAcrossBatches(t *testing.T) {
	s := NewSession("")
	s.RememberVendors([]VendorRef{{ID: "v1", Name: "Hall One", Category: "Venue"}})
	s.ToggleSelection("v1")

	// A second batch without v1 must not forget it.
	s.RememberVendors([]VendorRef{{ID: "v2", Name: "Tasty Bites", Category: "Caterer"}})

	selected := s.SelectedVendors()
	require.Len(t, selected, 1)
	assert.Equal(t, "Hall One", selected[0].Name)
}

func TestRestart_ClearsPlanningStateKeepsLog(t *testing.T) {
	s := NewSession("user-1")
	s.AppendMessage(RoleAssistant, "hello")
	s.EventTypeID = "wedding"
	s.Location = "Mumbai"
	s.Budget = 100000
	s.Checklist = []ChecklistItem{{Category: "Venue", Selected: true}}
	s.ToggleSelection("v1")
	s.Step = StepRecommendations

	s.Restart()

	assert.Equal(t, StepSelectEventType, s.Step)
	assert.Empty(t, s.EventTypeID)
	assert.Empty(t, s.Location)
	assert.Zero(t, s.Budget)
	assert.Empty(t, s.Checklist)
	assert.Zero(t, s.SelectionCount())
	assert.Equal(t, "user-1", s.UserID, "identity survives restart")
	assert.Len(t, s.Messages(), 1, "the audit log survives restart")
}

func TestMessages_ReturnsCopy(t *testing.T) {
	s := NewSession("")
	s.AppendMessage(RoleAssistant, "hello")

	msgs := s.Messages()
	msgs[0].Text = "tampered"

	assert.Equal(t, "hello", s.Messages()[0].Text)
}
