package session_models

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"utsav/internal/config"
)

// Step is the explicit state of the guided conversation. Every input event
// is only legal in exactly one step, which keeps illegal combinations
// (budget entry and vendor browsing at once) unrepresentable.
type Step string

const (
	StepSelectEventType     Step = "select_event_type"
	StepVendorChecklist     Step = "select_vendor_checklist"
	StepEnterLocation       Step = "enter_location"
	StepEnterBudget         Step = "enter_budget"
	StepBudgetAllocation    Step = "show_budget_allocation"
	StepRecommendations     Step = "show_vendor_recommendations"
	StepCollectContact      Step = "collect_contact_details"
	StepSubmitting          Step = "submitting"
	StepCompleted           Step = "completed"
	StepError               Step = "error"
)

const (
	RoleAssistant = "assistant"
	RoleUser      = "user"
)

type Message struct {
	Role string
	Text string
	At   time.Time
}

type ChecklistItem struct {
	Category string
	Selected bool
}

type AllocationEntry struct {
	Category string
	Amount   int64
}

// VendorRef is the minimal vendor identity remembered across
// recommendation refreshes, so a selection carried over from an earlier
// batch can still be submitted with its name and category.
type VendorRef struct {
	ID       string
	Name     string
	Category string
}

// Session owns all conversation-wide state. Handlers run concurrently, so
// every access goes through Lock/Unlock even though the flow itself is
// strictly sequential per session.
type Session struct {
	mu sync.Mutex

	ID        uuid.UUID
	UserID    string
	Step      Step
	CreatedAt time.Time

	EventTypeID string
	Location    string
	Budget      int64
	SplitMode   config.SplitMode

	Checklist  []ChecklistItem
	Allocation []AllocationEntry
	selections map[string]struct{}
	vendorRefs map[string]VendorRef

	messages []Message

	// SubmittedRequestID is the session-local "already submitted" flag
	// consulted by the dedupe check.
	SubmittedRequestID string
}

func NewSession(userID string) *Session {
	return &Session{
		ID:         uuid.New(),
		UserID:     userID,
		Step:       StepSelectEventType,
		CreatedAt:  time.Now(),
		SplitMode:  config.SplitProportional,
		selections: make(map[string]struct{}),
		vendorRefs: make(map[string]VendorRef),
	}
}

func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

// AppendMessage is the only way to grow the log. Messages are never edited
// or removed; the log doubles as the user-visible audit trail.
func (s *Session) AppendMessage(role, text string) {
	s.messages = append(s.messages, Message{Role: role, Text: text, At: time.Now()})
}

func (s *Session) Messages() []Message {
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// ToggleSelection adds the vendor id if absent and removes it if present,
// so applying it twice always restores the previous set.
func (s *Session) ToggleSelection(vendorID string) bool {
	if _, ok := s.selections[vendorID]; ok {
		delete(s.selections, vendorID)
		return false
	}
	s.selections[vendorID] = struct{}{}
	return true
}

func (s *Session) IsSelected(vendorID string) bool {
	_, ok := s.selections[vendorID]
	return ok
}

func (s *Session) SelectionCount() int {
	return len(s.selections)
}

func (s *Session) SelectedIDs() []string {
	out := make([]string, 0, len(s.selections))
	for id := range s.selections {
		out = append(out, id)
	}
	return out
}

// RememberVendors records the identity of every vendor shown, without ever
// dropping refs for vendors missing from the newest batch.
func (s *Session) RememberVendors(refs []VendorRef) {
	for _, ref := range refs {
		s.vendorRefs[ref.ID] = ref
	}
}

// SelectedVendors resolves the selection set to remembered vendor refs.
func (s *Session) SelectedVendors() []VendorRef {
	out := make([]VendorRef, 0, len(s.selections))
	for id := range s.selections {
		if ref, ok := s.vendorRefs[id]; ok {
			out = append(out, ref)
		} else {
			out = append(out, VendorRef{ID: id})
		}
	}
	return out
}

// Restart discards the collected planning state but keeps the identity and
// the append-only message log. Nothing has been persisted before
// submission, so there is no external cleanup.
func (s *Session) Restart() {
	s.Step = StepSelectEventType
	s.EventTypeID = ""
	s.Location = ""
	s.Budget = 0
	s.SplitMode = config.SplitProportional
	s.Checklist = nil
	s.Allocation = nil
	s.selections = make(map[string]struct{})
	s.vendorRefs = make(map[string]VendorRef)
}
