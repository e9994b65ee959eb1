package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"utsav/internal/config"
	"utsav/internal/models/request_models"
	"utsav/internal/models/response_models"
	"utsav/internal/models/session_models"
	mem "utsav/pkg/memcache"
	"utsav/pkg/utils"
)

// ConversationServiceInterface drives the guided planning conversation as
// an ordered state machine, one method per input event. It is the only
// component that reads or writes conversation-wide state.
type ConversationServiceInterface interface {
	Start(ctx context.Context, userID string) (*response_models.ConversationSnapshot, error)
	Snapshot(ctx context.Context, sessionID string) (*response_models.ConversationSnapshot, error)
	SelectEventType(ctx context.Context, sessionID, eventTypeID string) (*response_models.ConversationSnapshot, error)
	ToggleChecklistItem(ctx context.Context, sessionID, category string) (*response_models.ConversationSnapshot, error)
	ConfirmChecklist(ctx context.Context, sessionID string) (*response_models.ConversationSnapshot, error)
	ConfirmLocation(ctx context.Context, sessionID, location string) (*response_models.ConversationSnapshot, error)
	ConfirmBudget(ctx context.Context, sessionID, rawBudget string) (*response_models.ConversationSnapshot, error)
	SetSplitMode(ctx context.Context, sessionID, mode string) (*response_models.ConversationSnapshot, error)
	Recommendations(ctx context.Context, sessionID string) (*response_models.RecommendationResponse, error)
	ToggleVendor(ctx context.Context, sessionID, vendorID string) (*response_models.ConversationSnapshot, error)
	ConfirmSelection(ctx context.Context, sessionID string) (*response_models.ConversationSnapshot, error)
	Submit(ctx context.Context, sessionID string, req request_models.SubmitRequest) (*response_models.SubmissionResponse, error)
	Restart(ctx context.Context, sessionID string) (*response_models.ConversationSnapshot, error)
}

type ConversationService struct {
	sessions       mem.SessionStore
	catalogService CatalogServiceInterface
	allocService   AllocationServiceInterface
	vendorService  VendorServiceInterface
	requestService RequestServiceInterface
	logger         *zap.Logger
}

func NewConversationService(
	sessions mem.SessionStore,
	catalogService CatalogServiceInterface,
	allocService AllocationServiceInterface,
	vendorService VendorServiceInterface,
	requestService RequestServiceInterface,
	logger *zap.Logger,
) ConversationServiceInterface {
	return &ConversationService{
		sessions:       sessions,
		catalogService: catalogService,
		allocService:   allocService,
		vendorService:  vendorService,
		requestService: requestService,
		logger:         logger,
	}
}

func (c *ConversationService) Start(ctx context.Context, userID string) (*response_models.ConversationSnapshot, error) {
	session := session_models.NewSession(userID)
	session.AppendMessage(session_models.RoleAssistant,
		"Hi! I can help you plan your event. What are you celebrating?")
	c.sessions.Put(session)
	return c.snapshot(session), nil
}

func (c *ConversationService) Snapshot(ctx context.Context, sessionID string) (*response_models.ConversationSnapshot, error) {
	session, err := c.session(sessionID)
	if err != nil {
		return nil, err
	}
	session.Lock()
	defer session.Unlock()
	return c.snapshot(session), nil
}

func (c *ConversationService) SelectEventType(ctx context.Context, sessionID, eventTypeID string) (*response_models.ConversationSnapshot, error) {
	session, err := c.session(sessionID)
	if err != nil {
		return nil, err
	}
	session.Lock()
	defer session.Unlock()

	if session.Step != session_models.StepSelectEventType {
		return nil, utils.ErrInvalidStep
	}
	if strings.TrimSpace(eventTypeID) == "" {
		return nil, utils.ErrInvalidInput
	}

	if !c.catalogService.IsKnownEventType(eventTypeID) {
		c.logger.Info("unknown event type, seeding generic checklist",
			zap.String("event_type", eventTypeID))
	}
	session.EventTypeID = eventTypeID
	session.Checklist = c.catalogService.ChecklistFor(eventTypeID)
	session.Step = session_models.StepVendorChecklist

	name := c.catalogService.EventTypeName(eventTypeID)
	session.AppendMessage(session_models.RoleUser, name)
	session.AppendMessage(session_models.RoleAssistant,
		fmt.Sprintf("Great, a %s! Here are the vendor types I recommend. Toggle any you don't need, then confirm.", name))
	return c.snapshot(session), nil
}

func (c *ConversationService) ToggleChecklistItem(ctx context.Context, sessionID, category string) (*response_models.ConversationSnapshot, error) {
	session, err := c.session(sessionID)
	if err != nil {
		return nil, err
	}
	session.Lock()
	defer session.Unlock()

	if session.Step != session_models.StepVendorChecklist {
		return nil, utils.ErrInvalidStep
	}
	for i := range session.Checklist {
		if session.Checklist[i].Category == category {
			session.Checklist[i].Selected = !session.Checklist[i].Selected
			return c.snapshot(session), nil
		}
	}
	return nil, utils.ErrInvalidInput
}

func (c *ConversationService) ConfirmChecklist(ctx context.Context, sessionID string) (*response_models.ConversationSnapshot, error) {
	session, err := c.session(sessionID)
	if err != nil {
		return nil, err
	}
	session.Lock()
	defer session.Unlock()

	if session.Step != session_models.StepVendorChecklist {
		return nil, utils.ErrInvalidStep
	}
	if len(selectedCategories(session)) == 0 {
		return nil, utils.ErrInvalidInput
	}

	session.Step = session_models.StepEnterLocation
	session.AppendMessage(session_models.RoleUser, "Checklist confirmed")
	session.AppendMessage(session_models.RoleAssistant, "Which city is the event in?")
	return c.snapshot(session), nil
}

func (c *ConversationService) ConfirmLocation(ctx context.Context, sessionID, location string) (*response_models.ConversationSnapshot, error) {
	session, err := c.session(sessionID)
	if err != nil {
		return nil, err
	}
	session.Lock()
	defer session.Unlock()

	if session.Step != session_models.StepEnterLocation {
		return nil, utils.ErrInvalidStep
	}
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, utils.ErrInvalidInput
	}

	session.Location = location
	session.Step = session_models.StepEnterBudget
	session.AppendMessage(session_models.RoleUser, location)
	session.AppendMessage(session_models.RoleAssistant,
		"And what is your total budget for the event?")
	return c.snapshot(session), nil
}

func (c *ConversationService) ConfirmBudget(ctx context.Context, sessionID, rawBudget string) (*response_models.ConversationSnapshot, error) {
	session, err := c.session(sessionID)
	if err != nil {
		return nil, err
	}
	session.Lock()
	defer session.Unlock()

	if session.Step != session_models.StepEnterBudget {
		return nil, utils.ErrInvalidStep
	}
	budget, err := parseBudget(rawBudget)
	if err != nil {
		// Invalid input blocks the transition with no side effect.
		return nil, err
	}

	allocation, err := c.allocService.Allocate(session.EventTypeID, budget, session.SplitMode)
	if err != nil {
		return nil, err
	}

	session.Budget = budget
	session.Allocation = allocation
	session.Step = session_models.StepBudgetAllocation
	session.AppendMessage(session_models.RoleUser, "₹"+utils.GroupIndianDigits(budget))
	session.AppendMessage(session_models.RoleAssistant,
		"Here is how I'd split that across your vendor categories. Adjust the split mode if you prefer, then continue to vendors.")
	return c.snapshot(session), nil
}

func (c *ConversationService) SetSplitMode(ctx context.Context, sessionID, mode string) (*response_models.ConversationSnapshot, error) {
	session, err := c.session(sessionID)
	if err != nil {
		return nil, err
	}
	session.Lock()
	defer session.Unlock()

	if session.Step != session_models.StepBudgetAllocation {
		return nil, utils.ErrInvalidStep
	}
	splitMode := config.SplitMode(mode)
	if splitMode != config.SplitProportional && splitMode != config.SplitEqual {
		return nil, utils.ErrInvalidInput
	}

	// Always a full recompute, never an incremental update.
	allocation, err := c.allocService.Allocate(session.EventTypeID, session.Budget, splitMode)
	if err != nil {
		return nil, err
	}
	session.SplitMode = splitMode
	session.Allocation = allocation
	return c.snapshot(session), nil
}

func (c *ConversationService) Recommendations(ctx context.Context, sessionID string) (*response_models.RecommendationResponse, error) {
	session, err := c.session(sessionID)
	if err != nil {
		return nil, err
	}
	session.Lock()
	defer session.Unlock()

	// First call advances from the allocation step; later calls refresh.
	switch session.Step {
	case session_models.StepBudgetAllocation:
		session.Step = session_models.StepRecommendations
		session.AppendMessage(session_models.RoleAssistant,
			"Here are vendors in "+session.Location+" for your checklist. Tap the ones you want quotes from.")
	case session_models.StepRecommendations:
	default:
		return nil, utils.ErrInvalidStep
	}

	result, err := c.vendorService.Recommend(ctx, session.Location, selectedCategories(session))
	if err != nil {
		return nil, err
	}

	refs := make([]session_models.VendorRef, 0, len(result.Vendors))
	for i := range result.Vendors {
		refs = append(refs, session_models.VendorRef{
			ID:       result.Vendors[i].ID,
			Name:     result.Vendors[i].Name,
			Category: result.Vendors[i].Category,
		})
		// A refresh never drops selections already made.
		result.Vendors[i].Selected = session.IsSelected(result.Vendors[i].ID)
	}
	session.RememberVendors(refs)
	return result, nil
}

func (c *ConversationService) ToggleVendor(ctx context.Context, sessionID, vendorID string) (*response_models.ConversationSnapshot, error) {
	session, err := c.session(sessionID)
	if err != nil {
		return nil, err
	}
	session.Lock()
	defer session.Unlock()

	if session.Step != session_models.StepRecommendations {
		return nil, utils.ErrInvalidStep
	}
	session.ToggleSelection(vendorID)
	return c.snapshot(session), nil
}

func (c *ConversationService) ConfirmSelection(ctx context.Context, sessionID string) (*response_models.ConversationSnapshot, error) {
	session, err := c.session(sessionID)
	if err != nil {
		return nil, err
	}
	session.Lock()
	defer session.Unlock()

	if session.Step != session_models.StepRecommendations {
		return nil, utils.ErrInvalidStep
	}
	if session.SelectionCount() < 1 {
		return nil, utils.ErrNoVendorsSelected
	}

	session.Step = session_models.StepCollectContact
	session.AppendMessage(session_models.RoleUser,
		fmt.Sprintf("Selected %d vendors", session.SelectionCount()))
	session.AppendMessage(session_models.RoleAssistant,
		"Almost done. Share your name and phone number so the vendors can reach you.")
	return c.snapshot(session), nil
}

func (c *ConversationService) Submit(ctx context.Context, sessionID string, req request_models.SubmitRequest) (*response_models.SubmissionResponse, error) {
	session, err := c.session(sessionID)
	if err != nil {
		return nil, err
	}
	session.Lock()
	defer session.Unlock()

	// Retry after a failed attempt re-enters from the error step.
	if session.Step != session_models.StepCollectContact && session.Step != session_models.StepError {
		return nil, utils.ErrInvalidStep
	}

	// Validation precedes the pending message and every external call, so
	// a rejected submit leaves the session untouched.
	if strings.TrimSpace(req.CustomerName) == "" || strings.TrimSpace(req.CustomerPhone) == "" {
		return nil, utils.ErrContactRequired
	}
	if session.SelectionCount() < 1 {
		return nil, utils.ErrNoVendorsSelected
	}

	session.Step = session_models.StepSubmitting
	session.AppendMessage(session_models.RoleAssistant, "Sending your request...")

	result, err := c.requestService.Submit(ctx, SubmissionInput{
		EventType:        session.EventTypeID,
		Location:         session.Location,
		Budget:           session.Budget,
		CustomerName:     strings.TrimSpace(req.CustomerName),
		CustomerPhone:    strings.TrimSpace(req.CustomerPhone),
		SpecialRequests:  strings.TrimSpace(req.SpecialRequests),
		RequestType:      "consultation",
		UserID:           session.UserID,
		SessionRequestID: session.SubmittedRequestID,
		Vendors:          session.SelectedVendors(),
	})
	if err != nil {
		switch err {
		case utils.ErrNoVendorsSelected, utils.ErrContactRequired, utils.ErrInvalidInput:
			// Validation failures leave no external state; re-prompt.
			session.Step = session_models.StepCollectContact
		default:
			session.Step = session_models.StepError
			session.AppendMessage(session_models.RoleAssistant,
				"Something went wrong saving your request. Please try again.")
		}
		return nil, err
	}

	session.SubmittedRequestID = result.RequestID
	session.Step = session_models.StepCompleted
	if result.Duplicate {
		session.AppendMessage(session_models.RoleAssistant,
			"You already have a consultation request with us. Your reference number is "+result.RequestID+".")
	} else {
		session.AppendMessage(session_models.RoleAssistant,
			"All set! Your reference number is "+result.RequestID+". Our team will reach out shortly.")
	}
	return result, nil
}

func (c *ConversationService) Restart(ctx context.Context, sessionID string) (*response_models.ConversationSnapshot, error) {
	session, err := c.session(sessionID)
	if err != nil {
		return nil, err
	}
	session.Lock()
	defer session.Unlock()

	if session.Step == session_models.StepSubmitting {
		return nil, utils.ErrInvalidStep
	}
	session.Restart()
	session.AppendMessage(session_models.RoleAssistant,
		"Let's start over. What are you celebrating?")
	return c.snapshot(session), nil
}

func (c *ConversationService) session(sessionID string) (*session_models.Session, error) {
	session, ok := c.sessions.Get(sessionID)
	if !ok {
		return nil, utils.ErrSessionNotFound
	}
	return session, nil
}

func selectedCategories(session *session_models.Session) []string {
	var out []string
	for _, item := range session.Checklist {
		if item.Selected {
			out = append(out, item.Category)
		}
	}
	return out
}

// snapshot renders the session read model. Callers must hold the session
// lock.
func (c *ConversationService) snapshot(session *session_models.Session) *response_models.ConversationSnapshot {
	out := &response_models.ConversationSnapshot{
		SessionID: session.ID.String(),
		Step:      string(session.Step),
		EventType: session.EventTypeID,
		Location:  session.Location,
		Budget:    session.Budget,
		SplitMode: string(session.SplitMode),
		RequestID: session.SubmittedRequestID,
	}
	for _, item := range session.Checklist {
		out.Checklist = append(out.Checklist, response_models.ChecklistEntry{
			Category: item.Category,
			Selected: item.Selected,
		})
	}
	for _, entry := range session.Allocation {
		out.Allocation = append(out.Allocation, response_models.AllocationEntry{
			Category: entry.Category,
			Amount:   entry.Amount,
		})
	}
	out.SelectedIDs = session.SelectedIDs()
	for _, msg := range session.Messages() {
		out.Messages = append(out.Messages, response_models.Message{Role: msg.Role, Text: msg.Text})
	}
	if session.Step == session_models.StepSelectEventType {
		out.EventTypes = c.catalogService.ListEventTypes()
	}
	return out
}

// parseBudget accepts the raw text the user typed: digits with optional
// rupee sign, separators and whitespace. Anything that does not resolve to
// a positive whole number blocks the step.
func parseBudget(raw string) (int64, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "₹")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	if cleaned == "" {
		return 0, utils.ErrInvalidBudget
	}
	budget, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil || budget <= 0 {
		return 0, utils.ErrInvalidBudget
	}
	return budget, nil
}
