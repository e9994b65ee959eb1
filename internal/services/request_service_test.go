package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"utsav/internal/config"
	"utsav/internal/models/db_models"
	"utsav/internal/models/session_models"
)

type fakeRequestRepo struct {
	requests  []*db_models.PlanningRequest
	interests []*db_models.VendorInterest

	createRequestErr  error
	createInterestErr error
	findErr           error

	findCalls int
}

func (f *fakeRequestRepo) CreateRequest(ctx context.Context, request *db_models.PlanningRequest) error {
	if f.createRequestErr != nil {
		return f.createRequestErr
	}
	if request.ID == uuid.Nil {
		request.ID = uuid.New()
	}
	f.requests = append(f.requests, request)
	return nil
}

func (f *fakeRequestRepo) CreateInterest(ctx context.Context, interest *db_models.VendorInterest) error {
	if f.createInterestErr != nil {
		return f.createInterestErr
	}
	f.interests = append(f.interests, interest)
	return nil
}

func (f *fakeRequestRepo) FindByUserAndType(ctx context.Context, userID uuid.UUID, requestType string) (*db_models.PlanningRequest, error) {
	f.findCalls++
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, r := range f.requests {
		if r.UserID != nil && *r.UserID == userID && r.RequestType == requestType {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeRequestRepo) GetRequestByID(ctx context.Context, id string) (*db_models.PlanningRequest, error) {
	for _, r := range f.requests {
		if r.ID.String() == id {
			return r, nil
		}
	}
	return nil, nil
}

func validSubmission() SubmissionInput {
	return SubmissionInput{
		EventType:     "wedding",
		Location:      "Mumbai",
		Budget:        100000,
		CustomerName:  "Priya Sharma",
		CustomerPhone: "+91 98200 00001",
		RequestType:   db_models.RequestTypeConsultation,
		Vendors: []session_models.VendorRef{
			{ID: uuid.NewString(), Name: "Saffron Spice Caterers", Category: "Caterer"},
			{ID: uuid.NewString(), Name: "Candid Frames Studio", Category: "Photographer"},
		},
	}
}

func newRequestService(repo *fakeRequestRepo, dedupe config.DedupePrecedence) RequestServiceInterface {
	cfg := config.DefaultPlannerConfig()
	cfg.Dedupe = dedupe
	return NewRequestService(repo, cfg, zap.NewNop())
}

func TestSubmit_WritesParentAndChildren(t *testing.T) {
	repo := &fakeRequestRepo{}
	svc := newRequestService(repo, config.DedupeStoreFirst)

	result, err := svc.Submit(context.Background(), validSubmission())
	require.NoError(t, err)

	require.Len(t, repo.requests, 1)
	parent := repo.requests[0]
	assert.Equal(t, result.RequestID, parent.ID.String())
	assert.Equal(t, "wedding", parent.EventType)
	assert.Equal(t, db_models.RequestStatusPending, parent.Status)
	assert.Equal(t, 2, parent.VendorCount)
	assert.False(t, result.Duplicate)

	require.Len(t, repo.interests, 2)
	for _, interest := range repo.interests {
		assert.Equal(t, parent.ID, interest.RequestID)
		assert.Equal(t, db_models.RequestStatusPending, interest.Status)
	}
}

func TestSubmit_EmptySelectionRejectedBeforeAnyWrite(t *testing.T) {
	repo := &fakeRequestRepo{}
	svc := newRequestService(repo, config.DedupeStoreFirst)

	input := validSubmission()
	input.UserID = uuid.NewString()
	input.Vendors = nil

	_, err := svc.Submit(context.Background(), input)
	assert.Error(t, err)
	assert.Empty(t, repo.requests)
	assert.Empty(t, repo.interests)
	assert.Zero(t, repo.findCalls, "validation failure must precede the dedupe read")
}

func TestSubmit_MissingContactRejected(t *testing.T) {
	repo := &fakeRequestRepo{}
	svc := newRequestService(repo, config.DedupeStoreFirst)

	input := validSubmission()
	input.CustomerName = ""
	_, err := svc.Submit(context.Background(), input)
	assert.Error(t, err)

	input = validSubmission()
	input.CustomerPhone = ""
	_, err = svc.Submit(context.Background(), input)
	assert.Error(t, err)

	assert.Empty(t, repo.requests)
}

func TestSubmit_SecondConsultationReturnsOriginalID(t *testing.T) {
	repo := &fakeRequestRepo{}
	svc := newRequestService(repo, config.DedupeStoreFirst)

	userID := uuid.NewString()
	input := validSubmission()
	input.UserID = userID

	first, err := svc.Submit(context.Background(), input)
	require.NoError(t, err)

	second, err := svc.Submit(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, first.RequestID, second.RequestID)
	assert.True(t, second.Duplicate)
	assert.Len(t, repo.requests, 1, "no second parent record")
}

func TestSubmit_SessionFirstDedupeShortCircuitsStore(t *testing.T) {
	repo := &fakeRequestRepo{}
	svc := newRequestService(repo, config.DedupeSessionFirst)

	priorID := uuid.NewString()
	input := validSubmission()
	input.UserID = uuid.NewString()
	input.SessionRequestID = priorID

	result, err := svc.Submit(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, priorID, result.RequestID)
	assert.True(t, result.Duplicate)
	assert.Zero(t, repo.findCalls, "session flag must win before the store read")
}

func TestSubmit_StoreFirstConsultsStoreBeforeSessionFlag(t *testing.T) {
	repo := &fakeRequestRepo{}
	svc := newRequestService(repo, config.DedupeStoreFirst)

	input := validSubmission()
	input.UserID = uuid.NewString()
	input.SessionRequestID = uuid.NewString()

	result, err := svc.Submit(context.Background(), input)
	require.NoError(t, err)

	assert.Positive(t, repo.findCalls)
	// Store had nothing, so the session flag still catches the duplicate.
	assert.Equal(t, input.SessionRequestID, result.RequestID)
	assert.True(t, result.Duplicate)
}

func TestSubmit_BookingRequestsNeverDedupe(t *testing.T) {
	repo := &fakeRequestRepo{}
	svc := newRequestService(repo, config.DedupeStoreFirst)

	input := validSubmission()
	input.RequestType = db_models.RequestTypeBooking
	input.UserID = uuid.NewString()

	first, err := svc.Submit(context.Background(), input)
	require.NoError(t, err)
	second, err := svc.Submit(context.Background(), input)
	require.NoError(t, err)

	assert.NotEqual(t, first.RequestID, second.RequestID)
	assert.Len(t, repo.requests, 2)
}

func TestSubmit_DedupeReadFailureIsBestEffort(t *testing.T) {
	repo := &fakeRequestRepo{findErr: errors.New("store down")}
	svc := newRequestService(repo, config.DedupeStoreFirst)

	input := validSubmission()
	input.UserID = uuid.NewString()

	result, err := svc.Submit(context.Background(), input)
	require.NoError(t, err, "a failed existence check must not block submission")
	assert.False(t, result.Duplicate)
	assert.Len(t, repo.requests, 1)
}

func TestSubmit_ParentWriteFailureIsFatal(t *testing.T) {
	repo := &fakeRequestRepo{createRequestErr: errors.New("disk full")}
	svc := newRequestService(repo, config.DedupeStoreFirst)

	_, err := svc.Submit(context.Background(), validSubmission())
	assert.Error(t, err)
	assert.Empty(t, repo.interests, "no children without a parent")
}

func TestSubmit_ChildWriteFailureStillSucceeds(t *testing.T) {
	repo := &fakeRequestRepo{createInterestErr: errors.New("constraint violation")}
	svc := newRequestService(repo, config.DedupeStoreFirst)

	result, err := svc.Submit(context.Background(), validSubmission())
	require.NoError(t, err, "the parent record is the authoritative evidence of intent")
	assert.NotEmpty(t, result.RequestID)
	assert.Len(t, repo.requests, 1)
	assert.Empty(t, repo.interests)
}

func TestGetRequestByID(t *testing.T) {
	repo := &fakeRequestRepo{}
	svc := newRequestService(repo, config.DedupeStoreFirst)

	result, err := svc.Submit(context.Background(), validSubmission())
	require.NoError(t, err)

	fetched, err := svc.GetRequestByID(context.Background(), result.RequestID)
	require.NoError(t, err)
	assert.Equal(t, "wedding", fetched.EventType)
	assert.Equal(t, 2, fetched.VendorCount)

	_, err = svc.GetRequestByID(context.Background(), uuid.NewString())
	assert.Error(t, err)

	_, err = svc.GetRequestByID(context.Background(), "not-a-uuid")
	assert.Error(t, err)
}
