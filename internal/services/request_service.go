package services

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"utsav/internal/config"
	"utsav/internal/models/db_models"
	"utsav/internal/models/response_models"
	"utsav/internal/models/session_models"
	"utsav/internal/repositories"
	"utsav/pkg/utils"
)

// SubmissionInput carries everything the coordinator needs, collected by
// the conversation controller before any external call is made.
type SubmissionInput struct {
	EventType       string `validate:"required"`
	Location        string `validate:"required"`
	Budget          int64  `validate:"gt=0"`
	CustomerName    string `validate:"required"`
	CustomerPhone   string `validate:"required"`
	SpecialRequests string
	RequestType     string `validate:"required"`

	// UserID is empty for anonymous sessions; dedupe is skipped then.
	UserID string

	// SessionRequestID is the session-local already-submitted flag.
	SessionRequestID string

	Vendors []session_models.VendorRef
}

type RequestServiceInterface interface {
	Submit(ctx context.Context, input SubmissionInput) (*response_models.SubmissionResponse, error)
	GetRequestByID(ctx context.Context, id string) (*response_models.PlanningRequestResponse, error)
}

type RequestService struct {
	requestRepo repositories.RequestRepository
	cfg         *config.PlannerConfig
	validate    *validator.Validate
	logger      *zap.Logger
}

func NewRequestService(requestRepo repositories.RequestRepository, cfg *config.PlannerConfig, logger *zap.Logger) RequestServiceInterface {
	return &RequestService{
		requestRepo: requestRepo,
		cfg:         cfg,
		validate:    validator.New(),
		logger:      logger,
	}
}

// Submit runs the strictly ordered submission protocol: validate, dedupe,
// parent write, child writes. The parent write is the point of no return;
// child failures are logged and never roll it back.
func (s *RequestService) Submit(ctx context.Context, input SubmissionInput) (*response_models.SubmissionResponse, error) {
	if len(input.Vendors) == 0 {
		return nil, utils.ErrNoVendorsSelected
	}
	if err := s.validate.Struct(input); err != nil {
		if input.CustomerName == "" || input.CustomerPhone == "" {
			return nil, utils.ErrContactRequired
		}
		return nil, utils.ErrInvalidInput
	}

	if id, ok := s.findDuplicate(ctx, input); ok {
		return &response_models.SubmissionResponse{RequestID: id, Duplicate: true}, nil
	}

	var userID *uuid.UUID
	if input.UserID != "" {
		if parsed, err := uuid.Parse(input.UserID); err == nil {
			userID = &parsed
		}
	}

	request := &db_models.PlanningRequest{
		EventType:       input.EventType,
		Location:        input.Location,
		Budget:          input.Budget,
		CustomerName:    input.CustomerName,
		CustomerPhone:   input.CustomerPhone,
		SpecialRequests: input.SpecialRequests,
		Status:          db_models.RequestStatusPending,
		VendorCount:     len(input.Vendors),
		RequestType:     input.RequestType,
		UserID:          userID,
	}
	if err := s.requestRepo.CreateRequest(ctx, request); err != nil {
		s.logger.Error("parent request write failed", zap.Error(err))
		return nil, utils.ErrRequestWriteFailed
	}

	for _, vendor := range input.Vendors {
		vendorID, err := uuid.Parse(vendor.ID)
		if err != nil {
			s.logger.Error("skipping interest row with malformed vendor id",
				zap.String("vendor_id", vendor.ID),
				zap.String("request_id", request.ID.String()))
			continue
		}
		interest := &db_models.VendorInterest{
			RequestID:      request.ID,
			VendorID:       vendorID,
			VendorName:     vendor.Name,
			VendorCategory: vendor.Category,
			Status:         db_models.RequestStatusPending,
		}
		if err := s.requestRepo.CreateInterest(ctx, interest); err != nil {
			// The parent record already captures the user's intent.
			s.logger.Error("vendor interest write failed",
				zap.String("request_id", request.ID.String()),
				zap.String("vendor_id", vendor.ID),
				zap.Error(err))
		}
	}

	return &response_models.SubmissionResponse{RequestID: request.ID.String()}, nil
}

// findDuplicate is the best-effort consultation dedupe. The session flag
// and the store existence check are consulted in configured order; the
// check-then-act race across sessions is documented and deliberately not
// closed. Only consultation requests dedupe.
func (s *RequestService) findDuplicate(ctx context.Context, input SubmissionInput) (string, bool) {
	if input.RequestType != db_models.RequestTypeConsultation {
		return "", false
	}

	sessionCheck := func() (string, bool) {
		return input.SessionRequestID, input.SessionRequestID != ""
	}
	storeCheck := func() (string, bool) {
		if input.UserID == "" {
			return "", false
		}
		userID, err := uuid.Parse(input.UserID)
		if err != nil {
			return "", false
		}
		prior, err := s.requestRepo.FindByUserAndType(ctx, userID, input.RequestType)
		if err != nil {
			s.logger.Warn("dedupe existence check failed, proceeding", zap.Error(err))
			return "", false
		}
		if prior == nil {
			return "", false
		}
		return prior.ID.String(), true
	}

	checks := []func() (string, bool){sessionCheck, storeCheck}
	if s.cfg.Dedupe == config.DedupeStoreFirst {
		checks = []func() (string, bool){storeCheck, sessionCheck}
	}
	for _, check := range checks {
		if id, ok := check(); ok {
			return id, true
		}
	}
	return "", false
}

func (s *RequestService) GetRequestByID(ctx context.Context, id string) (*response_models.PlanningRequestResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, utils.ErrInvalidInput
	}

	request, err := s.requestRepo.GetRequestByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if request == nil {
		return nil, utils.ErrRequestNotFound
	}

	out := &response_models.PlanningRequestResponse{
		ID:              request.ID.String(),
		EventType:       request.EventType,
		Location:        request.Location,
		Budget:          request.Budget,
		CustomerName:    request.CustomerName,
		CustomerPhone:   request.CustomerPhone,
		SpecialRequests: request.SpecialRequests,
		Status:          request.Status,
		VendorCount:     request.VendorCount,
		RequestType:     request.RequestType,
	}
	for _, interest := range request.Interests {
		out.Interests = append(out.Interests, response_models.VendorInterestEntry{
			VendorID:       interest.VendorID.String(),
			VendorName:     interest.VendorName,
			VendorCategory: interest.VendorCategory,
			Status:         interest.Status,
		})
	}
	return out, nil
}
