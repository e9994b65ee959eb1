package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"utsav/internal/models/db_models"
)

type RequestRepository interface {
	CreateRequest(ctx context.Context, request *db_models.PlanningRequest) error
	CreateInterest(ctx context.Context, interest *db_models.VendorInterest) error
	// FindByUserAndType returns the newest matching request, or nil when
	// the user has none. Used for the best-effort dedupe read.
	FindByUserAndType(ctx context.Context, userID uuid.UUID, requestType string) (*db_models.PlanningRequest, error)
	GetRequestByID(ctx context.Context, id string) (*db_models.PlanningRequest, error)
}

type requestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) CreateRequest(ctx context.Context, request *db_models.PlanningRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *requestRepository) CreateInterest(ctx context.Context, interest *db_models.VendorInterest) error {
	return r.db.WithContext(ctx).Create(interest).Error
}

func (r *requestRepository) FindByUserAndType(ctx context.Context, userID uuid.UUID, requestType string) (*db_models.PlanningRequest, error) {
	var request db_models.PlanningRequest
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND request_type = ?", userID, requestType).
		Order("created_at DESC").
		First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

func (r *requestRepository) GetRequestByID(ctx context.Context, id string) (*db_models.PlanningRequest, error) {
	var request db_models.PlanningRequest
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Preload("Interests").
		First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}
