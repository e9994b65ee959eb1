package repositories

import (
	"context"

	"gorm.io/gorm"
	"utsav/internal/models/db_models"
)

// VendorRepository is the read-only view over the external vendor
// directory. Only active vendors are ever returned.
type VendorRepository interface {
	ListByCity(ctx context.Context, city string) ([]db_models.Vendor, error)
}

type vendorRepository struct {
	db *gorm.DB
}

func NewVendorRepository(db *gorm.DB) VendorRepository {
	return &vendorRepository{db: db}
}

func (r *vendorRepository) ListByCity(ctx context.Context, city string) ([]db_models.Vendor, error) {
	var vendors []db_models.Vendor
	err := r.db.WithContext(ctx).
		Where("status = ?", "active").
		Where("LOWER(city) = LOWER(?)", city).
		Order("rating DESC").
		Find(&vendors).Error
	return vendors, err
}
