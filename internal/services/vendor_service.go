package services

import (
	"context"
	"math/rand"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"utsav/internal/models/db_models"
	"utsav/internal/models/response_models"
	"utsav/internal/repositories"
	"utsav/pkg/utils"
)

const (
	SourceLive     = "live"
	SourceFallback = "fallback"
)

// VendorServiceInterface finds vendors for the selected categories in a
// location. A directory failure is absorbed: the bundled sample set is
// served instead, filtered identically, and the result is tagged with its
// source. Recommend never fails outright; an empty filtered result is a
// valid successful outcome.
type VendorServiceInterface interface {
	Recommend(ctx context.Context, city string, categories []string) (*response_models.RecommendationResponse, error)
}

type VendorService struct {
	vendorRepo repositories.VendorRepository
	logger     *zap.Logger
}

func NewVendorService(vendorRepo repositories.VendorRepository, logger *zap.Logger) VendorServiceInterface {
	return &VendorService{vendorRepo: vendorRepo, logger: logger}
}

func (s *VendorService) Recommend(ctx context.Context, city string, categories []string) (*response_models.RecommendationResponse, error) {
	if len(categories) == 0 {
		return nil, utils.ErrInvalidInput
	}

	source := SourceLive
	vendors, err := s.vendorRepo.ListByCity(ctx, city)
	if err != nil {
		s.logger.Warn("vendor directory unavailable, serving sample set",
			zap.String("city", city),
			zap.Error(err))
		source = SourceFallback
		vendors = sampleVendors
	}

	wanted := lo.SliceToMap(categories, func(c string) (string, struct{}) {
		return c, struct{}{}
	})
	matched := lo.Filter(vendors, func(v db_models.Vendor, _ int) bool {
		_, ok := wanted[v.Category]
		return ok
	})

	return &response_models.RecommendationResponse{
		Source:  source,
		Vendors: lo.Map(matched, func(v db_models.Vendor, _ int) response_models.Vendor {
			return projectVendor(v)
		}),
	}, nil
}

// projectVendor attaches the cosmetic display price and a review-count
// placeholder. Both are presentation-only and are never written back to
// the directory or the request store.
func projectVendor(v db_models.Vendor) response_models.Vendor {
	return response_models.Vendor{
		ID:           v.ID.String(),
		Name:         v.Name,
		Category:     v.Category,
		City:         v.City,
		Price:        v.Price,
		Rating:       v.Rating,
		Description:  v.Description,
		ContactEmail: v.ContactEmail,
		ContactPhone: v.ContactPhone,
		ImageURL:     v.ImageURL,
		Images:       v.Images,
		DisplayPrice: utils.FormatDisplayPrice(v.Price),
		ReviewCount:  20 + rand.Intn(180),
	}
}
