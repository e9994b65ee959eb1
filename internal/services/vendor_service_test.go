package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"utsav/internal/models/db_models"
)

type fakeVendorRepo struct {
	vendors []db_models.Vendor
	err     error
	calls   int
}

func (f *fakeVendorRepo) ListByCity(ctx context.Context, city string) ([]db_models.Vendor, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.vendors, nil
}

func testVendor(name, category, city string, price int64) db_models.Vendor {
	return db_models.Vendor{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		Name:      name,
		Category:  category,
		City:      city,
		Price:     price,
		Rating:    4.5,
		Status:    "active",
	}
}

func TestRecommend_FiltersToSelectedCategories(t *testing.T) {
	repo := &fakeVendorRepo{vendors: []db_models.Vendor{
		testVendor("Hall One", "Venue", "Mumbai", 200000),
		testVendor("Tasty Bites", "Caterer", "Mumbai", 900),
		testVendor("Shutterbug", "Photographer", "Mumbai", 60000),
	}}
	svc := NewVendorService(repo, zap.NewNop())

	result, err := svc.Recommend(context.Background(), "Mumbai", []string{"Venue", "Caterer"})
	require.NoError(t, err)

	assert.Equal(t, SourceLive, result.Source)
	require.Len(t, result.Vendors, 2)
	for _, v := range result.Vendors {
		assert.Contains(t, []string{"Venue", "Caterer"}, v.Category)
	}
}

func TestRecommend_DirectoryFailureServesFilteredFallback(t *testing.T) {
	repo := &fakeVendorRepo{err: errors.New("connection refused")}
	svc := NewVendorService(repo, zap.NewNop())

	result, err := svc.Recommend(context.Background(), "Mumbai", []string{"Caterer", "Decorator"})
	require.NoError(t, err, "directory failure must never surface as an error")

	assert.Equal(t, SourceFallback, result.Source)
	assert.NotEmpty(t, result.Vendors)
	for _, v := range result.Vendors {
		assert.Contains(t, []string{"Caterer", "Decorator"}, v.Category,
			"fallback must be filtered exactly like a live result")
	}
}

func TestRecommend_FallbackCanBeLegitimatelyEmpty(t *testing.T) {
	repo := &fakeVendorRepo{err: errors.New("timeout")}
	svc := NewVendorService(repo, zap.NewNop())

	result, err := svc.Recommend(context.Background(), "Mumbai", []string{"IceSculptor"})
	require.NoError(t, err)
	assert.Equal(t, SourceFallback, result.Source)
	assert.Empty(t, result.Vendors)
}

func TestRecommend_RejectsEmptyCategorySet(t *testing.T) {
	repo := &fakeVendorRepo{}
	svc := NewVendorService(repo, zap.NewNop())

	_, err := svc.Recommend(context.Background(), "Mumbai", nil)
	assert.Error(t, err)
	assert.Zero(t, repo.calls, "validation failures make no directory call")
}

func TestRecommend_AttachesPresentationFields(t *testing.T) {
	repo := &fakeVendorRepo{vendors: []db_models.Vendor{
		testVendor("Hall One", "Venue", "Mumbai", 1234567),
	}}
	svc := NewVendorService(repo, zap.NewNop())

	result, err := svc.Recommend(context.Background(), "Mumbai", []string{"Venue"})
	require.NoError(t, err)
	require.Len(t, result.Vendors, 1)

	assert.Equal(t, "₹12,34,567 onwards", result.Vendors[0].DisplayPrice)
	assert.Greater(t, result.Vendors[0].ReviewCount, 0)
}
