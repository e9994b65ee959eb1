package vendor_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"utsav/internal/repositories"
	"utsav/internal/services"
)

var Module = fx.Provide(provideVendorRepo, provideVendorService)

func provideVendorRepo(db *gorm.DB) repositories.VendorRepository {
	return repositories.NewVendorRepository(db)
}

func provideVendorService(vendorRepo repositories.VendorRepository, logger *zap.Logger) services.VendorServiceInterface {
	return services.NewVendorService(vendorRepo, logger)
}
