package db_models

import "github.com/lib/pq"

// Vendor is a read-only projection of the external vendor directory.
// This service never creates or updates vendors.
type Vendor struct {
	BaseModel
	Name         string
	Category     string
	City         string
	Price        int64
	Rating       float64
	Description  string
	ContactEmail string
	ContactPhone string
	ImageURL     string
	Images       pq.StringArray `gorm:"type:text[]"`
	Status       string
}
