package services

import (
	"github.com/google/uuid"
	"utsav/internal/models/db_models"
)

// sampleVendors is the bundled fallback set served when the vendor
// directory is unreachable. Shapes mirror the directory projection; the
// city field is deliberately generic so the location filter is skipped for
// fallback data (a degraded answer beats an empty screen).
var sampleVendors = []db_models.Vendor{
	{
		BaseModel:    db_models.BaseModel{ID: uuid.MustParse("7a3f8a6e-1d24-4c8a-9a61-111111111111")},
		Name:         "Royal Orchid Banquets",
		Category:     "Venue",
		City:         "Mumbai",
		Price:        250000,
		Rating:       4.6,
		Description:  "Banquet halls for 200-800 guests with in-house decor support.",
		ContactEmail: "bookings@royalorchid.example",
		ContactPhone: "+91 98200 11001",
		Status:       "active",
	},
	{
		BaseModel:    db_models.BaseModel{ID: uuid.MustParse("7a3f8a6e-1d24-4c8a-9a61-222222222222")},
		Name:         "Saffron Spice Caterers",
		Category:     "Caterer",
		City:         "Mumbai",
		Price:        850,
		Rating:       4.8,
		Description:  "Multi-cuisine catering, live counters, per-plate pricing.",
		ContactEmail: "hello@saffronspice.example",
		ContactPhone: "+91 98200 11002",
		Status:       "active",
	},
	{
		BaseModel:    db_models.BaseModel{ID: uuid.MustParse("7a3f8a6e-1d24-4c8a-9a61-333333333333")},
		Name:         "Bloom & Drape Decorators",
		Category:     "Decorator",
		City:         "Pune",
		Price:        120000,
		Rating:       4.5,
		Description:  "Floral mandaps, stage setups and themed decor.",
		ContactEmail: "contact@bloomdrape.example",
		ContactPhone: "+91 98200 11003",
		Status:       "active",
	},
	{
		BaseModel:    db_models.BaseModel{ID: uuid.MustParse("7a3f8a6e-1d24-4c8a-9a61-444444444444")},
		Name:         "Candid Frames Studio",
		Category:     "Photographer",
		City:         "Mumbai",
		Price:        75000,
		Rating:       4.7,
		Description:  "Candid photography and cinematic wedding films.",
		ContactEmail: "shoot@candidframes.example",
		ContactPhone: "+91 98200 11004",
		Status:       "active",
	},
	{
		BaseModel:    db_models.BaseModel{ID: uuid.MustParse("7a3f8a6e-1d24-4c8a-9a61-555555555555")},
		Name:         "Glow Up Makeup Artistry",
		Category:     "MakeupArtist",
		City:         "Delhi",
		Price:        35000,
		Rating:       4.4,
		Description:  "Bridal and party makeup, on-location service.",
		ContactEmail: "book@glowup.example",
		ContactPhone: "+91 98200 11005",
		Status:       "active",
	},
	{
		BaseModel:    db_models.BaseModel{ID: uuid.MustParse("7a3f8a6e-1d24-4c8a-9a61-666666666666")},
		Name:         "BassLine Sound & Lights",
		Category:     "SoundLighting",
		City:         "Pune",
		Price:        60000,
		Rating:       4.3,
		Description:  "DJ rigs, stage lighting and sound engineering crews.",
		ContactEmail: "events@bassline.example",
		ContactPhone: "+91 98200 11006",
		Status:       "active",
	},
	{
		BaseModel:    db_models.BaseModel{ID: uuid.MustParse("7a3f8a6e-1d24-4c8a-9a61-777777777777")},
		Name:         "Masti Entertainment Co",
		Category:     "Entertainment",
		City:         "Delhi",
		Price:        45000,
		Rating:       4.2,
		Description:  "Live bands, dance troupes and celebrity appearances.",
		ContactEmail: "talent@masti.example",
		ContactPhone: "+91 98200 11007",
		Status:       "active",
	},
	{
		BaseModel:    db_models.BaseModel{ID: uuid.MustParse("7a3f8a6e-1d24-4c8a-9a61-888888888888")},
		Name:         "Mic Drop Anchors",
		Category:     "Anchor",
		City:         "Mumbai",
		Price:        25000,
		Rating:       4.1,
		Description:  "Bilingual emcees for weddings and corporate events.",
		ContactEmail: "host@micdrop.example",
		ContactPhone: "+91 98200 11008",
		Status:       "active",
	},
}
