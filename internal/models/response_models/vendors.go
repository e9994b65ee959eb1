package response_models

type Vendor struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	City         string  `json:"city"`
	Price        int64   `json:"price"`
	Rating       float64 `json:"rating"`
	Description  string  `json:"description"`
	ContactEmail string  `json:"contact_email"`
	ContactPhone string  `json:"contact_phone"`
	ImageURL     string  `json:"image_url"`

	Images []string `json:"images,omitempty"`

	// Presentation-only fields. DisplayPrice is derived from Price and
	// ReviewCount is a placeholder; neither is ever persisted.
	DisplayPrice string `json:"display_price"`
	ReviewCount  int    `json:"review_count"`

	Selected bool `json:"selected"`
}

// RecommendationResponse carries the vendors shown for the current step
// together with the source that served them, so callers can tell a live
// directory result from the bundled fallback set.
type RecommendationResponse struct {
	Source  string   `json:"source"`
	Vendors []Vendor `json:"vendors"`
}
