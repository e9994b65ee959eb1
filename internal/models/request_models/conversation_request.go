package request_models

type SelectEventTypeRequest struct {
	EventTypeID string `json:"event_type_id" binding:"required"`
}

type ToggleChecklistRequest struct {
	Category string `json:"category" binding:"required"`
}

type ConfirmLocationRequest struct {
	Location string `json:"location" binding:"required"`
}

type ConfirmBudgetRequest struct {
	// Raw user input, parsed and validated by the conversation service so
	// that a malformed amount blocks the step instead of failing the bind.
	Budget string `json:"budget" binding:"required"`
}

type SetSplitModeRequest struct {
	Mode string `json:"mode" binding:"required,oneof=proportional equal"`
}

type ToggleVendorRequest struct {
	VendorID string `json:"vendor_id" binding:"required,uuid"`
}

type SubmitRequest struct {
	CustomerName    string `json:"customer_name" binding:"required"`
	CustomerPhone   string `json:"customer_phone" binding:"required"`
	SpecialRequests string `json:"special_requests"`
}
