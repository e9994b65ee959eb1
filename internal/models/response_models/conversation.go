package response_models

type EventTypeOption struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
}

type ChecklistEntry struct {
	Category string `json:"category"`
	Selected bool   `json:"selected"`
}

type Message struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

type AllocationEntry struct {
	Category string `json:"category"`
	Amount   int64  `json:"amount"`
}

// ConversationSnapshot is the full read model of a session, rendered after
// every accepted input event.
type ConversationSnapshot struct {
	SessionID     string            `json:"session_id"`
	Step          string            `json:"step"`
	EventType     string            `json:"event_type,omitempty"`
	Location      string            `json:"location,omitempty"`
	Budget        int64             `json:"budget,omitempty"`
	SplitMode     string            `json:"split_mode,omitempty"`
	Checklist     []ChecklistEntry  `json:"checklist,omitempty"`
	Allocation    []AllocationEntry `json:"allocation,omitempty"`
	SelectedIDs   []string          `json:"selected_vendor_ids,omitempty"`
	Messages      []Message         `json:"messages"`
	RequestID     string            `json:"request_id,omitempty"`
	EventTypes    []EventTypeOption `json:"event_types,omitempty"`
}

type SubmissionResponse struct {
	RequestID string `json:"request_id"`
	Duplicate bool   `json:"duplicate"`
}

type PlanningRequestResponse struct {
	ID              string                  `json:"id"`
	EventType       string                  `json:"event_type"`
	Location        string                  `json:"location"`
	Budget          int64                   `json:"budget"`
	CustomerName    string                  `json:"customer_name"`
	CustomerPhone   string                  `json:"customer_phone"`
	SpecialRequests string                  `json:"special_requests,omitempty"`
	Status          string                  `json:"status"`
	VendorCount     int                     `json:"vendor_count"`
	RequestType     string                  `json:"request_type"`
	Interests       []VendorInterestEntry   `json:"interests,omitempty"`
}

type VendorInterestEntry struct {
	VendorID       string `json:"vendor_id"`
	VendorName     string `json:"vendor_name"`
	VendorCategory string `json:"vendor_category"`
	Status         string `json:"status"`
}
