package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidBudget      = errors.New("budget must be a positive whole number")
	ErrInvalidStep        = errors.New("action not valid for the current step")
	ErrNoVendorsSelected  = errors.New("no vendors selected")
	ErrContactRequired    = errors.New("contact name and phone are required")
	ErrSessionNotFound    = errors.New("conversation session not found")
	ErrRequestNotFound    = errors.New("planning request not found")
	ErrRequestWriteFailed = errors.New("planning request could not be saved")
	ErrDatabaseError      = errors.New("database error")
)
