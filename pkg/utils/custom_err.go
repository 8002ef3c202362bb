package utils

import "errors"

var (
	ErrDestinationRequired = errors.New("destination is required")
	ErrDestinationNotFound = errors.New("destination not found")
	ErrInvalidDateRange    = errors.New("end date precedes start date")
	ErrMissingAPIKey       = errors.New("maps api key is not configured")
	ErrUpstream            = errors.New("upstream maps service error")
)
