package handler

import "time"

// TimeFormat is the standard time format for API responses (RFC3339)
const TimeFormat = time.RFC3339

const (
	// ListingPreviewLength caps the preview text on listing entries.
	ListingPreviewLength = 200
	// CardPreviewLength caps the preview text on compact card entries.
	CardPreviewLength = 150
)
