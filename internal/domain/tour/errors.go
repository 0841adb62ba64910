package tour

import "errors"

var (
	ErrTourNotFound       = errors.New("tour not found")
	ErrMissingBookingData = errors.New("missing required fields: tourId, customerName, email")
)
