package tour

// ToursResponse wraps the catalog list payload.
type ToursResponse struct {
	Tours []Tour `json:"tours"`
}

// TourResponse wraps a single tour payload.
type TourResponse struct {
	Tour *Tour `json:"tour"`
}

// BookingCreatedResponse is the body of a successful booking submission.
type BookingCreatedResponse struct {
	Message string   `json:"message"`
	Booking *Booking `json:"booking"`
}
