package gateway

import "github.com/mapmytour/tour-api/internal/domain/tour"

func bookingFixture() tour.BookingRequest {
	return tour.BookingRequest{
		TourID:       "1",
		TourTitle:    "Himalayan Trek Adventure",
		CustomerName: "Jamie Doe",
		Email:        "jamie@example.com",
		Participants: 2,
		TotalPrice:   2400,
	}
}
