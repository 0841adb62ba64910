package tour

import "strconv"

// Tour is the canonical tour entity served to clients. Instances are
// immutable values; `id` is the only stable join key across the catalog,
// the wishlist and booking drafts.
type Tour struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Price         int            `json:"price"`
	OriginalPrice int            `json:"originalPrice,omitempty"`
	Duration      string         `json:"duration"`
	Difficulty    string         `json:"difficulty"`
	GroupSize     string         `json:"groupSize"`
	Image         string         `json:"image"`
	Description   string         `json:"description"`
	Highlights    []string       `json:"highlights"`
	Inclusions    []string       `json:"inclusions"`
	Exclusions    []string       `json:"exclusions"`
	Itinerary     []ItineraryDay `json:"itinerary"`
}

// ItineraryDay is one day of a tour itinerary. Days are 1-based and may be
// a prefix of the full duration.
type ItineraryDay struct {
	Day         int      `json:"day"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Activities  []string `json:"activities"`
}

// Days extracts the day count from a duration string such as "12 Days" by
// taking the first run of digits. A string without digits yields 0.
func Days(duration string) int {
	i := 0
	for i < len(duration) && (duration[i] < '0' || duration[i] > '9') {
		i++
	}
	j := i
	for j < len(duration) && duration[j] >= '0' && duration[j] <= '9' {
		j++
	}
	if i == j {
		return 0
	}
	n, err := strconv.Atoi(duration[i:j])
	if err != nil {
		return 0
	}
	return n
}

// BookingRequest is the payload accepted by POST /api/tours/book. Only the
// presence of tourId, customerName and email is enforced.
type BookingRequest struct {
	TourID           string `json:"tourId" validate:"required"`
	TourTitle        string `json:"tourTitle"`
	CustomerName     string `json:"customerName" validate:"required"`
	Email            string `json:"email" validate:"required"`
	Phone            string `json:"phone"`
	Participants     int    `json:"participants"`
	StartDate        string `json:"startDate"`
	SpecialRequests  string `json:"specialRequests"`
	EmergencyContact string `json:"emergencyContact"`
	EmergencyPhone   string `json:"emergencyPhone"`
	TotalPrice       int    `json:"totalPrice"`
}

// Booking is a confirmed booking. The server assigns ID, Status and
// BookingDate; nothing is persisted.
type Booking struct {
	ID string `json:"id"`
	BookingRequest
	Status      string `json:"status"`
	BookingDate string `json:"bookingDate"`
}
