package tour

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mapmytour/tour-api/internal/pkg/response"
)

// Handler handles tour HTTP requests.
type Handler struct {
	service *Service
}

// NewHandler creates a new tour handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /api/tours
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	tours := h.service.ListTours(r.Context())
	response.OK(w, ToursResponse{Tours: tours})
}

// Get handles GET /api/tours/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	t, err := h.service.GetTour(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrTourNotFound) {
			response.NotFound(w, "Tour not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.OK(w, TourResponse{Tour: t})
}

// Book handles POST /api/tours/book
func (h *Handler) Book(w http.ResponseWriter, r *http.Request) {
	var req BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	booking, err := h.service.SubmitBooking(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrMissingBookingData) {
			response.BadRequest(w, "Missing required fields: tourId, customerName, email")
			return
		}
		response.InternalError(w)
		return
	}

	response.Created(w, BookingCreatedResponse{
		Message: "Booking created successfully",
		Booking: booking,
	})
}
