package tour

import (
	"context"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mapmytour/tour-api/internal/pkg/upstream"
	"github.com/mapmytour/tour-api/internal/pkg/validator"
)

// UpstreamClient is the slice of the upstream client the service needs.
type UpstreamClient interface {
	ListTours(ctx context.Context) ([]upstream.Record, error)
	GetTour(ctx context.Context, id string) (*upstream.Record, error)
}

// Service is the tour gateway: it serves the catalog from the upstream mock
// source and degrades to the static fallback catalog on any upstream
// failure. Bookings are accepted but not persisted anywhere.
type Service struct {
	upstream UpstreamClient
	now      func() time.Time
}

// NewService creates the tour service.
func NewService(client UpstreamClient) *Service {
	return &Service{
		upstream: client,
		now:      time.Now,
	}
}

// ListTours returns the catalog. Upstream failures of any kind (network,
// timeout, malformed envelope) are swallowed and answered with the fallback
// catalog; they are never surfaced to the caller.
func (s *Service) ListTours(ctx context.Context) []Tour {
	records, err := s.upstream.ListTours(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Upstream tour source unavailable, serving fallback catalog")
		return fallbackTours
	}

	tours := make([]Tour, len(records))
	for i, rec := range records {
		tours[i] = fromUpstream(rec)
	}
	return tours
}

// GetTour returns a single tour. An upstream failure falls back to a lookup
// in the static catalog; only an id absent from the fallback is an error.
func (s *Service) GetTour(ctx context.Context, id string) (*Tour, error) {
	rec, err := s.upstream.GetTour(ctx, id)
	if err == nil {
		t := fromUpstream(*rec)
		return &t, nil
	}
	log.Warn().Err(err).Str("tour_id", id).Msg("Upstream tour source unavailable, using fallback catalog")

	for i := range fallbackTours {
		if fallbackTours[i].ID == id {
			return &fallbackTours[i], nil
		}
	}
	return nil, ErrTourNotFound
}

// SubmitBooking checks that the required fields are present, then synthesizes
// a confirmed booking. Repeated calls do not accumulate state.
func (s *Service) SubmitBooking(ctx context.Context, req BookingRequest) (*Booking, error) {
	if errs := validator.Validate(&req); errs != nil {
		return nil, ErrMissingBookingData
	}

	now := s.now()
	return &Booking{
		ID:             strconv.FormatInt(now.UnixMilli(), 10),
		BookingRequest: req,
		Status:         "confirmed",
		BookingDate:    now.UTC().Format(time.RFC3339),
	}, nil
}

// fromUpstream maps an upstream record onto the canonical Tour shape. The
// upstream source carries no difficulty, group size or itinerary content, so
// those fields get the fixed placeholders.
func fromUpstream(rec upstream.Record) Tour {
	return Tour{
		ID:            rec.ID,
		Title:         rec.Title,
		Price:         rec.Price,
		OriginalPrice: rec.OriginalPrice,
		Duration:      rec.Duration,
		Difficulty:    defaultDifficulty,
		GroupSize:     defaultGroupSize,
		Image:         rec.Image,
		Description:   rec.Description,
		Highlights:    genericHighlights,
		Inclusions:    genericInclusions,
		Exclusions:    genericExclusions,
		Itinerary:     genericItinerary,
	}
}
