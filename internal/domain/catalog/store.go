package catalog

import (
	"context"

	"github.com/mapmytour/tour-api/internal/domain/tour"
	"github.com/mapmytour/tour-api/internal/gateway"
)

// Store holds the catalog view state for one client session: the tour list,
// the currently selected tour, the load lifecycle flags and the filter
// state. It is explicitly constructed and passed by reference; there is no
// package-level instance. Not safe for concurrent use — a session drives it
// from a single goroutine and requests are issued sequentially.
type Store struct {
	svc gateway.TourService

	tours       []tour.Tour
	currentTour *tour.Tour
	loading     bool
	errMsg      string
	filters     Filters
}

// NewStore creates a catalog store backed by the given gateway.
func NewStore(svc gateway.TourService) *Store {
	return &Store{
		svc:     svc,
		filters: DefaultFilters(),
	}
}

// LoadAll fetches the full catalog. Follows the pending→fulfilled/rejected
// lifecycle: pending sets the loading flag and clears any previous error.
func (s *Store) LoadAll(ctx context.Context) {
	s.begin()
	tours, err := s.svc.ListTours(ctx)
	if err != nil {
		s.reject(err)
		return
	}
	s.loading = false
	s.tours = tours
}

// LoadOne fetches a single tour into the current-tour slot. A failure
// (including not found) only affects that slot; a previously loaded list
// stays intact.
func (s *Store) LoadOne(ctx context.Context, id string) {
	s.begin()
	t, err := s.svc.GetTour(ctx, id)
	if err != nil {
		s.reject(err)
		return
	}
	s.loading = false
	s.currentTour = t
}

// Submit sends a booking through the gateway, tracking the same lifecycle.
// The booking (or the error) is also returned so callers can react directly.
func (s *Store) Submit(ctx context.Context, req tour.BookingRequest) (*tour.Booking, error) {
	s.begin()
	booking, err := s.svc.SubmitBooking(ctx, req)
	if err != nil {
		s.reject(err)
		return nil, err
	}
	s.loading = false
	return booking, nil
}

func (s *Store) begin() {
	s.loading = true
	s.errMsg = ""
}

func (s *Store) reject(err error) {
	s.loading = false
	s.errMsg = err.Error()
}

// SetSortBy updates the sort order.
func (s *Store) SetSortBy(v SortBy) { s.filters.SortBy = v }

// SetPriceRange updates the price band.
func (s *Store) SetPriceRange(min, max int) { s.filters.PriceRange = PriceRange{Min: min, Max: max} }

// SetDuration updates the duration bucket ("" clears it).
func (s *Store) SetDuration(v string) { s.filters.Duration = v }

// ClearFilters resets the filter state to its defaults.
func (s *Store) ClearFilters() { s.filters = DefaultFilters() }

// Tours returns the loaded catalog.
func (s *Store) Tours() []tour.Tour { return s.tours }

// CurrentTour returns the tour loaded by LoadOne, if any.
func (s *Store) CurrentTour() *tour.Tour { return s.currentTour }

// Loading reports whether an operation is in flight.
func (s *Store) Loading() bool { return s.loading }

// Err returns the last error message, or "" after a successful operation.
func (s *Store) Err() string { return s.errMsg }

// Filters returns the current filter state.
func (s *Store) Filters() Filters { return s.filters }

// Displayed returns the catalog filtered and sorted by the current filters.
func (s *Store) Displayed() []tour.Tour {
	return Apply(s.tours, s.filters)
}
