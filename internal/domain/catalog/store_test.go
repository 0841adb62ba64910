package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/mapmytour/tour-api/internal/domain/tour"
)

type gatewayStub struct {
	tours   []tour.Tour
	byID  map[string]*tour.Tour
	booking *tour.Booking
	err     error
}

func (s *gatewayStub) ListTours(ctx context.Context) ([]tour.Tour, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.tours, nil
}

func (s *gatewayStub) GetTour(ctx context.Context, id string) (*tour.Tour, error) {
	if s.err != nil {
		return nil, s.err
	}
	t, ok := s.byID[id]
	if !ok {
		return nil, errors.New("Tour not found")
	}
	return t, nil
}

func (s *gatewayStub) SubmitBooking(ctx context.Context, req tour.BookingRequest) (*tour.Booking, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.booking, nil
}

func TestLoadAllLifecycle(t *testing.T) {
	stub := &gatewayStub{tours: fixture()}
	store := NewStore(stub)

	store.LoadAll(context.Background())

	if store.Loading() {
		t.Error("loading flag still set after success")
	}
	if store.Err() != "" {
		t.Errorf("unexpected error %q", store.Err())
	}
	if len(store.Tours()) != len(stub.tours) {
		t.Fatalf("expected %d tours, got %d", len(stub.tours), len(store.Tours()))
	}
}

func TestLoadAllRejected(t *testing.T) {
	stub := &gatewayStub{err: errors.New("gateway unreachable")}
	store := NewStore(stub)

	store.LoadAll(context.Background())

	if store.Loading() {
		t.Error("loading flag still set after failure")
	}
	if store.Err() != "gateway unreachable" {
		t.Errorf("expected error message, got %q", store.Err())
	}
}

func TestLoadAllClearsPreviousError(t *testing.T) {
	stub := &gatewayStub{err: errors.New("boom")}
	store := NewStore(stub)
	store.LoadAll(context.Background())

	stub.err = nil
	stub.tours = fixture()
	store.LoadAll(context.Background())

	if store.Err() != "" {
		t.Errorf("error not cleared by subsequent success: %q", store.Err())
	}
}

func TestLoadOneFailurePreservesList(t *testing.T) {
	stub := &gatewayStub{
		tours:  fixture(),
		byID: map[string]*tour.Tour{},
	}
	store := NewStore(stub)
	store.LoadAll(context.Background())

	store.LoadOne(context.Background(), "99")

	if store.Err() == "" {
		t.Error("expected an error for unknown tour")
	}
	if len(store.Tours()) != len(stub.tours) {
		t.Error("loaded list was lost by a failed single fetch")
	}
	if store.CurrentTour() != nil {
		t.Error("current tour set despite failure")
	}
}

func TestLoadOneSetsCurrentTour(t *testing.T) {
	want := &tour.Tour{ID: "2", Title: "Annapurna Base Camp Trek"}
	stub := &gatewayStub{byID: map[string]*tour.Tour{"2": want}}
	store := NewStore(stub)

	store.LoadOne(context.Background(), "2")

	if store.CurrentTour() == nil || store.CurrentTour().ID != "2" {
		t.Fatalf("expected current tour 2, got %+v", store.CurrentTour())
	}
}

func TestSubmitReturnsBooking(t *testing.T) {
	stub := &gatewayStub{booking: &tour.Booking{ID: "1700000000000", Status: "confirmed"}}
	store := NewStore(stub)

	b, err := store.Submit(context.Background(), tour.BookingRequest{TourID: "1"})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if b.Status != "confirmed" {
		t.Errorf("expected confirmed, got %q", b.Status)
	}
	if store.Err() != "" {
		t.Errorf("unexpected error %q", store.Err())
	}
}

func TestFilterMutatorsAndClear(t *testing.T) {
	store := NewStore(&gatewayStub{})

	store.SetSortBy(SortByPriceHigh)
	store.SetPriceRange(300, 1500)
	store.SetDuration(Duration11to15)

	f := store.Filters()
	if f.SortBy != SortByPriceHigh || f.PriceRange.Min != 300 || f.PriceRange.Max != 1500 || f.Duration != Duration11to15 {
		t.Fatalf("mutators not applied: %+v", f)
	}

	store.ClearFilters()
	if store.Filters() != DefaultFilters() {
		t.Fatalf("ClearFilters did not restore defaults: %+v", store.Filters())
	}
}

func TestDisplayedUsesCurrentFilters(t *testing.T) {
	stub := &gatewayStub{tours: fixture()}
	store := NewStore(stub)
	store.LoadAll(context.Background())

	store.SetDuration(Duration6to10)
	got := store.Displayed()
	if len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("expected only tour 2, got %+v", got)
	}

	store.ClearFilters()
	if len(store.Displayed()) != len(fixture()) {
		t.Error("clearing filters did not restore the full list")
	}
}
