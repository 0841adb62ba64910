package tour

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mapmytour/tour-api/internal/pkg/upstream"
)

type upstreamStub struct {
	records []upstream.Record
	record  *upstream.Record
	err     error
}

func (s *upstreamStub) ListTours(context.Context) ([]upstream.Record, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.records, nil
}

func (s *upstreamStub) GetTour(context.Context, string) (*upstream.Record, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.record, nil
}

func TestListToursFallbackOnUpstreamFailure(t *testing.T) {
	svc := NewService(&upstreamStub{err: errors.New("connection refused")})

	tours := svc.ListTours(context.Background())
	if len(tours) != 3 {
		t.Fatalf("expected 3 fallback tours, got %d", len(tours))
	}
	for i, want := range []string{"1", "2", "3"} {
		if tours[i].ID != want {
			t.Errorf("fallback tour %d: expected id %q, got %q", i, want, tours[i].ID)
		}
	}
}

func TestListToursNormalizesUpstreamRecords(t *testing.T) {
	svc := NewService(&upstreamStub{records: []upstream.Record{
		{ID: "7", Title: "Everest View Trek", Price: 800, OriginalPrice: 950, Duration: "8 Days"},
	}})

	tours := svc.ListTours(context.Background())
	if len(tours) != 1 {
		t.Fatalf("expected 1 tour, got %d", len(tours))
	}

	got := tours[0]
	if got.ID != "7" || got.Price != 800 || got.OriginalPrice != 950 {
		t.Fatalf("unexpected tour: %+v", got)
	}
	if got.Difficulty != "Moderate" {
		t.Errorf("expected default difficulty Moderate, got %q", got.Difficulty)
	}
	if got.GroupSize != "6-12 People" {
		t.Errorf("expected default group size, got %q", got.GroupSize)
	}
	if len(got.Highlights) == 0 || len(got.Inclusions) == 0 || len(got.Itinerary) == 0 {
		t.Error("expected placeholder highlights/inclusions/itinerary for upstream tours")
	}
}

func TestGetTourFallbackLookup(t *testing.T) {
	svc := NewService(&upstreamStub{err: errors.New("timeout")})

	got, err := svc.GetTour(context.Background(), "2")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Title != "Annapurna Base Camp Trek" {
		t.Errorf("expected fallback tour 2, got %q", got.Title)
	}

	if _, err := svc.GetTour(context.Background(), "99"); err != ErrTourNotFound {
		t.Fatalf("expected ErrTourNotFound, got %v", err)
	}
}

func TestGetTourUpstreamSuccess(t *testing.T) {
	svc := NewService(&upstreamStub{record: &upstream.Record{
		ID: "5", Title: "Langtang Valley Trek", Price: 600, OriginalPrice: 700, Duration: "7 Days",
	}})

	got, err := svc.GetTour(context.Background(), "5")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.ID != "5" || got.Title != "Langtang Valley Trek" {
		t.Fatalf("unexpected tour: %+v", got)
	}
}

func TestSubmitBookingAssignsConfirmation(t *testing.T) {
	svc := NewService(&upstreamStub{})
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	booking, err := svc.SubmitBooking(context.Background(), BookingRequest{
		TourID:       "1",
		CustomerName: "Jamie Doe",
		Email:        "jamie@example.com",
		Participants: 3,
		TotalPrice:   3600,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if booking.Status != "confirmed" {
		t.Errorf("expected status confirmed, got %q", booking.Status)
	}
	if booking.ID == "" {
		t.Error("expected a booking id")
	}
	if booking.BookingDate != fixed.Format(time.RFC3339) {
		t.Errorf("unexpected booking date %q", booking.BookingDate)
	}
	if booking.TotalPrice != 3600 {
		t.Errorf("expected total price 3600, got %d", booking.TotalPrice)
	}
}

func TestSubmitBookingRejectsMissingFields(t *testing.T) {
	svc := NewService(&upstreamStub{})

	cases := []BookingRequest{
		{CustomerName: "Jamie Doe", Email: "jamie@example.com"},
		{TourID: "1", Email: "jamie@example.com"},
		{TourID: "1", CustomerName: "Jamie Doe"},
	}
	for i, req := range cases {
		if _, err := svc.SubmitBooking(context.Background(), req); err != ErrMissingBookingData {
			t.Errorf("case %d: expected ErrMissingBookingData, got %v", i, err)
		}
	}
}
