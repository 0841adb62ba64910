// Package gateway is the client-side boundary to the tour API. It issues the
// HTTP calls the stores need and normalizes the known response envelopes
// into entities, so the stores never see raw wire shapes.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mapmytour/tour-api/internal/domain/tour"
)

const defaultTimeout = 15 * time.Second

// TourService is the surface the client-side stores consume. *Client
// implements it; tests substitute stubs.
type TourService interface {
	ListTours(ctx context.Context) ([]tour.Tour, error)
	GetTour(ctx context.Context, id string) (*tour.Tour, error)
	SubmitBooking(ctx context.Context, req tour.BookingRequest) (*tour.Booking, error)
}

// Client talks to the tour API over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a gateway client for the API at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// ListTours fetches the catalog. The two known success envelopes are
// {tours: [...]} and a bare array; anything else is treated as an empty
// catalog rather than an error.
func (c *Client) ListTours(ctx context.Context) ([]tour.Tour, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/tours", nil, "Failed to fetch tours")
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Tours []tour.Tour `json:"tours"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Tours != nil {
		return envelope.Tours, nil
	}

	var bare []tour.Tour
	if err := json.Unmarshal(body, &bare); err == nil {
		return bare, nil
	}

	return []tour.Tour{}, nil
}

// GetTour fetches a single tour by id.
func (c *Client) GetTour(ctx context.Context, id string) (*tour.Tour, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/tours/"+id, nil, "Failed to fetch tour details")
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Tour *tour.Tour `json:"tour"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Tour != nil {
		return envelope.Tour, nil
	}

	var bare tour.Tour
	if err := json.Unmarshal(body, &bare); err == nil && bare.ID != "" {
		return &bare, nil
	}

	return nil, errors.New("Failed to fetch tour details")
}

// SubmitBooking posts a booking and returns the confirmed result.
func (c *Client) SubmitBooking(ctx context.Context, req tour.BookingRequest) (*tour.Booking, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode booking: %w", err)
	}

	body, err := c.do(ctx, http.MethodPost, "/api/tours/book", payload, "Failed to create booking")
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Booking *tour.Booking `json:"booking"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Booking == nil {
		return nil, errors.New("Failed to create booking")
	}
	return envelope.Booking, nil
}

// do issues the request and returns the response body. Error statuses are
// turned into the server's {message} when present, else fallbackMsg.
func (c *Client) do(ctx context.Context, method, path string, payload []byte, fallbackMsg string) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("gateway request error: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.New(fallbackMsg)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.New(fallbackMsg)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var msg struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(body, &msg); err == nil && msg.Message != "" {
			return nil, errors.New(msg.Message)
		}
		return nil, errors.New(fallbackMsg)
	}

	return body, nil
}
