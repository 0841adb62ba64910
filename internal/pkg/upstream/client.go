package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"syscall"
	"time"
)

const defaultTimeout = 10 * time.Second

// ErrMalformedEnvelope is returned when the upstream response does not match
// the documented {data: ...} shape. Callers treat it like any other upstream
// failure and fall back to the static catalog.
var ErrMalformedEnvelope = errors.New("upstream returned an unrecognized envelope")

// Record is one tour as normalized from the upstream mock source. Prices are
// already parsed out of their "$<n>" string form.
type Record struct {
	ID            string
	Title         string
	Price         int
	OriginalPrice int
	Duration      string
	Image         string
	Description   string
}

// Client fetches tour records from the upstream mock source.
type Client struct {
	listURL string
	itemURL string
	http    *http.Client
}

// NewClient creates an upstream client. A non-positive timeout falls back to
// 10 seconds; upstream calls are never allowed to hang indefinitely.
func NewClient(listURL, itemURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &Client{
		listURL: listURL,
		itemURL: itemURL,
		http: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

// flexID accepts either a JSON number or a JSON string for the upstream id.
type flexID string

func (f *flexID) UnmarshalJSON(data []byte) error {
	s := string(bytes.TrimSpace(data))
	if s == "null" {
		*f = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*f = flexID(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexID(n.String())
	return nil
}

type rawRecord struct {
	ID              flexID `json:"id"`
	Title           string `json:"title"`
	DiscountedPrice string `json:"discountedPrice"`
	ActualPrice     string `json:"actualPrice"`
	Duration        string `json:"duration"`
	Image           string `json:"image"`
	Description     string `json:"description"`
}

// normalize converts a raw upstream record, failing closed on any shape
// deviation (missing id, non-"$<n>" prices).
func (r rawRecord) normalize() (Record, error) {
	if r.ID == "" {
		return Record{}, fmt.Errorf("%w: record without id", ErrMalformedEnvelope)
	}
	price, err := parseDollars(r.DiscountedPrice)
	if err != nil {
		return Record{}, fmt.Errorf("%w: discountedPrice %q", ErrMalformedEnvelope, r.DiscountedPrice)
	}
	original, err := parseDollars(r.ActualPrice)
	if err != nil {
		return Record{}, fmt.Errorf("%w: actualPrice %q", ErrMalformedEnvelope, r.ActualPrice)
	}
	return Record{
		ID:            string(r.ID),
		Title:         r.Title,
		Price:         price,
		OriginalPrice: original,
		Duration:      r.Duration,
		Image:         r.Image,
		Description:   r.Description,
	}, nil
}

func parseDollars(s string) (int, error) {
	if !strings.HasPrefix(s, "$") {
		return 0, fmt.Errorf("missing $ prefix")
	}
	return strconv.Atoi(strings.TrimPrefix(s, "$"))
}

// ListTours fetches the upstream catalog.
func (c *Client) ListTours(ctx context.Context) ([]Record, error) {
	body, err := c.do(ctx, http.MethodGet, c.listURL, nil)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Data []rawRecord `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
	}
	if envelope.Data == nil {
		return nil, fmt.Errorf("%w: missing data array", ErrMalformedEnvelope)
	}

	records := make([]Record, len(envelope.Data))
	for i, raw := range envelope.Data {
		rec, err := raw.normalize()
		if err != nil {
			return nil, err
		}
		records[i] = rec
	}
	return records, nil
}

// GetTour fetches a single tour by posting {id} to the detail endpoint.
func (c *Client) GetTour(ctx context.Context, id string) (*Record, error) {
	payload, err := json.Marshal(map[string]string{"id": id})
	if err != nil {
		return nil, fmt.Errorf("upstream request error: %w", err)
	}

	body, err := c.do(ctx, http.MethodPost, c.itemURL, payload)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Data *rawRecord `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
	}
	if envelope.Data == nil {
		return nil, fmt.Errorf("%w: missing data object", ErrMalformedEnvelope)
	}

	rec, err := envelope.Data.normalize()
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (c *Client) do(ctx context.Context, method, rawURL string, payload []byte) ([]byte, error) {
	if c == nil || c.http == nil {
		return nil, fmt.Errorf("upstream request error: client is nil")
	}
	if strings.TrimSpace(rawURL) == "" {
		return nil, fmt.Errorf("upstream config error: url is empty")
	}

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("upstream request error: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, classifyRequestError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("upstream http error: status=%d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("upstream request error: %w", err)
	}
	return body, nil
}

func classifyRequestError(ctx context.Context, err error) error {
	if isTimeoutError(ctx, err) {
		return fmt.Errorf("upstream timeout: %w", err)
	}
	if isNetworkError(err) {
		return fmt.Errorf("upstream network error: %w", err)
	}
	return fmt.Errorf("upstream request error: %w", err)
}

func isTimeoutError(ctx context.Context, err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	if errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return false
}

func isNetworkError(err error) bool {
	if err == nil {
		return false
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		err = urlErr.Err
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	if errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ENETUNREACH) ||
		errors.Is(err, syscall.EHOSTUNREACH) {
		return true
	}

	return false
}
