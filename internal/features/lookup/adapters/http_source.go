package adapter

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"order-viewer/internal/core/config"
	"order-viewer/internal/core/httpclient"
	"order-viewer/internal/features/lookup/domain"
)

// HTTPOrderSource implements the OrderSource interface against the order-lookup service.
type HTTPOrderSource struct {
	// client is the HTTP client used for lookups.
	client *http.Client
	// baseURL has no trailing slash.
	baseURL string
}

// NewHTTPOrderSource creates a new instance of HTTPOrderSource.
func NewHTTPOrderSource(cfg config.OrderServiceConfig) *HTTPOrderSource {
	return NewHTTPOrderSourceWithClient(cfg.URL, httpclient.NewClient(cfg.Timeout))
}

// NewHTTPOrderSourceWithClient uses the given client instead of building one.
func NewHTTPOrderSourceWithClient(baseURL string, client *http.Client) *HTTPOrderSource {
	return &HTTPOrderSource{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// FetchOrder issues GET {base}/order/{uid} and decodes the body.
func (s *HTTPOrderSource) FetchOrder(ctx context.Context, orderUID string) (*domain.OrderRecord, error) {
	endpoint := fmt.Sprintf("%s/order/%s", s.baseURL, url.PathEscape(orderUID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &domain.RequestError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.ParseError{Err: err}
	}

	return domain.DecodeOrder(body)
}

// HealthCheck verifies that the order-lookup service answers at all.
// Any HTTP response below 500 counts as reachable.
func (s *HTTPOrderSource) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, s.baseURL+"/", nil)
	if err != nil {
		return fmt.Errorf("health check failed to create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("health check request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("health check failed with status: %d", resp.StatusCode)
	}

	return nil
}
