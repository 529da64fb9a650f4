package httpclient

import (
	"context"
	"net/http"
	"time"

	"order-viewer/internal/core/logger"

	"go.uber.org/zap"
)

// RayIDHeader carries the inbound request id to upstream services.
const RayIDHeader = "X-Ray-ID"

type rayIDKey struct{}

// WithRayID returns a context whose outbound requests carry the given ray id.
func WithRayID(ctx context.Context, rayID string) context.Context {
	return context.WithValue(ctx, rayIDKey{}, rayID)
}

// RayIDFrom returns the ray id stored by WithRayID, if any.
func RayIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(rayIDKey{}).(string)
	return id
}

// LoggingRoundTripper logs every outbound request and forwards the ray id.
type LoggingRoundTripper struct {
	// Proxied is the underlying RoundTripper to execute the request.
	Proxied http.RoundTripper
}

// RoundTrip executes the request and logs details.
func (lrt *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	rayID := RayIDFrom(req.Context())
	if rayID != "" && req.Header.Get(RayIDHeader) == "" {
		req = req.Clone(req.Context())
		req.Header.Set(RayIDHeader, rayID)
	}

	fields := []zap.Field{
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
	}
	if rayID != "" {
		fields = append(fields, zap.String("ray_id", rayID))
	}

	logger.Get().Debug("HTTP Request Started", fields...)

	resp, err := lrt.Proxied.RoundTrip(req)

	fields = append(fields, zap.Duration("duration", time.Since(start)))

	if err != nil {
		logger.Get().Error("HTTP Request Failed", append(fields, zap.Error(err))...)
		return nil, err
	}

	logger.Get().Debug("HTTP Request Completed", append(fields, zap.Int("status_code", resp.StatusCode))...)

	return resp, nil
}

// NewClient returns an http.Client with logging middleware.
func NewClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: &LoggingRoundTripper{
			Proxied: http.DefaultTransport,
		},
		Timeout: timeout,
	}
}
