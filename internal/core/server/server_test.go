package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"order-viewer/internal/core/config"
	"order-viewer/internal/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew verifies that New creates a Server with the correct configuration.
func TestNew(t *testing.T) {
	cfg := &config.AppConfig{
		ServerPort: 8080,
	}

	logger.Init("development", "debug")
	srv := New(cfg)

	require.NotNil(t, srv)
	assert.NotNil(t, srv.App)
	assert.Equal(t, cfg, srv.cfg)
}

// TestNew_RayID verifies every response carries a request id, reusing an inbound one.
func TestNew_RayID(t *testing.T) {
	srv := New(&config.AppConfig{})
	srv.App.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("requestid").(string))
	})

	resp, err := srv.App.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Header.Get(RayIDHeader))

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set(RayIDHeader, "ray-123")
	resp, err = srv.App.Test(req)
	require.NoError(t, err)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "ray-123", resp.Header.Get(RayIDHeader))
	assert.Equal(t, "ray-123", string(body))
}

// TestNew_Healthz verifies the liveness endpoint.
func TestNew_Healthz(t *testing.T) {
	srv := New(&config.AppConfig{})

	resp, err := srv.App.Test(httptest.NewRequest("GET", "/healthz", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

// TestNew_SwaggerDoc verifies the served OpenAPI document describes the lookup and notice routes.
func TestNew_SwaggerDoc(t *testing.T) {
	srv := New(&config.AppConfig{})

	resp, err := srv.App.Test(httptest.NewRequest("GET", "/swagger/doc.json", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var doc struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths       map[string]map[string]json.RawMessage `json:"paths"`
		Definitions map[string]struct {
			Enum       []string                   `json:"enum"`
			Properties map[string]json.RawMessage `json:"properties"`
		} `json:"definitions"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))

	assert.Equal(t, "Order Viewer API", doc.Info.Title)
	assert.Contains(t, doc.Paths["/api/lookup/{uid}"], "get")
	assert.Contains(t, doc.Paths["/api/notice"], "post")

	lookup := doc.Definitions["handler.LookupResponse"]
	assert.Contains(t, lookup.Properties, "order_uid")
	assert.Contains(t, lookup.Properties, "fields")
	assert.Contains(t, lookup.Properties, "rows")
	assert.Contains(t, doc.Definitions["handler.ErrorResponse"].Properties, "ray_id")

	assert.Equal(t, []string{"INFO", "WARNING", "CRITICAL"}, doc.Definitions["domain.Level"].Enum)
	assert.Contains(t, doc.Definitions["domain.Target"].Enum, "payment-date")
}

// TestNew_UnescapesPath verifies percent-encoded path params reach handlers decoded.
func TestNew_UnescapesPath(t *testing.T) {
	srv := New(&config.AppConfig{})
	srv.App.Get("/echo/:id", func(c *fiber.Ctx) error {
		return c.SendString(c.Params("id"))
	})

	resp, err := srv.App.Test(httptest.NewRequest("GET", "/echo/a%3Ab", nil))
	require.NoError(t, err)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "a:b", string(body))
}

// TestServer_Run_Error verifies that Run returns an error when binding fails (e.g., privileged port).
func TestServer_Run_Error(t *testing.T) {
	// Privileged port 1 should fail
	cfg := &config.AppConfig{
		ServerPort: 1,
	}
	logger.Init("development", "error")

	srv := New(cfg)

	errCh := make(chan error)
	go func() {
		errCh <- srv.Run()
	}()

	select {
	case err := <-errCh:
		assert.Error(t, err)
	case <-time.After(1 * time.Second):
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		srv.Shutdown(ctx)
		t.Log("Server unexpectedly started or timed out on Error test")
	}
}
