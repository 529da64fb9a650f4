package handler

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"

	"order-viewer/internal/core/httpclient"
	"order-viewer/internal/core/logger"
	adapter "order-viewer/internal/features/lookup/adapters"
	"order-viewer/internal/features/lookup/domain"
	"order-viewer/internal/features/lookup/ports"
	"order-viewer/internal/features/lookup/render"
	"order-viewer/internal/features/lookup/service"
	noticeports "order-viewer/internal/features/notices/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// LookupHandler serves the lookup page and its JSON counterpart.
type LookupHandler struct {
	// source fetches order records.
	source ports.OrderSource
	// formatter renders timestamps in the display locale.
	formatter domain.TimeFormatter
	// lang is the html lang attribute.
	lang string
	// notices is optional; nil disables the notice banner.
	notices noticeports.NoticeService
}

// NewLookupHandler creates a new instance of LookupHandler.
func NewLookupHandler(source ports.OrderSource, formatter domain.TimeFormatter, lang string, notices noticeports.NoticeService) *LookupHandler {
	return &LookupHandler{
		source:    source,
		formatter: formatter,
		lang:      lang,
		notices:   notices,
	}
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}

// LookupResponse is the rendered view of one order.
type LookupResponse struct {
	OrderUID string `json:"order_uid"`
	domain.RenderPlan
}

// Register mounts the lookup routes on router.
func (h *LookupHandler) Register(router fiber.Router) {
	router.Get("/", h.Index)
	router.Get("/lookup", h.Lookup)
	router.Get("/api/lookup/:uid", h.GetLookup)
}

// Index handles GET /, the page before any submission.
func (h *LookupHandler) Index(c *fiber.Ctx) error {
	return h.page(c, adapter.NewMemoryDocument().Snapshot())
}

// Lookup handles GET /lookup?order_uid=..., one form submission.
// The page is returned with 200 whatever the lookup outcome; failures show in
// the error panel.
func (h *LookupHandler) Lookup(c *fiber.Ctx) error {
	doc := adapter.NewMemoryDocument()
	doc.SetInput(c.Query("order_uid"))

	client := service.NewOrderDetailsClient(h.source, doc, h.formatter)
	outcome, _ := client.SubmitFromInput(h.context(c))

	logger.Get().Debug("Lookup submitted",
		zap.String("order_uid", strings.TrimSpace(doc.InputValue())),
		zap.String("outcome", outcome.String()),
		zap.String("ray_id", rayID(c)),
	)

	return h.page(c, doc.Snapshot())
}

// GetLookup handles GET /api/lookup/{uid}.
// @Summary Look up an order
// @Description Fetches an order from the order-lookup service and returns the text written to each display target.
// @Tags Lookup
// @Produce json
// @Param uid path string true "Order UID"
// @Success 200 {object} LookupResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/lookup/{uid} [get]
func (h *LookupHandler) GetLookup(c *fiber.Ctx) error {
	id := rayID(c)

	client := service.NewOrderDetailsClient(h.source, adapter.NewMemoryDocument(), h.formatter)
	outcome, err := client.Submit(h.context(c), c.Params("uid"))

	switch outcome {
	case service.OutcomeIgnored:
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Order UID is required",
			RayID:   id,
		})
	case service.OutcomeRendered:
		record := client.State().Order
		return c.Status(http.StatusOK).JSON(LookupResponse{
			OrderUID:   record.OrderUID,
			RenderPlan: domain.BuildPlan(record, h.formatter),
		})
	}

	status := http.StatusBadGateway
	var reqErr *domain.RequestError
	if errors.As(err, &reqErr) && reqErr.StatusCode == http.StatusNotFound {
		status = http.StatusNotFound
	}

	message := "Lookup failed"
	if err != nil {
		message = err.Error()
	}

	return c.Status(status).JSON(ErrorResponse{
		Message: message,
		RayID:   id,
	})
}

func (h *LookupHandler) page(c *fiber.Ctx, snap domain.Snapshot) error {
	var buf bytes.Buffer
	if err := render.Page(&buf, snap, h.notice(c), h.lang); err != nil {
		logger.Get().Error("Failed to render page", zap.String("ray_id", rayID(c)), zap.Error(err))
		return c.Status(http.StatusInternalServerError).SendString("Internal Server Error")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(http.StatusOK).Send(buf.Bytes())
}

// notice returns the active notice for the page; store failures only drop the banner.
func (h *LookupHandler) notice(c *fiber.Ctx) *render.Notice {
	if h.notices == nil {
		return nil
	}

	n, err := h.notices.GetNotice(c.UserContext())
	if err != nil {
		logger.Get().Warn("Failed to load notice", zap.String("ray_id", rayID(c)), zap.Error(err))
		return nil
	}
	if n == nil {
		return nil
	}
	return &render.Notice{Level: string(n.Level), Message: n.Message}
}

// context carries the request id to the order-lookup service.
func (h *LookupHandler) context(c *fiber.Ctx) context.Context {
	ctx := c.UserContext()
	if id, ok := c.Locals("requestid").(string); ok {
		ctx = httpclient.WithRayID(ctx, id)
	}
	return ctx
}

func rayID(c *fiber.Ctx) string {
	id, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return id
}
