package handler

import (
	"errors"
	"net/http"

	"order-viewer/internal/core/logger"
	"order-viewer/internal/features/notices/domain"
	"order-viewer/internal/features/notices/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// NoticeHandler handles HTTP requests for operator notices.
type NoticeHandler struct {
	service ports.NoticeService
}

// NewNoticeHandler creates a new NoticeHandler.
func NewNoticeHandler(service ports.NoticeService) *NoticeHandler {
	return &NoticeHandler{
		service: service,
	}
}

// SetNoticeRequest represents the request body for setting a notice.
type SetNoticeRequest struct {
	Message string       `json:"message"`
	Level   domain.Level `json:"level"`
	TTL     int          `json:"ttl"` // Seconds
}

// Register mounts the notice routes on router.
func (h *NoticeHandler) Register(router fiber.Router) {
	router.Get("/api/notice", h.GetNotice)
	router.Post("/api/notice", h.SetNotice)
	router.Delete("/api/notice", h.RemoveNotice)
}

// SetNotice handles POST /api/notice.
// @Summary Set the operator notice
// @Description Creates or replaces the notice shown above the lookup form.
// @Tags Notice
// @Accept json
// @Produce json
// @Param notice body SetNoticeRequest true "Notice details"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/notice [post]
func (h *NoticeHandler) SetNotice(c *fiber.Ctx) error {
	var req SetNoticeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.service.SetNotice(c.UserContext(), req.Message, req.Level, req.TTL); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidLevel):
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid notice level. Must be INFO, WARNING, or CRITICAL",
			})
		case errors.Is(err, domain.ErrEmptyMessage):
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": "Notice message is required",
			})
		case errors.Is(err, domain.ErrMessageTooLong):
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		logger.Get().Error("Failed to set notice", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Notice set successfully",
	})
}

// GetNotice handles GET /api/notice.
// @Summary Get the operator notice
// @Description Retrieves the active operator notice.
// @Tags Notice
// @Produce json
// @Success 200 {object} domain.Notice
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/notice [get]
func (h *NoticeHandler) GetNotice(c *fiber.Ctx) error {
	notice, err := h.service.GetNotice(c.UserContext())
	if err != nil {
		logger.Get().Error("Failed to get notice", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	if notice == nil {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{
			"error": "No active notice",
		})
	}

	return c.Status(http.StatusOK).JSON(notice)
}

// RemoveNotice handles DELETE /api/notice.
// @Summary Remove the operator notice
// @Description Removes the active operator notice.
// @Tags Notice
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/notice [delete]
func (h *NoticeHandler) RemoveNotice(c *fiber.Ctx) error {
	if err := h.service.RemoveNotice(c.UserContext()); err != nil {
		logger.Get().Error("Failed to remove notice", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Notice removed successfully",
	})
}
