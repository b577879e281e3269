package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/change-adapter/internal/adapter"
	"github.com/spec-kit/change-adapter/internal/api/dto"
	"github.com/spec-kit/change-adapter/internal/repository"
	apperrors "github.com/spec-kit/change-adapter/pkg/util"
)

// StatusHandler exposes probe triggering and the status-transition audit.
type StatusHandler struct {
	adapter  *adapter.Adapter
	statuses repository.StatusRepository
}

// NewStatusHandler constructs handler. The status repository may be nil when
// no database is configured.
func NewStatusHandler(a *adapter.Adapter, statuses repository.StatusRepository) *StatusHandler {
	return &StatusHandler{adapter: a, statuses: statuses}
}

// Connect handles POST /connect. The probe outcome is not returned: the host
// observes it through the emitted ONLINE/OFFLINE event.
func (h *StatusHandler) Connect(c *fiber.Ctx) error {
	h.adapter.Connect(c.UserContext())
	return c.Status(http.StatusAccepted).JSON(fiber.Map{
		"data": fiber.Map{
			"id": h.adapter.ID(),
		},
	})
}

// History handles GET /status/history.
func (h *StatusHandler) History(c *fiber.Ctx) error {
	if h.statuses == nil {
		return apperrors.NewNotFound("status history", nil)
	}

	limit := c.QueryInt("limit", 50)
	transitions, err := h.statuses.ListRecent(c.UserContext(), limit)
	if err != nil {
		return apperrors.MapError(err)
	}

	responses := make([]dto.StatusTransitionResponse, 0, len(transitions))
	for _, transition := range transitions {
		responses = append(responses, dto.FromTransition(transition))
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"transitions": responses,
		},
	})
}
