package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/change-adapter/internal/adapter"
	"github.com/spec-kit/change-adapter/internal/api/dto"
	"github.com/spec-kit/change-adapter/internal/cache"
	"github.com/spec-kit/change-adapter/internal/domain"
	"github.com/spec-kit/change-adapter/internal/normalize"
	"github.com/spec-kit/change-adapter/internal/repository"
	apperrors "github.com/spec-kit/change-adapter/pkg/util"
)

// RecordsHandler exposes the record operations to the orchestration host.
type RecordsHandler struct {
	adapter *adapter.Adapter
	cache   *cache.RecordCache
	mirror  repository.RecordRepository
	logger  *zap.Logger
}

// NewRecordsHandler constructs handler. The mirror repository may be nil when
// no database is configured.
func NewRecordsHandler(a *adapter.Adapter, recordCache *cache.RecordCache, mirror repository.RecordRepository, logger *zap.Logger) *RecordsHandler {
	return &RecordsHandler{adapter: a, cache: recordCache, mirror: mirror, logger: logger}
}

// List handles GET /records.
func (h *RecordsHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	if c.Query("refresh") != "true" {
		if records, ok := h.cache.GetList(ctx); ok {
			return c.JSON(fiber.Map{
				"data": fiber.Map{
					"records": dto.EncodeListOutcome(normalize.Outcome{Kind: normalize.KindRecords, Records: records}),
					"cached":  true,
				},
			})
		}
	}

	outcome, err := h.adapter.GetRecords(ctx)
	if err != nil {
		return err
	}

	if !outcome.IsSentinel() {
		h.cache.SetList(ctx, outcome.Records)
		if h.mirror != nil {
			if stored, err := h.mirror.UpsertAll(ctx, outcome.Records); err != nil {
				h.logger.Warn("record mirror write failed", zap.Error(err))
			} else if stored > 0 {
				h.logger.Debug("record mirror updated", zap.Int("stored", stored))
			}
		}
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"records": dto.EncodeListOutcome(outcome),
			"cached":  false,
		},
	})
}

// Create handles POST /records.
func (h *RecordsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	ctx := c.UserContext()
	outcome, err := h.adapter.CreateRecord(ctx, req.Input())
	if err != nil {
		return err
	}

	if !outcome.IsSentinel() && outcome.Record != nil {
		h.cache.Invalidate(ctx)
		if h.mirror != nil {
			if err := h.mirror.Upsert(ctx, *outcome.Record); err != nil {
				h.logger.Warn("record mirror write failed", zap.Error(err))
			}
		}
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"record": dto.EncodeSingleOutcome(outcome),
		},
	})
}

// Mirror handles GET /records/mirror.
func (h *RecordsHandler) Mirror(c *fiber.Ctx) error {
	if h.mirror == nil {
		return apperrors.NewNotFound("record mirror", nil)
	}

	limit := c.QueryInt("limit", 100)
	records, err := h.mirror.ListMirrored(c.UserContext(), limit)
	if err != nil {
		return apperrors.MapError(err)
	}
	if records == nil {
		records = []domain.ChangeRecord{}
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"records": records,
		},
	})
}
