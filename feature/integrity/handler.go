package integrity

import (
	"errors"

	"cheatvault/core/faults"
	"cheatvault/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/cheats", h.HandleCheatsCheck)
	group.Get("/schema", h.HandleSchemaCheck)
}

// HandleCheatsCheck reports the dual-store state of one rom or all roms.
// @Summary Cheats Integrity Check
// @Description Compares each rom's cheat rows against its flat file without mutating either.
// @Tags integrity
// @Produce json
// @Param rom_id query int false "Limit the check to one rom"
// @Success 200 {array} integrity.CheatsReport
// @Failure 404 {object} map[string]string
// @Router /integrity/cheats [get]
func (h *Handler) HandleCheatsCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	if romID := c.QueryInt("rom_id", 0); romID != 0 {
		report, err := h.service.CheckCheats(romID)
		if err != nil {
			return h.respondError(c, l, err)
		}
		return c.JSON([]CheatsReport{*report})
	}

	reports, err := h.service.CheckAllCheats()
	if err != nil {
		return h.respondError(c, l, err)
	}
	return c.JSON(reports)
}

// HandleSchemaCheck verifies the cheat tables' columns.
// @Summary Schema Integrity Check
// @Tags integrity
// @Produce json
// @Success 200 {object} integrity.SchemaReport
// @Failure 500 {object} map[string]string
// @Router /integrity/schema [get]
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	report, err := h.service.CheckSchema()
	if err != nil {
		return h.respondError(c, l, err)
	}
	return c.JSON(report)
}

func (h *Handler) respondError(c *fiber.Ctx, l *zap.Logger, err error) error {
	if errors.Is(err, faults.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	l.Error("Integrity check failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
