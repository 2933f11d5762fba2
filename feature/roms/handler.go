package roms

import (
	"errors"

	"cheatvault/core/faults"
	"cheatvault/core/logger"
	"cheatvault/feature/roms/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the rom catalog.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the rom routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/roms")
	group.Get("/", h.HandleList)
	group.Post("/", h.HandleCreate)
	group.Get("/:id", h.HandleGet)
	group.Delete("/:id", h.HandleDelete)
}

// HandleList returns the rom catalog.
// @Summary List Roms
// @Tags roms
// @Produce json
// @Success 200 {array} models.Rom
// @Router /roms [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	all, err := h.service.List()
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(all)
}

// HandleGet returns one rom.
// @Summary Get Rom
// @Tags roms
// @Produce json
// @Param id path int true "Rom ID"
// @Success 200 {object} models.Rom
// @Failure 404 {object} map[string]string
// @Router /roms/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid rom id"})
	}

	rom, err := h.service.Get(id)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(rom)
}

// HandleCreate catalogues a new rom.
// @Summary Create Rom
// @Tags roms
// @Accept json
// @Produce json
// @Success 201 {object} models.Rom
// @Failure 422 {object} map[string]map[string]string "Field errors"
// @Router /roms [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	var rom models.Rom
	if err := c.BodyParser(&rom); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := h.service.Create(&rom); err != nil {
		return h.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(rom)
}

// HandleDelete removes a rom and all its cheat data.
// @Summary Delete Rom
// @Tags roms
// @Param id path int true "Rom ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /roms/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid rom id"})
	}

	if err := h.service.Delete(id); err != nil {
		return h.respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) respondError(c *fiber.Ctx, err error) error {
	l := logger.WithRayID(h.logger, c)

	var vErr *faults.ValidationError
	if errors.As(err, &vErr) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": vErr.Fields})
	}
	if errors.Is(err, faults.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	l.Error("Rom request failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
