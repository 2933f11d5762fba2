package cheats

import (
	"errors"
	"io"

	"cheatvault/core/faults"
	"cheatvault/core/logger"
	"cheatvault/feature/cheats/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the cheat subsystem.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the cheat routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	types := app.Group("/cheats/types")
	types.Get("/", h.HandleListTypes)
	types.Post("/", h.HandleCreateType)
	types.Get("/:id", h.HandleGetType)
	types.Put("/:id", h.HandleUpdateType)
	types.Delete("/:id", h.HandleDeleteType)

	app.Get("/roms/:id/cheats", h.HandleListCodes)
	app.Post("/roms/:id/cheats", h.HandleAddCode)
	app.Put("/cheats/codes/:id", h.HandleUpdateCode)
	app.Delete("/cheats/codes/:id", h.HandleDeleteCode)

	app.Post("/roms/:id/cheats/files", h.HandleUploadFile)
	app.Get("/roms/:id/cheats/files", h.HandleListFiles)
	app.Delete("/cheats/files/:id", h.HandleDeleteFile)
}

// typeRequest is the JSON body for type creation and update.
type typeRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Pattern     string `json:"pattern"`
	Example     string `json:"example"`
	FormatHint  string `json:"format_hint"`
}

func (r typeRequest) toModel() models.CheatType {
	return models.CheatType{
		Name:        r.Name,
		Description: r.Description,
		Pattern:     r.Pattern,
		Example:     r.Example,
		FormatHint:  r.FormatHint,
	}
}

// HandleListTypes returns all cheat types.
// @Summary List Cheat Types
// @Tags cheats
// @Produce json
// @Success 200 {array} models.CheatType
// @Router /cheats/types [get]
func (h *Handler) HandleListTypes(c *fiber.Ctx) error {
	return c.JSON(h.service.ListTypes())
}

// HandleGetType returns one cheat type by id.
// @Summary Get Cheat Type
// @Tags cheats
// @Produce json
// @Param id path string true "Type ID"
// @Success 200 {object} models.CheatType
// @Failure 404 {object} map[string]string
// @Router /cheats/types/{id} [get]
func (h *Handler) HandleGetType(c *fiber.Ctx) error {
	t, err := h.service.GetType(c.Params("id"))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(t)
}

// HandleCreateType registers a new cheat type.
// @Summary Create Cheat Type
// @Tags cheats
// @Accept json
// @Produce json
// @Success 201 {object} models.CheatType
// @Failure 400 {object} map[string]string
// @Router /cheats/types [post]
func (h *Handler) HandleCreateType(c *fiber.Ctx) error {
	var req typeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.ID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "type id is required"})
	}

	created, err := h.service.CreateType(req.ID, req.toModel())
	if err != nil {
		return h.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleUpdateType updates an existing cheat type.
// @Summary Update Cheat Type
// @Tags cheats
// @Accept json
// @Produce json
// @Param id path string true "Type ID"
// @Success 200 {object} models.CheatType
// @Failure 404 {object} map[string]string
// @Router /cheats/types/{id} [put]
func (h *Handler) HandleUpdateType(c *fiber.Ctx) error {
	var req typeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	updated, err := h.service.UpdateType(c.Params("id"), req.toModel())
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(updated)
}

// HandleDeleteType removes a cheat type.
// @Summary Delete Cheat Type
// @Tags cheats
// @Produce json
// @Param id path string true "Type ID"
// @Success 200 {object} models.CheatType
// @Failure 404 {object} map[string]string
// @Router /cheats/types/{id} [delete]
func (h *Handler) HandleDeleteType(c *fiber.Ctx) error {
	deleted, err := h.service.DeleteType(c.Params("id"))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(deleted)
}

// HandleListCodes returns a rom's cheat codes after a sync pass.
// @Summary List Cheat Codes
// @Tags cheats
// @Produce json
// @Param id path int true "Rom ID"
// @Success 200 {array} models.CheatCode
// @Failure 404 {object} map[string]string
// @Router /roms/{id}/cheats [get]
func (h *Handler) HandleListCodes(c *fiber.Ctx) error {
	romID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid rom id"})
	}

	codes, err := h.service.ListCodes(romID)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(codes)
}

// HandleAddCode creates a cheat code for a rom.
// @Summary Add Cheat Code
// @Tags cheats
// @Accept json
// @Produce json
// @Param id path int true "Rom ID"
// @Success 201 {object} models.CheatCode
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]map[string]string "Field errors"
// @Router /roms/{id}/cheats [post]
func (h *Handler) HandleAddCode(c *fiber.Ctx) error {
	romID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid rom id"})
	}

	var in models.Input
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	code, err := h.service.AddCode(romID, in)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(code)
}

// HandleUpdateCode updates an existing cheat code.
// @Summary Update Cheat Code
// @Tags cheats
// @Accept json
// @Produce json
// @Param id path int true "Code ID"
// @Success 200 {object} models.CheatCode
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]map[string]string "Field errors"
// @Router /cheats/codes/{id} [put]
func (h *Handler) HandleUpdateCode(c *fiber.Ctx) error {
	codeID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid code id"})
	}

	var in models.Input
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	code, err := h.service.UpdateCode(codeID, in)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(code)
}

// HandleDeleteCode removes a cheat code.
// @Summary Delete Cheat Code
// @Tags cheats
// @Param id path int true "Code ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /cheats/codes/{id} [delete]
func (h *Handler) HandleDeleteCode(c *fiber.Ctx) error {
	codeID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid code id"})
	}

	if err := h.service.DeleteCode(codeID); err != nil {
		return h.respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleUploadFile stores an uploaded cheat file for a rom.
// @Summary Upload Cheat File
// @Tags cheats
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Rom ID"
// @Param file formData file true "Cheat file"
// @Success 201 {object} models.CheatFile
// @Failure 404 {object} map[string]string
// @Router /roms/{id}/cheats/files [post]
func (h *Handler) HandleUploadFile(c *fiber.Ctx) error {
	romID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid rom id"})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file field is required"})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return h.respondError(c, err)
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return h.respondError(c, err)
	}

	file, err := h.service.UploadFile(c.Context(), romID, fileHeader.Filename, content)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(file)
}

// HandleListFiles returns a rom's cheat-file metadata.
// @Summary List Cheat Files
// @Tags cheats
// @Produce json
// @Param id path int true "Rom ID"
// @Success 200 {array} models.CheatFile
// @Failure 404 {object} map[string]string
// @Router /roms/{id}/cheats/files [get]
func (h *Handler) HandleListFiles(c *fiber.Ctx) error {
	romID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid rom id"})
	}

	files, err := h.service.ListFiles(romID)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(files)
}

// HandleDeleteFile removes a cheat file and its blob.
// @Summary Delete Cheat File
// @Tags cheats
// @Param id path int true "File ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /cheats/files/{id} [delete]
func (h *Handler) HandleDeleteFile(c *fiber.Ctx) error {
	fileID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid file id"})
	}

	if err := h.service.DeleteFile(c.Context(), fileID); err != nil {
		return h.respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// respondError maps the error taxonomy to transport status codes.
func (h *Handler) respondError(c *fiber.Ctx, err error) error {
	l := logger.WithRayID(h.logger, c)

	var vErr *faults.ValidationError
	if errors.As(err, &vErr) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": vErr.Fields})
	}
	if errors.Is(err, faults.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if errors.Is(err, ErrTypeExists) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	l.Error("Cheat request failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
