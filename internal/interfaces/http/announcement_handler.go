package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/prevlav/cumplimiento-api/internal/application/dto"
	"github.com/prevlav/cumplimiento-api/internal/application/usecase"
	"github.com/prevlav/cumplimiento-api/internal/domain"
)

// AnnouncementHandler maneja las peticiones HTTP para avisos (comunicados).
type AnnouncementHandler struct {
	uc *usecase.AnnouncementUseCase
}

// NewAnnouncementHandler construye el handler inyectando el caso de uso.
func NewAnnouncementHandler(uc *usecase.AnnouncementUseCase) *AnnouncementHandler {
	return &AnnouncementHandler{uc: uc}
}

// Create godoc
// @Summary      Crear aviso
// @Tags         avisos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateAnnouncementRequest  true  "Datos del aviso"
// @Success      201   {object}  dto.AnnouncementResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/avisos [post]
func (h *AnnouncementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAnnouncementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Titulo == "" || in.Mensaje == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "titulo y mensaje son requeridos"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "OSC destino no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener aviso por ID
// @Tags         avisos
// @Produce      json
// @Param        id   path  string  true  "ID del aviso"
// @Success      200  {object}  dto.AnnouncementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/avisos/{id} [get]
func (h *AnnouncementHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "aviso no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar avisos
// @Tags         avisos
// @Produce      json
// @Param        id_osc  query  string  false  "Filtrar por OSC (incluye comunicados generales)"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.AnnouncementListResponse
// @Router       /api/avisos [get]
func (h *AnnouncementHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	var orgID *string
	if v := c.Query("id_osc"); v != "" {
		orgID = &v
	}
	out, err := h.uc.List(orgID, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// UpdateEstado godoc
// @Summary      Actualizar estado del aviso
// @Tags         avisos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "ID del aviso"
// @Param        body  body  dto.UpdateAnnouncementEstadoRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.AnnouncementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/avisos/{id}/estado [patch]
func (h *AnnouncementHandler) UpdateEstado(c *fiber.Ctx) error {
	var in dto.UpdateAnnouncementEstadoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateEstado(c.Params("id"), in.Estado)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "estado fuera del vocabulario (enviado|recibido|leido|archivado)"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "aviso no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
