package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/prevlav/cumplimiento-api/internal/application/donativos"
	"github.com/prevlav/cumplimiento-api/internal/application/dto"
	"github.com/prevlav/cumplimiento-api/internal/domain"
)

// TrackingHandler maneja las peticiones HTTP para seguimientos PLD, incluido
// el aviso XML al SAT.
type TrackingHandler struct {
	queryUC *donativos.TrackingQueryUseCase
	avisoUC *donativos.AvisoSATUseCase
}

// NewTrackingHandler construye el handler con los casos de uso de seguimiento.
func NewTrackingHandler(queryUC *donativos.TrackingQueryUseCase, avisoUC *donativos.AvisoSATUseCase) *TrackingHandler {
	return &TrackingHandler{queryUC: queryUC, avisoUC: avisoUC}
}

// GetByID godoc
// @Summary      Obtener seguimiento por ID
// @Tags         seguimientos
// @Produce      json
// @Param        id   path  string  true  "ID del seguimiento"
// @Success      200  {object}  dto.TrackingResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/seguimientos/{id} [get]
func (h *TrackingHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.queryUC.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "seguimiento no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar seguimientos
// @Tags         seguimientos
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.TrackingListResponse
// @Router       /api/seguimientos [get]
func (h *TrackingHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.queryUC.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Aviso godoc
// @Summary      Aviso XML al SAT del seguimiento
// @Description  Solo disponible si la acumulación alcanzó el umbral de aviso.
// @Tags         seguimientos
// @Produce      application/xml
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del seguimiento"
// @Success      200  {file}  file
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/seguimientos/{id}/aviso [get]
func (h *TrackingHandler) Aviso(c *fiber.Ctx) error {
	xmlBytes, err := h.avisoUC.Generate(c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "seguimiento no encontrado"})
		case errors.Is(err, domain.ErrConflict):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "THRESHOLD_NOT_REACHED", Message: "la acumulación no alcanza el umbral de aviso"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/xml")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="aviso-`+c.Params("id")+`.xml"`)
	return c.Send(xmlBytes)
}
