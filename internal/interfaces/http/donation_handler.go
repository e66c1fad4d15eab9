package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/prevlav/cumplimiento-api/internal/application/donativos"
	"github.com/prevlav/cumplimiento-api/internal/application/dto"
	"github.com/prevlav/cumplimiento-api/internal/domain"
)

// DonationHandler maneja las peticiones HTTP para donativos, incluida la
// constancia PDF.
type DonationHandler struct {
	registerUC *donativos.RegisterDonationUseCase
	queryUC    *donativos.DonationQueryUseCase
	reciboUC   *donativos.ReciboUseCase
}

// NewDonationHandler construye el handler con los casos de uso del ciclo de donativos.
func NewDonationHandler(
	registerUC *donativos.RegisterDonationUseCase,
	queryUC *donativos.DonationQueryUseCase,
	reciboUC *donativos.ReciboUseCase,
) *DonationHandler {
	return &DonationHandler{registerUC: registerUC, queryUC: queryUC, reciboUC: reciboUC}
}

// Create godoc
// @Summary      Registrar donativo
// @Description  Registra el donativo y, si trae donante, acumula en su seguimiento PLD.
// @Tags         donativos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateDonationRequest  true  "Datos del donativo"
// @Success      201   {object}  dto.RegisterDonationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/donativos [post]
func (h *DonationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDonationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.registerUC.Register(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidAmount):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_AMOUNT", Message: "cantidad debe ser mayor que cero"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "donante o cuenta no encontrados"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener donativo por ID
// @Tags         donativos
// @Produce      json
// @Param        id   path  string  true  "ID del donativo"
// @Success      200  {object}  dto.DonationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/donativos/{id} [get]
func (h *DonationHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.queryUC.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "donativo no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar donativos
// @Tags         donativos
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.DonationListResponse
// @Router       /api/donativos [get]
func (h *DonationHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.queryUC.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Recibo godoc
// @Summary      Constancia PDF del donativo
// @Tags         donativos
// @Produce      application/pdf
// @Param        id  path  string  true  "ID del donativo"
// @Success      200  {file}  file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/donativos/{id}/recibo [get]
func (h *DonationHandler) Recibo(c *fiber.Ctx) error {
	pdfBytes, err := h.reciboUC.Generate(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "donativo no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="constancia-`+c.Params("id")+`.pdf"`)
	return c.Send(pdfBytes)
}
