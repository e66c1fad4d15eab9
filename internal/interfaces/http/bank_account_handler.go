package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/prevlav/cumplimiento-api/internal/application/dto"
	"github.com/prevlav/cumplimiento-api/internal/application/usecase"
	"github.com/prevlav/cumplimiento-api/internal/domain"
)

// BankAccountHandler maneja las peticiones HTTP para cuentas receptoras.
// Todas las respuestas salen con CLABE y número enmascarados.
type BankAccountHandler struct {
	uc *usecase.BankAccountUseCase
}

// NewBankAccountHandler construye el handler inyectando el caso de uso.
func NewBankAccountHandler(uc *usecase.BankAccountUseCase) *BankAccountHandler {
	return &BankAccountHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar cuenta receptora
// @Tags         cuentas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBankAccountRequest  true  "Datos de la cuenta"
// @Success      201   {object}  dto.BankAccountResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cuentas [post]
func (h *BankAccountHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBankAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.CLABE == "" || in.NumCuenta == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "clabe y num_cuenta son requeridos"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "donante no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener cuenta por ID (enmascarada)
// @Tags         cuentas
// @Produce      json
// @Param        id   path  string  true  "ID de la cuenta"
// @Success      200  {object}  dto.BankAccountResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cuentas/{id} [get]
func (h *BankAccountHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cuenta no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar cuentas (enmascaradas)
// @Tags         cuentas
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.BankAccountListResponse
// @Router       /api/cuentas [get]
func (h *BankAccountHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
