package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/prevlav/cumplimiento-api/internal/application/donativos"
	"github.com/prevlav/cumplimiento-api/internal/application/dto"
	"github.com/prevlav/cumplimiento-api/internal/application/usecase"
	"github.com/prevlav/cumplimiento-api/internal/domain"
)

// DonorHandler maneja las peticiones HTTP para el recurso Donante.
type DonorHandler struct {
	uc         *usecase.DonorUseCase
	cuentaUC   *usecase.BankAccountUseCase
	donationUC *donativos.DonationQueryUseCase
	trackingUC *donativos.TrackingQueryUseCase
}

// NewDonorHandler construye el handler con los casos de uso del donante y sus
// recursos anidados (cuentas, donativos, seguimientos).
func NewDonorHandler(
	uc *usecase.DonorUseCase,
	cuentaUC *usecase.BankAccountUseCase,
	donationUC *donativos.DonationQueryUseCase,
	trackingUC *donativos.TrackingQueryUseCase,
) *DonorHandler {
	return &DonorHandler{uc: uc, cuentaUC: cuentaUC, donationUC: donationUC, trackingUC: trackingUC}
}

// Create godoc
// @Summary      Registrar donante
// @Tags         donantes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDonorRequest  true  "Datos del donante"
// @Success      201   {object}  dto.DonorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/donantes [post]
func (h *DonorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDonorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Nombre == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre_varchar es requerido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "donante con ese RFC ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener donante por ID
// @Tags         donantes
// @Produce      json
// @Param        id   path  string  true  "ID del donante"
// @Success      200  {object}  dto.DonorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/donantes/{id} [get]
func (h *DonorHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "donante no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar donantes
// @Tags         donantes
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.DonorListResponse
// @Router       /api/donantes [get]
func (h *DonorHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListCuentas godoc
// @Summary      Cuentas del donante (enmascaradas)
// @Tags         donantes
// @Produce      json
// @Param        id  path  string  true  "ID del donante"
// @Success      200  {object}  dto.BankAccountListResponse
// @Router       /api/donantes/{id}/cuentas [get]
func (h *DonorHandler) ListCuentas(c *fiber.Ctx) error {
	out, err := h.cuentaUC.ListByDonor(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListDonativos godoc
// @Summary      Donativos del donante
// @Tags         donantes
// @Produce      json
// @Param        id  path  string  true  "ID del donante"
// @Success      200  {object}  dto.DonationListResponse
// @Router       /api/donantes/{id}/donativos [get]
func (h *DonorHandler) ListDonativos(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.donationUC.ListByDonor(c.Params("id"), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListSeguimientos godoc
// @Summary      Seguimientos PLD del donante
// @Tags         donantes
// @Produce      json
// @Param        id  path  string  true  "ID del donante"
// @Success      200  {object}  dto.TrackingListResponse
// @Router       /api/donantes/{id}/seguimientos [get]
func (h *DonorHandler) ListSeguimientos(c *fiber.Ctx) error {
	out, err := h.trackingUC.ListByDonor(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// pageParams lee limit/offset de la query con defaults y tope de 100.
func pageParams(c *fiber.Ctx) (int, int) {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
