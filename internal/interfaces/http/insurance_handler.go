package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/correduria/backoffice/internal/application/dto"
	"github.com/correduria/backoffice/internal/application/usecase"
)

// InsuranceHandler maneja el recurso Insurance (pólizas).
type InsuranceHandler struct {
	uc *usecase.InsuranceUsecase
}

func NewInsuranceHandler(uc *usecase.InsuranceUsecase) *InsuranceHandler {
	return &InsuranceHandler{uc: uc}
}

// List godoc
// @Summary      Listar pólizas
// @Tags         insurances
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.InsuranceEnriched
// @Router       /api/insurances [get]
func (h *InsuranceHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetActor(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Emitir una póliza
// @Tags         insurances
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateInsuranceRequest  true  "Datos de la póliza"
// @Success      201   {object}  dto.InsuranceEnriched
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/insurances [post]
func (h *InsuranceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInsuranceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(GetActor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Show godoc
// @Summary      Ver una póliza
// @Tags         insurances
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "ID de la póliza"
// @Success      200  {object}  dto.InsuranceEnriched
// @Router       /api/insurances/{id} [get]
func (h *InsuranceHandler) Show(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Show(GetActor(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Detail godoc
// @Summary      Detalle de póliza con incidencias (solo el dueño o Admin)
// @Tags         insurances
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "ID de la póliza"
// @Success      200  {object}  dto.InsuranceDetailResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/insurances/{id}/get-insurance-detail [get]
func (h *InsuranceHandler) Detail(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Detail(GetActor(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar la descripción de una póliza
// @Tags         insurances
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int  true  "ID de la póliza"
// @Param        body  body  dto.UpdateInsuranceRequest  true  "description"
// @Success      200   {object}  dto.InsuranceEnriched
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/insurances/{id} [put]
func (h *InsuranceHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.UpdateInsuranceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(GetActor(c), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar una póliza
// @Tags         insurances
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "ID de la póliza"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/insurances/{id} [delete]
func (h *InsuranceHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(GetActor(c), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Póliza eliminada correctamente."})
}

// Mine godoc
// @Summary      Pólizas del actor (como comercial o como tomador)
// @Tags         insurances
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.InsuranceEnriched
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/get-my-insurances [get]
func (h *InsuranceHandler) Mine(c *fiber.Ctx) error {
	out, err := h.uc.Mine(GetActor(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
