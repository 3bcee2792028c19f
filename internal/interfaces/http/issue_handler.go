package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/correduria/backoffice/internal/application/dto"
	"github.com/correduria/backoffice/internal/application/usecase"
)

// IssueHandler maneja el recurso Issue (incidencias).
type IssueHandler struct {
	uc *usecase.IssueUsecase
}

func NewIssueHandler(uc *usecase.IssueUsecase) *IssueHandler {
	return &IssueHandler{uc: uc}
}

// List godoc
// @Summary      Listar incidencias
// @Tags         issues
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.IssueEnriched
// @Router       /api/issues [get]
func (h *IssueHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetActor(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Abrir una incidencia sobre una póliza
// @Tags         issues
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateIssueRequest  true  "Datos de la incidencia"
// @Success      201   {object}  dto.IssueEnriched
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/issues [post]
func (h *IssueHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateIssueRequest
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
// @Summary      Ver una incidencia (solo el dueño o Admin)
// @Tags         issues
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "ID de la incidencia"
// @Success      200  {object}  dto.IssueEnriched
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/issues/{id} [get]
func (h *IssueHandler) Show(c *fiber.Ctx) error {
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

// Update godoc
// @Summary      Actualizar una incidencia
// @Tags         issues
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int  true  "ID de la incidencia"
// @Param        body  body  dto.UpdateIssueRequest  true  "subject y status"
// @Success      200   {object}  dto.IssueEnriched
// @Router       /api/issues/{id} [put]
func (h *IssueHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.UpdateIssueRequest
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
// @Summary      Eliminar una incidencia
// @Tags         issues
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "ID de la incidencia"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/issues/{id} [delete]
func (h *IssueHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(GetActor(c), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Incidencia eliminada."})
}

// Mine godoc
// @Summary      Incidencias de las pólizas del actor
// @Tags         issues
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.IssueEnriched
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/get-my-issues [get]
func (h *IssueHandler) Mine(c *fiber.Ctx) error {
	out, err := h.uc.Mine(GetActor(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
