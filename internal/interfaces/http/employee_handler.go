package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/correduria/backoffice/internal/application/dto"
	"github.com/correduria/backoffice/internal/application/usecase"
)

// EmployeeHandler maneja el recurso Employee.
type EmployeeHandler struct {
	uc *usecase.EmployeeUsecase
}

func NewEmployeeHandler(uc *usecase.EmployeeUsecase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// List godoc
// @Summary      Listar empleados
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.EmployeeWithUser
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetActor(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear ficha de empleado para un usuario existente
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateEmployeeRequest  true  "auth_id y company_id"
// @Success      201   {object}  dto.EmployeeWithUser
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/employees [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
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
// @Summary      Ficha de empleado
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "ID del empleado"
// @Success      200  {object}  dto.EmployeeWithUser
// @Router       /api/employees/{id} [get]
func (h *EmployeeHandler) Show(c *fiber.Ctx) error {
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
// @Summary      Detalle de empleado con pólizas e incidencias
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "ID del empleado"
// @Success      200  {object}  dto.EmployeeDetailResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/employees/{id}/get-employee-detail [get]
func (h *EmployeeHandler) Detail(c *fiber.Ctx) error {
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
// @Summary      Cambiar de empresa a un empleado
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int  true  "ID del empleado"
// @Param        body  body  dto.UpdateEmployeeRequest  true  "company_id"
// @Success      200   {object}  dto.EmployeeWithUser
// @Router       /api/employees/{id} [put]
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.UpdateEmployeeRequest
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
// @Summary      Eliminar ficha de empleado
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "ID del empleado"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [delete]
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(GetActor(c), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Empleado eliminado."})
}

// Mine godoc
// @Summary      Plantilla de la empresa del manager autenticado
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.EmployeeWithUser
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/get-my-employees [get]
func (h *EmployeeHandler) Mine(c *fiber.Ctx) error {
	out, err := h.uc.Mine(GetActor(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
