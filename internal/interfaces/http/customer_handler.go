package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/correduria/backoffice/internal/application/dto"
	"github.com/correduria/backoffice/internal/application/usecase"
)

// CustomerHandler maneja el recurso Customer.
type CustomerHandler struct {
	uc *usecase.CustomerUsecase
}

func NewCustomerHandler(uc *usecase.CustomerUsecase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// List godoc
// @Summary      Listar clientes
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.CustomerWithUser
// @Router       /api/customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetActor(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear ficha de cliente para un usuario existente
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateCustomerRequest  true  "auth_id, teléfono y dirección"
// @Success      201   {object}  dto.CustomerWithUser
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
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
// @Summary      Ficha de cliente
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "ID del cliente"
// @Success      200  {object}  dto.CustomerWithUser
// @Router       /api/customers/{id} [get]
func (h *CustomerHandler) Show(c *fiber.Ctx) error {
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
// @Summary      Detalle de cliente con sus pólizas e incidencias
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "ID del cliente"
// @Success      200  {object}  dto.CustomerDetailResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/customers/{id}/get-customer-detail [get]
func (h *CustomerHandler) Detail(c *fiber.Ctx) error {
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
// @Summary      Actualizar datos de contacto de un cliente
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int  true  "ID del cliente"
// @Param        body  body  dto.UpdateCustomerRequest  true  "teléfono y dirección"
// @Success      200   {object}  dto.CustomerWithUser
// @Router       /api/customers/{id} [put]
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.UpdateCustomerRequest
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
// @Summary      Eliminar ficha de cliente
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "ID del cliente"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [delete]
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(GetActor(c), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Cliente eliminado."})
}

// Mine godoc
// @Summary      Clientes del empleado autenticado
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.CustomerWithUser
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/get-my-customers [get]
func (h *CustomerHandler) Mine(c *fiber.Ctx) error {
	out, err := h.uc.Mine(GetActor(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
