package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/fieldops/farm-admin/internal/api/dto"
	"github.com/fieldops/farm-admin/internal/service"
)

// VehicleHandler exposes vehicle endpoints.
type VehicleHandler struct {
	vehicles *service.VehicleService
}

// NewVehicleHandler constructs handler.
func NewVehicleHandler(vehicles *service.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicles: vehicles}
}

// List handles GET /api/vehicles.
func (h *VehicleHandler) List(c *fiber.Ctx) error {
	list := h.vehicles.List(c.UserContext())
	resp := make([]dto.VehicleResponse, 0, len(list))
	for i := range list {
		resp = append(resp, vehicleResponse(list[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// Get handles GET /api/vehicles/:code.
func (h *VehicleHandler) Get(c *fiber.Ctx) error {
	v, err := h.vehicles.Get(c.UserContext(), c.Params("code"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": vehicleResponse(*v)})
}

// Create handles POST /api/vehicles.
func (h *VehicleHandler) Create(c *fiber.Ctx) error {
	var req dto.VehicleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	v, err := h.vehicles.Create(c.UserContext(), vehicleInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": vehicleResponse(*v)})
}

// Update handles PUT /api/vehicles/:code.
func (h *VehicleHandler) Update(c *fiber.Ctx) error {
	var req dto.VehicleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	v, err := h.vehicles.Update(c.UserContext(), c.Params("code"), vehicleInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": vehicleResponse(*v)})
}

// Delete handles DELETE /api/vehicles/:code.
func (h *VehicleHandler) Delete(c *fiber.Ctx) error {
	if err := h.vehicles.Delete(c.UserContext(), c.Params("code")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
