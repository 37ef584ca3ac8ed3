package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/fieldops/farm-admin/internal/api/dto"
	"github.com/fieldops/farm-admin/internal/service"
)

// FieldHandler exposes field endpoints.
type FieldHandler struct {
	fields *service.FieldService
}

// NewFieldHandler constructs handler.
func NewFieldHandler(fields *service.FieldService) *FieldHandler {
	return &FieldHandler{fields: fields}
}

// List handles GET /api/fields.
func (h *FieldHandler) List(c *fiber.Ctx) error {
	list := h.fields.List(c.UserContext())
	resp := make([]dto.FieldResponse, 0, len(list))
	for i := range list {
		resp = append(resp, fieldResponse(list[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// Locations handles GET /api/fields/locations.
func (h *FieldHandler) Locations(c *fiber.Ctx) error {
	markers := h.fields.Markers(c.UserContext())
	resp := make([]dto.FieldMarkerResponse, 0, len(markers))
	for _, m := range markers {
		resp = append(resp, dto.FieldMarkerResponse{
			FieldCode: m.FieldCode,
			FieldName: m.FieldName,
			Location:  dto.LocationDTO{Latitude: m.Location.Latitude, Longitude: m.Location.Longitude},
			FieldSize: m.FieldSize,
		})
	}
	return c.JSON(fiber.Map{"data": resp})
}

// Get handles GET /api/fields/:code.
func (h *FieldHandler) Get(c *fiber.Ctx) error {
	f, err := h.fields.Get(c.UserContext(), c.Params("code"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fieldResponse(*f)})
}

// Create handles POST /api/fields.
func (h *FieldHandler) Create(c *fiber.Ctx) error {
	var req dto.FieldRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	f, err := h.fields.Create(c.UserContext(), fieldInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": fieldResponse(*f)})
}

// Update handles PUT /api/fields/:code.
func (h *FieldHandler) Update(c *fiber.Ctx) error {
	var req dto.FieldRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	f, err := h.fields.Update(c.UserContext(), c.Params("code"), fieldInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fieldResponse(*f)})
}

// Delete handles DELETE /api/fields/:code.
func (h *FieldHandler) Delete(c *fiber.Ctx) error {
	if err := h.fields.Delete(c.UserContext(), c.Params("code")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
