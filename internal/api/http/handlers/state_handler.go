package handlers

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/fieldops/farm-admin/internal/api/dto"
	"github.com/fieldops/farm-admin/internal/export"
	"github.com/fieldops/farm-admin/internal/service"
	"github.com/fieldops/farm-admin/internal/store"
	apperrors "github.com/fieldops/farm-admin/pkg/util"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// StateHandler serves the whole entity tree.
type StateHandler struct {
	store *store.Store
}

// NewStateHandler constructs handler.
func NewStateHandler(st *store.Store) *StateHandler {
	return &StateHandler{store: st}
}

// Get handles GET /api/state.
func (h *StateHandler) Get(c *fiber.Ctx) error {
	state := h.store.GetState()
	resp := dto.StateResponse{
		Staff:   make([]dto.StaffResponse, 0, len(state.Staff)),
		Vehicle: make([]dto.VehicleResponse, 0, len(state.Vehicle)),
		Field:   make([]dto.FieldResponse, 0, len(state.Field)),
	}
	for _, s := range state.Staff {
		resp.Staff = append(resp.Staff, staffResponse(s))
	}
	for _, v := range state.Vehicle {
		resp.Vehicle = append(resp.Vehicle, vehicleResponse(service.NewVehicleView(state, v)))
	}
	for _, f := range state.Field {
		resp.Field = append(resp.Field, fieldResponse(service.NewFieldView(state, f)))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// Export handles GET /api/export.xlsx.
func (h *StateHandler) Export(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := export.WriteWorkbook(&buf, h.store.GetState()); err != nil {
		return apperrors.NewInternalError(err)
	}
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="farm-admin-%s.xlsx"`, time.Now().UTC().Format("20060102")))
	return c.Send(buf.Bytes())
}
