package Controllers

import (
	"github.com/gofiber/fiber/v2"

	"CarWash/ManipulateData"
	"CarWash/Models"
)

// VehicleController handles vehicle CRUD within a company.
type VehicleController struct {
	Manager *ManipulateData.Manager
}

func NewVehicleController(m *ManipulateData.Manager) *VehicleController {
	return &VehicleController{Manager: m}
}

type vehicleView struct {
	ID string `json:"id"`
	*Models.Vehicle
}

// GetVehicles returns one company's vehicles in display order.
func (vc *VehicleController) GetVehicles(ctx *fiber.Ctx) error {
	entries, err := vc.Manager.Vehicles(ctx.Params("id"))
	if err != nil {
		return errJSON(ctx, err)
	}
	out := make([]vehicleView, 0, len(entries))
	for _, e := range entries {
		out = append(out, vehicleView{ID: e.ID, Vehicle: e.Vehicle})
	}
	return ctx.JSON(out)
}

func (vc *VehicleController) CreateVehicle(ctx *fiber.Ctx) error {
	var fields ManipulateData.VehicleFields
	if err := ctx.BodyParser(&fields); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	id, err := vc.Manager.AddVehicle(ctx.Params("id"), fields)
	if err != nil {
		return errJSON(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

func (vc *VehicleController) UpdateVehicle(ctx *fiber.Ctx) error {
	var fields ManipulateData.VehicleFields
	if err := ctx.BodyParser(&fields); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := vc.Manager.UpdateVehicle(ctx.Params("id"), ctx.Params("vid"), fields); err != nil {
		return errJSON(ctx, err)
	}
	return ctx.JSON(fiber.Map{"message": "Vehicle updated"})
}

// DeleteVehicle removes the vehicle and all its records.
func (vc *VehicleController) DeleteVehicle(ctx *fiber.Ctx) error {
	if err := vc.Manager.DeleteVehicle(ctx.Params("id"), ctx.Params("vid")); err != nil {
		return errJSON(ctx, err)
	}
	return ctx.JSON(fiber.Map{"message": "Vehicle deleted"})
}

func (vc *VehicleController) ReorderVehicles(ctx *fiber.Ctx) error {
	var input struct {
		Order []string `json:"order"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := vc.Manager.ReorderVehicles(ctx.Params("id"), input.Order); err != nil {
		return errJSON(ctx, err)
	}
	return ctx.JSON(fiber.Map{"message": "Order saved"})
}
