package Controllers

import (
	"github.com/gofiber/fiber/v2"

	"CarWash/ManipulateData"
	"CarWash/Models"
)

// WashGroupController manages the wash group presets.
type WashGroupController struct {
	Manager *ManipulateData.Manager
}

func NewWashGroupController(m *ManipulateData.Manager) *WashGroupController {
	return &WashGroupController{Manager: m}
}

type washGroupView struct {
	ID string `json:"id"`
	*Models.WashGroup
}

// GetWashGroups returns the group presets in display order.
func (gc *WashGroupController) GetWashGroups(ctx *fiber.Ctx) error {
	entries := gc.Manager.WashGroups()
	out := make([]washGroupView, 0, len(entries))
	for _, e := range entries {
		out = append(out, washGroupView{ID: e.ID, WashGroup: e.Group})
	}
	return ctx.JSON(out)
}

func (gc *WashGroupController) CreateWashGroup(ctx *fiber.Ctx) error {
	var input struct {
		Name string `json:"name"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	id, err := gc.Manager.AddWashGroup(input.Name)
	if err != nil {
		return errJSON(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

// UpdateWashGroup renames a group.
func (gc *WashGroupController) UpdateWashGroup(ctx *fiber.Ctx) error {
	var input struct {
		Name string `json:"name"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := gc.Manager.UpdateWashGroup(ctx.Params("id"), input.Name); err != nil {
		return errJSON(ctx, err)
	}
	return ctx.JSON(fiber.Map{"message": "Wash group updated"})
}

func (gc *WashGroupController) DeleteWashGroup(ctx *fiber.Ctx) error {
	if err := gc.Manager.DeleteWashGroup(ctx.Params("id")); err != nil {
		return errJSON(ctx, err)
	}
	return ctx.JSON(fiber.Map{"message": "Wash group deleted"})
}

func (gc *WashGroupController) AddItemToGroup(ctx *fiber.Ctx) error {
	var input struct {
		Name string `json:"name"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := gc.Manager.AddItemToGroup(ctx.Params("id"), input.Name); err != nil {
		return errJSON(ctx, err)
	}
	return ctx.JSON(fiber.Map{"message": "Item added to group"})
}

func (gc *WashGroupController) RemoveItemFromGroup(ctx *fiber.Ctx) error {
	var input struct {
		Name string `json:"name"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := gc.Manager.RemoveItemFromGroup(ctx.Params("id"), input.Name); err != nil {
		return errJSON(ctx, err)
	}
	return ctx.JSON(fiber.Map{"message": "Item removed from group"})
}

func (gc *WashGroupController) ReorderWashGroups(ctx *fiber.Ctx) error {
	var input struct {
		Order []string `json:"order"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := gc.Manager.ReorderWashGroups(input.Order); err != nil {
		return errJSON(ctx, err)
	}
	return ctx.JSON(fiber.Map{"message": "Order saved"})
}
