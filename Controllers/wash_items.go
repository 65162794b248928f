package Controllers

import (
	"github.com/gofiber/fiber/v2"

	"CarWash/ManipulateData"
)

// WashItemController manages the wash item catalog.
type WashItemController struct {
	Manager *ManipulateData.Manager
}

func NewWashItemController(m *ManipulateData.Manager) *WashItemController {
	return &WashItemController{Manager: m}
}

func (wc *WashItemController) GetWashItems(ctx *fiber.Ctx) error {
	return ctx.JSON(wc.Manager.WashItems())
}

func (wc *WashItemController) AddWashItem(ctx *fiber.Ctx) error {
	var input struct {
		Name  string `json:"name"`
		Price string `json:"price"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := wc.Manager.AddWashItem(input.Name, input.Price); err != nil {
		return errJSON(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Wash item added"})
}

// EditWashItem renames an item, changes its price, or both. A nil
// price keeps the current one.
func (wc *WashItemController) EditWashItem(ctx *fiber.Ctx) error {
	var input struct {
		OldName string `json:"old_name"`
		NewName string `json:"new_name"`
		Price   *int   `json:"price"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := wc.Manager.EditWashItem(input.OldName, input.NewName, input.Price); err != nil {
		return errJSON(ctx, err)
	}
	return ctx.JSON(fiber.Map{"message": "Wash item updated"})
}

func (wc *WashItemController) DeleteWashItem(ctx *fiber.Ctx) error {
	var input struct {
		Name string `json:"name"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := wc.Manager.DeleteWashItem(input.Name); err != nil {
		return errJSON(ctx, err)
	}
	return ctx.JSON(fiber.Map{"message": "Wash item deleted"})
}
