package Controllers

import (
	"github.com/gofiber/fiber/v2"

	"CarWash/ManipulateData"
)

// DataController exposes the raw document and a manual refresh hook.
type DataController struct {
	Manager *ManipulateData.Manager
}

func NewDataController(m *ManipulateData.Manager) *DataController {
	return &DataController{Manager: m}
}

// GetData returns a snapshot of the full company tree.
func (dc *DataController) GetData(ctx *fiber.Ctx) error {
	return ctx.JSON(dc.Manager.Snapshot())
}

// Reload refetches the document and wash item catalog from Firebase.
func (dc *DataController) Reload(ctx *fiber.Ctx) error {
	if err := dc.Manager.Reload(); err != nil {
		return errJSON(ctx, err)
	}
	return ctx.JSON(fiber.Map{"message": "Data reloaded"})
}
