package Controllers

import (
	"github.com/gofiber/fiber/v2"

	"CarWash/ManipulateData"
)

// RecordController serves the records table and record mutations.
type RecordController struct {
	Manager *ManipulateData.Manager
}

func NewRecordController(m *ManipulateData.Manager) *RecordController {
	return &RecordController{Manager: m}
}

// GetRecords returns filtered rows. Query params: company, vehicle,
// start, end, search. Missing company or vehicle means "all".
func (rc *RecordController) GetRecords(ctx *fiber.Ctx) error {
	company := ctx.Query("company", "all")
	vehicle := ctx.Query("vehicle", "all")
	rows := rc.Manager.Rows(company, vehicle, ctx.Query("start"), ctx.Query("end"), ctx.Query("search"))
	return ctx.JSON(rows)
}

func (rc *RecordController) CreateRecord(ctx *fiber.Ctx) error {
	var fields ManipulateData.RecordFields
	if err := ctx.BodyParser(&fields); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := rc.Manager.AddRecord(ctx.Params("id"), ctx.Params("vid"), fields); err != nil {
		return errJSON(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Record added"})
}

// DeleteRecord deletes the first record whose date matches ?date=.
func (rc *RecordController) DeleteRecord(ctx *fiber.Ctx) error {
	date := ctx.Query("date")
	if date == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "date query parameter is required"})
	}
	if err := rc.Manager.DeleteRecord(ctx.Params("id"), ctx.Params("vid"), date); err != nil {
		return errJSON(ctx, err)
	}
	return ctx.JSON(fiber.Map{"message": "Record deleted"})
}
