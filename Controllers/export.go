package Controllers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"CarWash/Export"
	"CarWash/ManipulateData"
)

// ExportController serves the records table as an xlsx download.
type ExportController struct {
	Manager *ManipulateData.Manager
}

func NewExportController(m *ManipulateData.Manager) *ExportController {
	return &ExportController{Manager: m}
}

// ExportRecords applies the same filters as GetRecords and streams the
// result as a spreadsheet.
func (ec *ExportController) ExportRecords(ctx *fiber.Ctx) error {
	company := ctx.Query("company", "all")
	vehicle := ctx.Query("vehicle", "all")
	rows := ec.Manager.Rows(company, vehicle, ctx.Query("start"), ctx.Query("end"), ctx.Query("search"))

	buf, err := Export.WriteExcel(rows)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	filename := fmt.Sprintf("wash_records_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	return ctx.Send(buf.Bytes())
}
