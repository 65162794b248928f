package Controllers

import (
	"github.com/gofiber/fiber/v2"

	"CarWash/ManipulateData"
	"CarWash/Models"
)

// CompanyController handles company CRUD and display reordering.
type CompanyController struct {
	Manager *ManipulateData.Manager
}

func NewCompanyController(m *ManipulateData.Manager) *CompanyController {
	return &CompanyController{Manager: m}
}

type companyView struct {
	ID string `json:"id"`
	*Models.Company
}

// GetCompanies returns companies in display order.
func (cc *CompanyController) GetCompanies(ctx *fiber.Ctx) error {
	entries := cc.Manager.Companies()
	out := make([]companyView, 0, len(entries))
	for _, e := range entries {
		out = append(out, companyView{ID: e.ID, Company: e.Company})
	}
	return ctx.JSON(out)
}

// CreateCompany adds a company and returns its generated id.
func (cc *CompanyController) CreateCompany(ctx *fiber.Ctx) error {
	var fields ManipulateData.CompanyFields
	if err := ctx.BodyParser(&fields); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	id, err := cc.Manager.AddCompany(fields)
	if err != nil {
		return errJSON(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

func (cc *CompanyController) UpdateCompany(ctx *fiber.Ctx) error {
	var fields ManipulateData.CompanyFields
	if err := ctx.BodyParser(&fields); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := cc.Manager.UpdateCompany(ctx.Params("id"), fields); err != nil {
		return errJSON(ctx, err)
	}
	return ctx.JSON(fiber.Map{"message": "Company updated"})
}

// DeleteCompany cascades: every vehicle and record under the company goes
// with it. The client confirms with the user before calling.
func (cc *CompanyController) DeleteCompany(ctx *fiber.Ctx) error {
	if err := cc.Manager.DeleteCompany(ctx.Params("id")); err != nil {
		return errJSON(ctx, err)
	}
	return ctx.JSON(fiber.Map{"message": "Company deleted"})
}

// ReorderCompanies persists a drag-and-drop ordering.
func (cc *CompanyController) ReorderCompanies(ctx *fiber.Ctx) error {
	var input struct {
		Order []string `json:"order"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := cc.Manager.ReorderCompanies(input.Order); err != nil {
		return errJSON(ctx, err)
	}
	return ctx.JSON(fiber.Map{"message": "Order saved"})
}
