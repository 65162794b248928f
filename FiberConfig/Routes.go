package FiberConfig

import (
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"CarWash/Controllers"
	"CarWash/ManipulateData"
	"CarWash/middleware"
)

func SetupRoutes(app *fiber.App, manager *ManipulateData.Manager) {
	// Initialize handlers
	companyController := Controllers.NewCompanyController(manager)
	vehicleController := Controllers.NewVehicleController(manager)
	recordController := Controllers.NewRecordController(manager)
	washItemController := Controllers.NewWashItemController(manager)
	washGroupController := Controllers.NewWashGroupController(manager)
	exportController := Controllers.NewExportController(manager)
	dataController := Controllers.NewDataController(manager)

	app.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"status": "ok"})
	})

	app.Post("/api/Login", Controllers.Login)
	app.Post("/api/Logout", Controllers.Logout)

	// API group
	api := app.Group("/api", middleware.Verify())

	// Company routes
	companies := api.Group("/companies")
	companies.Get("/", companyController.GetCompanies)
	companies.Post("/", companyController.CreateCompany)
	companies.Put("/reorder", companyController.ReorderCompanies)
	companies.Put("/:id", companyController.UpdateCompany)
	companies.Delete("/:id", companyController.DeleteCompany)

	// Vehicle routes under companies
	companies.Get("/:id/vehicles", vehicleController.GetVehicles)
	companies.Post("/:id/vehicles", vehicleController.CreateVehicle)
	companies.Put("/:id/vehicles/reorder", vehicleController.ReorderVehicles)
	companies.Put("/:id/vehicles/:vid", vehicleController.UpdateVehicle)
	companies.Delete("/:id/vehicles/:vid", vehicleController.DeleteVehicle)

	// Record routes
	api.Get("/records", recordController.GetRecords)
	companies.Post("/:id/vehicles/:vid/records", recordController.CreateRecord)
	companies.Delete("/:id/vehicles/:vid/records", recordController.DeleteRecord)

	// Wash item catalog routes
	washItems := api.Group("/wash-items")
	washItems.Get("/", washItemController.GetWashItems)
	washItems.Post("/", washItemController.AddWashItem)
	washItems.Put("/", washItemController.EditWashItem)
	washItems.Delete("/", washItemController.DeleteWashItem)

	// Wash group preset routes
	washGroups := api.Group("/wash-groups")
	washGroups.Get("/", washGroupController.GetWashGroups)
	washGroups.Post("/", washGroupController.CreateWashGroup)
	washGroups.Put("/reorder", washGroupController.ReorderWashGroups)
	washGroups.Put("/:id", washGroupController.UpdateWashGroup)
	washGroups.Delete("/:id", washGroupController.DeleteWashGroup)
	washGroups.Post("/:id/items", washGroupController.AddItemToGroup)
	washGroups.Delete("/:id/items", washGroupController.RemoveItemFromGroup)

	// Logs API routes
	api.Get("/logs", Controllers.GetLogs)
	api.Get("/logs/stats", Controllers.GetLogStats)

	// Export and raw data routes
	api.Get("/export", exportController.ExportRecords)
	api.Get("/data", dataController.GetData)
	api.Post("/reload", dataController.Reload)
}

func FiberConfig(manager *ManipulateData.Manager) {
	fmt.Println("Server Up...")
	app := fiber.New()
	app.Use(middleware.RequestLogger())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestCompression, // 2
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		AllowCredentials: true, // Important for cookies
		MaxAge:           300,
	}))

	SetupRoutes(app, manager)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	app.Listen(":" + port)
}
