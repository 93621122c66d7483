package routes

import (
	"port-app/config"
	"port-app/controllers"
	"port-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupExportRoutes(app *fiber.App, db *gorm.DB) {
	exportController := controllers.NewExportController(db)

	api := app.Group(config.MAIN_ROUTES+"/exports", middleware.AuthMiddleware)
	api.Get("/manifest/:vessel_id", exportController.Manifest)
	api.Get("/tally/:report_no", exportController.TallyPDF)
	api.Get("/work-orders/:report_no", exportController.WorkOrdersPDF)
}
