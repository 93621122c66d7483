package routes

import (
	"port-app/config"
	"port-app/controllers"
	"port-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupWorkOrderRoutes(app *fiber.App, db *gorm.DB) {
	workOrderController := controllers.NewWorkOrderController(db)

	api := app.Group(config.MAIN_ROUTES+"/work-orders", middleware.AuthMiddleware)
	api.Get("/", workOrderController.GetAll)
	api.Get("/report/:report_no", workOrderController.GetByReportNo)
	api.Get("/vessel/:vessel_id", workOrderController.GetByVessel)
}
