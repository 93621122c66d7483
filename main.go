package main

import (
	"context"
	"fmt"
	"log"

	"port-app/config"
	"port-app/controllers/idgen"
	"port-app/database"
	"port-app/realtime"
	"port-app/routes"

	"github.com/gofiber/fiber/v2"
)

func main() {
	config.LoadConfig()

	app := fiber.New()

	db, err := database.Open()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	idgen.Init()
	database.RunSeeders(db)

	hub := realtime.NewHub(config.RedisAddr, config.RedisPassword, config.RedisChannel)
	go hub.Listen(context.Background())

	config.SetupCORS(app)

	routes.SetupAuthRoutes(app, db)
	routes.SetupVesselRoutes(app, db, hub)
	routes.SetupContainerRoutes(app, db, hub)
	routes.SetupCustomsRoutes(app, db, hub)
	routes.SetupTallyRoutes(app, db, hub)
	routes.SetupWorkOrderRoutes(app, db)
	routes.SetupSealRoutes(app, db, hub)
	routes.SetupVehicleRoutes(app, db)
	routes.SetupPriceRoutes(app, db)
	routes.SetupConsigneeRoutes(app, db)
	routes.SetupMemberRoutes(app, db)
	routes.SetupUserRoutes(app, db)
	routes.SetupExportRoutes(app, db)

	port := config.APP_PORT
	fmt.Println("Server running on port " + port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
