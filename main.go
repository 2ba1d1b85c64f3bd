package main

import (
	"log"

	"docseva/config"
	"docseva/database"
	authRoutes "docseva/routers/authRoutes"
	cartRoutes "docseva/routers/cartRoutes"
	catalogRoutes "docseva/routers/catalogRoutes"
	checkoutRoutes "docseva/routers/checkoutRoutes"
	identityRoutes "docseva/routers/identityRoutes"
	orderRoutes "docseva/routers/orderRoutes"
	paymentRoutes "docseva/routers/paymentRoutes"
	"docseva/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	catalogRoutes.SetupCatalogRoutes(app)
	cartRoutes.SetupCartRoutes(app)
	identityRoutes.SetupIdentityRoutes(app)
	checkoutRoutes.SetupCheckoutRoutes(app)
	paymentRoutes.SetupPaymentRoutes(app)
	orderRoutes.SetupOrderRoutes(app)

	// Third confirmation channel: poll the gateway for stale pending orders
	sweeper := utils.InitializePaymentSweeper()
	defer sweeper.Stop()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
