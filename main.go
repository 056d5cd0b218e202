package main

import (
	"log"

	"studynotion/config"
	"studynotion/database"
	"studynotion/middleware"
	paymentRoutes "studynotion/routers/paymentRoutes"
	"studynotion/services/enrollment"
	"studynotion/utils"

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

	app.Use(middleware.RequestID)

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	gateway := utils.NewGatewayClient(config.AppConfig.PaymentVerifyURL)
	enrollmentService := enrollment.NewService(database.Database.Db, config.AppConfig, gateway)

	paymentRoutes.SetupPaymentRoutes(app, enrollmentService)

	utils.StartRosterAudit()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
