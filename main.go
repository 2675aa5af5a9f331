package main

import (
	"log"

	"scholarhub/config"
	applicationController "scholarhub/controllers/application"
	authController "scholarhub/controllers/auth"
	dashboardController "scholarhub/controllers/dashboard"
	reviewController "scholarhub/controllers/review"
	scholarshipController "scholarhub/controllers/scholarship"
	"scholarhub/database"
	"scholarhub/middleware"
	applicationRoutes "scholarhub/routers/applicationRoutes"
	authRoutes "scholarhub/routers/authRoutes"
	dashboardRoutes "scholarhub/routers/dashboardRoutes"
	reviewRoutes "scholarhub/routers/reviewRoutes"
	scholarshipRoutes "scholarhub/routers/scholarshipRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	cfg := config.LoadConfig()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	auth := middleware.NewAuth(cfg, db.Db)

	authRoutes.SetupAuthRoutes(app, authController.New(db.Db, auth))
	dashboardRoutes.SetupDashboardRoutes(app, auth, dashboardController.New(db.Db))
	scholarshipRoutes.SetupScholarshipRoutes(app, auth, scholarshipController.New(db.Db))
	applicationRoutes.SetupApplicationRoutes(app, auth, applicationController.New(db.Db))
	reviewRoutes.SetupReviewRoutes(app, auth, reviewController.New(db.Db))

	log.Printf("Server is running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
