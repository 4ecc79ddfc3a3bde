package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/1dhruvsingh/ResumeAI/career/assistant/assistantapi"
	"github.com/1dhruvsingh/ResumeAI/career/jobdescription/jobdescriptionapi"
	"github.com/1dhruvsingh/ResumeAI/pkg/config"
	"github.com/1dhruvsingh/ResumeAI/pkg/fiberx"
	"github.com/1dhruvsingh/ResumeAI/pkg/logx"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	// 1. Load Config and Logger
	cfg, err := config.Load()
	if err != nil {
		logx.Fatalf("Failed to load config: %v", err)
	}
	logx.SetLevel(logx.ParseLevel(cfg.LogLevel))
	logx.Info("Starting ResumeAI API Server...")

	// 2. Initialize Dependency Container
	container := NewContainer(cfg)
	defer container.DB.Close()
	defer container.Redis.Close()

	// 3. Create Fiber App
	app := fiberx.NewApp("ResumeAI API")

	// 4. Global Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, HEAD",
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// 5. Health Check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"db":     container.DB.Ping() == nil,
			"redis":  container.Redis.Ping(c.Context()).Err() == nil,
		})
	})

	// 6. Register Routes

	// /api/auth/*, /api/user
	container.AuthHandlers.RegisterRoutes(app, container.AuthMiddleware)

	// /api/resumes
	container.ResumeHandlers.RegisterRoutes(app, container.AuthMiddleware)

	// /api/job-descriptions
	jobdescriptionapi.RegisterRoutes(app, container.JobDescriptionHandlers, container.AuthMiddleware)

	// /api/resumes/:id/analyze, /api/chat
	assistantapi.RegisterRoutes(app, container.AssistantHandlers, container.AuthMiddleware)

	// 7. Start Server with Graceful Shutdown
	go func() {
		logx.Infof("Server listening on port %s", cfg.Server.Port)
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			logx.Fatalf("Server error: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c
	logx.Info("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		logx.Errorf("Server forced to shutdown: %v", err)
	}

	logx.Info("Server exited")
}
