package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"ewm_backend/internals/configs"
	database "ewm_backend/internals/databases"
	middlewares "ewm_backend/internals/middlewares"
	routes "ewm_backend/internals/route"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
	})

	middlewares.SetupMiddlewares(app)

	database.ConnectStatsDB()
	database.TuneStatsPool()
	database.MigrateStats(database.StatsDB)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	routes.SetupStatsRoutes(app, database.StatsDB)

	port := os.Getenv("STATS_PORT")
	if port == "" {
		port = "9090"
	}

	go func() {
		log.Printf("✅ stats-server listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if sqlDB, err := database.StatsDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
