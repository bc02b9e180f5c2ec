package main

import (
	"time"

	"github.com/AnthoniusHendriyanto/todo-service/config"
	authhandler "github.com/AnthoniusHendriyanto/todo-service/internal/auth/handler"
	authrepo "github.com/AnthoniusHendriyanto/todo-service/internal/auth/repository/memory"
	authservice "github.com/AnthoniusHendriyanto/todo-service/internal/auth/service"
	"github.com/AnthoniusHendriyanto/todo-service/internal/logger"
	todohandler "github.com/AnthoniusHendriyanto/todo-service/internal/todo/handler"
	todorepo "github.com/AnthoniusHendriyanto/todo-service/internal/todo/repository/memory"
	todoservice "github.com/AnthoniusHendriyanto/todo-service/internal/todo/service"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	log := logger.New(0)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config", "error", err)
	}
	log = logger.New(cfg.LogLevel)
	if cfg.TokenSecret == "dev-secret-change-me" {
		log.Warn("TOKEN_SECRET not set, using development default")
	}

	userRepo := authrepo.NewUserRepository()
	todoRepo := todorepo.NewTodoRepository()

	tokenService := authservice.NewTokenService(cfg.TokenSecret, time.Duration(cfg.TokenExpiryHours)*time.Hour)
	userService := authservice.NewUserService(userRepo, todoRepo, tokenService, log)
	todoService := todoservice.NewTodoService(todoRepo)

	authHandler := authhandler.NewAuthHandler(userService, tokenService)
	todoHandler := todohandler.NewTodoHandler(todoService)

	app := fiber.New()
	app.Use(recover.New())
	app.Use(fiberlogger.New())

	authhandler.RegisterRoutes(app, authHandler)
	todohandler.RegisterRoutes(app, todoHandler, authHandler.RequireAuth)

	log.Info("starting server", "port", cfg.Port, "env", cfg.Env)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", "error", err)
	}
}
