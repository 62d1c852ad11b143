// Package api exposes the simulators over HTTP.
//
// Every handler validates raw input at the boundary, calls one engine once and
// returns the fully materialized result. Clients replay it at their own pace.
package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"

	"github.com/os-sim/os-sim/config"
	"github.com/os-sim/os-sim/sim/fcfs"
	"github.com/os-sim/os-sim/sim/lru"
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewApp builds the fiber application with all routes registered.
func NewApp(cfg *config.ServerConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "os-sim",
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		BodyLimit:             cfg.BodyLimit,
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})
	app.Use(recover.New())
	app.Use(requestLogger())
	app.Use(compress.New(compress.Config{Level: compress.LevelBestSpeed}))

	h := NewSimulatorHandler(cfg)
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")
	v1.Post("/fcfs", h.FirstComeFirstServe)
	v1.Post("/lru", h.LeastRecentlyUsed)
	v1.Get("/lru", h.LeastRecentlyUsedQuery)
	v1.Get("/presets", h.Presets)

	return app
}

// errorHandler renders boundary validation errors as 400 and everything else
// with the status carried by *fiber.Error, or 500.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		code = fe.Code
	case errors.Is(err, fcfs.ErrInvalidInput), errors.Is(err, lru.ErrInvalidInput):
		code = fiber.StatusBadRequest
	}
	if code >= fiber.StatusInternalServerError {
		logrus.Errorf("%s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(code).JSON(ErrorResponse{Error: err.Error()})
}

func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			} else if errors.Is(err, fcfs.ErrInvalidInput) || errors.Is(err, lru.ErrInvalidInput) {
				status = fiber.StatusBadRequest
			}
		}
		logrus.WithFields(logrus.Fields{
			"method":  c.Method(),
			"path":    c.Path(),
			"status":  status,
			"latency": time.Since(start),
		}).Info("request")
		return err
	}
}
