package api

import (
	"github.com/gofiber/fiber/v2"
	v1 "github.com/smsassistent/client-go/internal/api/v1"
)

func SetupRoutes(app *fiber.App, handler *v1.Handler) {
	app.Get("/ping", handler.Pong)
	app.Get("/v1/balance", handler.Balance)
	app.Post("/v1/message", handler.Message)
	app.Post("/v1/messages", handler.Messages)
}
