package main

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/smsassistent/client-go/internal/api"
	v1 "github.com/smsassistent/client-go/internal/api/v1"
	"github.com/smsassistent/client-go/internal/config"
	"github.com/smsassistent/client-go/internal/service"
	"github.com/smsassistent/client-go/pkg/httpclient"
	"github.com/smsassistent/client-go/pkg/smsassistent"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			fiber.New,

			NewSMSClient,
			NewSMSService,

			v1.NewHandler,
		),
		fx.Invoke(startServer),
	).Run()
}

func startServer(app *fiber.App, handler *v1.Handler, cfg *config.Config, lc fx.Lifecycle) {
	api.SetupRoutes(app, handler)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go app.Listen(cfg.API.Port)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})
}

func NewSMSClient(cfg *config.Config) (*smsassistent.Client, error) {
	transport := httpclient.NewHTTPClient(cfg.HTTP.Timeout)
	return smsassistent.NewClient(cfg.Provider, transport)
}

func NewSMSService(client *smsassistent.Client, logger *zap.Logger) service.SMSService {
	return service.NewSMSService(client, logger)
}
