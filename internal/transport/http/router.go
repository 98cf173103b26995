package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/nexus-dashboard/internal/application/market"
	"github.com/nexus-dashboard/internal/application/notification"
	"github.com/nexus-dashboard/internal/application/order"
	"github.com/nexus-dashboard/internal/config"
	"github.com/nexus-dashboard/internal/transport/http/handler"
	appmiddleware "github.com/nexus-dashboard/internal/transport/http/middleware"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router. ctx bounds the
// rate limiter's background cleanup.
func NewRouter(ctx context.Context, cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	orderRL := appmiddleware.NewRateLimiter(ctx, rate.Limit(cfg.OrderRateLimit), cfg.OrderRateBurst)

	var orderOpts []order.Option
	if deps.OrderEvents != nil {
		orderOpts = append(orderOpts, order.WithPublisher(deps.OrderEvents))
	}

	notifSvc := notification.NewService(deps.NotificationRepo)
	orderSvc := order.NewService(deps.OrderRepo, orderOpts...)
	marketSvc := market.NewService(deps.MarketRepo)

	healthH := handler.NewHealthHandler()
	notifH := handler.NewNotificationHandler(notifSvc, cfg.DefaultUserID)
	orderH := handler.NewOrderHandler(orderSvc, cfg.DefaultUserID)
	marketH := handler.NewMarketHandler(marketSvc, cfg.DefaultUserID)

	r.Get("/health-check/{action}", healthH.Ping)

	r.Get("/notifications", notifH.List)
	r.Patch("/notifications/{id}", notifH.Update)

	r.Get("/orders", orderH.List)
	r.With(orderRL.Limit).Post("/orders", orderH.Create)

	r.Get("/portfolio", marketH.Portfolio)
	r.Get("/marketdata", marketH.MarketData)
	r.Get("/executions", marketH.Executions)

	return r
}
