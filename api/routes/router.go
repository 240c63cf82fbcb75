package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"

	"github.com/veltrade/order-records-backend/api/controllers"
	"github.com/veltrade/order-records-backend/api/middleware"
	"github.com/veltrade/order-records-backend/internal/interchange"
	"github.com/veltrade/order-records-backend/internal/orders"
	"github.com/veltrade/order-records-backend/pkg/config"
	"github.com/veltrade/order-records-backend/pkg/db"
	"github.com/veltrade/order-records-backend/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	ordersSvc orders.Service,
	codec *interchange.Codec,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)
	if cfg.RateLimit.RequestLimit > 0 {
		r.Use(httprate.LimitByIP(cfg.RateLimit.RequestLimit, cfg.RateLimit.Window))
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP))
	})

	r.Route("/api/v1/orders", func(r chi.Router) {
		r.Get("/", controllers.ListOrders(ordersSvc, logg))
		r.Post("/", controllers.CreateOrder(ordersSvc, logg))
		r.Get("/summary", controllers.OrderSummary(ordersSvc, logg))
		r.Get("/export", controllers.ExportOrders(codec, logg))
		r.Post("/import", controllers.ImportOrders(codec, logg))
		r.Route("/{orderId}", func(r chi.Router) {
			r.Get("/", controllers.GetOrder(ordersSvc, logg))
			r.Put("/", controllers.UpdateOrder(ordersSvc, logg))
			r.Delete("/", controllers.DeleteOrder(ordersSvc, logg))
			r.Post("/dispatch", controllers.DispatchOrder(ordersSvc, logg))
		})
	})

	return r
}
