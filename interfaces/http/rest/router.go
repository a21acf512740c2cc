package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"commerce-backend/application/commands/bus"
	querybus "commerce-backend/application/queries/bus"
	"commerce-backend/infrastructure/config"
	"commerce-backend/interfaces/http/rest/handlers"
	"commerce-backend/interfaces/http/rest/middleware"
)

// Router creates and configures the HTTP router
type Router struct {
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	config     *config.Config
	logger     *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	cfg *config.Config,
	logger *zap.Logger,
) *Router {
	return &Router{
		commandBus: commandBus,
		queryBus:   queryBus,
		config:     cfg,
		logger:     logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))
	// Requests past the deadline surface as Timeout errors downstream.
	router.Use(chimiddleware.Timeout(rt.config.RequestTimeout))

	if rt.config.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:3000"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/customers", func(r chi.Router) {
			customerHandler := handlers.NewCustomerHandler(rt.commandBus, rt.queryBus, rt.logger)
			r.Post("/", customerHandler.CreateCustomer)
			r.Get("/search", customerHandler.SearchCustomerByEmail)
			r.Get("/{customerID}", customerHandler.GetCustomer)
			r.Get("/{customerID}/orders", customerHandler.ListCustomerOrders)
		})

		r.Route("/products", func(r chi.Router) {
			productHandler := handlers.NewProductHandler(rt.commandBus, rt.queryBus, rt.logger)
			r.Post("/", productHandler.CreateProduct)
			r.Get("/", productHandler.ListProductsByCategory)
			r.Get("/{productID}", productHandler.GetProduct)
		})

		r.Route("/orders", func(r chi.Router) {
			orderHandler := handlers.NewOrderHandler(rt.commandBus, rt.queryBus, rt.logger)
			r.Post("/", orderHandler.CreateOrder)
			r.Get("/", orderHandler.ListOrders)
			r.Get("/{orderID}", orderHandler.GetOrder)
		})

		r.Route("/analytics", func(r chi.Router) {
			analyticsHandler := handlers.NewAnalyticsHandler(rt.queryBus, rt.logger)
			r.Get("/sales-summary", analyticsHandler.GetSalesSummary)
			r.Get("/customer-stats", analyticsHandler.GetCustomerStats)
			r.Get("/product-ranking", analyticsHandler.GetProductRanking)
		})
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
