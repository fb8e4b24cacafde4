package wire

import (
	"net/http"

	"github.com/Guilh-montalvao/hotel-management-system-sub000/internal/adaptor"
	"github.com/Guilh-montalvao/hotel-management-system-sub000/internal/data/repository"
	"github.com/Guilh-montalvao/hotel-management-system-sub000/internal/events"
	"github.com/Guilh-montalvao/hotel-management-system-sub000/internal/usecase"
	"github.com/Guilh-montalvao/hotel-management-system-sub000/pkg/middleware"
	"github.com/Guilh-montalvao/hotel-management-system-sub000/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// App holds the wired HTTP surface
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and routes
func Wiring(repo *repository.Repository, config *utils.Config, rdb *redis.Client, publisher events.Publisher, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, rdb, publisher, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the chi router
func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireRoom(r, handler.Room)
	wireGuest(r, handler.Guest)
	wireBooking(r, handler.Booking)
	wirePayment(r, handler.Payment)
	wireDashboard(r, handler.Dashboard)
	wireReport(r, handler.Report)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
