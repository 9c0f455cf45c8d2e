package wire

import (
	"net/http"

	"foodgram-admin/internal/adaptor"
	"foodgram-admin/internal/console"
	"foodgram-admin/internal/data/backend"
	"foodgram-admin/internal/session"
	"foodgram-admin/internal/usecase"
	"foodgram-admin/pkg/middleware"
	"foodgram-admin/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Router *chi.Mux
	Poller *console.BadgePoller
}

// Wiring menginisialisasi semua dependencies
func Wiring(api *backend.Client, store *session.Store, config *utils.Config, logger *zap.Logger) *App {
	// Initialize services dan handlers
	resources := backend.NewBackend(api, logger)
	service := usecase.NewService(resources, store, config, logger)

	// A 401 from any upstream call clears the session immediately
	api.SetUnauthorizedHook(service.Auth.ForceLogout)

	controllers := console.NewControllers(service, logger)
	poller := console.NewBadgePoller(
		service.Restaurant,
		service.DeliveryPerson,
		service.Complaint,
		config.Console.BadgePollInterval,
		logger,
	)
	handler := adaptor.NewHandler(service, controllers, poller, config, logger)

	// Setup router
	router := setupRouter(handler, store, config, logger)

	return &App{
		Router: router,
		Poller: poller,
	}
}

// setupRouter konfigurasi Chi router
func setupRouter(
	handler *adaptor.Handler,
	store *session.Store,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.Console.CORSOrigins))

	// Apply routes
	wireAuth(r, handler.Auth, store, logger)
	wireUser(r, handler.User, store, logger)
	wireRestaurant(r, handler.Restaurant, store, logger)
	wireDeliveryPerson(r, handler.DeliveryPerson, store, logger)
	wireComplaint(r, handler.Complaint, store, logger)
	wireReview(r, handler.Review, store, logger)
	wireConsole(r, handler.Dashboard, handler.Shell, store, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
