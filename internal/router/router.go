package router

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/jmoiron/sqlx"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "vet-clinic/docs"
	mem "vet-clinic/internal/adapters/storage/memory"
	"vet-clinic/internal/adapters/storage/sqlstore"
	"vet-clinic/internal/domain/animals"
	"vet-clinic/internal/domain/appointments"
	"vet-clinic/internal/domain/owners"
	"vet-clinic/internal/middleware"
	"vet-clinic/internal/platform/config"
	"vet-clinic/internal/platform/httpx"
	"vet-clinic/internal/platform/logger"
	"vet-clinic/internal/platform/metrics"
)

type Options struct {
	Config config.Config
	Logger logger.Logger // nil => Nop

	// Opcional: si viene, usa SQL (postgres o sqlite). Si no, in-memory.
	DB *sqlx.DB

	// Opcional: nil => registry propio.
	Metrics *metrics.HTTP
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.NewHTTP()
	}
	cfg := opts.Config

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(log))
	r.Use(m.Middleware)
	r.Use(middleware.Recover(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins(cfg.CORS.AllowedOrigins),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))
	if rpm := cfg.RateLimit.RequestsPerMinute; rpm > 0 {
		r.Use(httprate.LimitByIP(rpm, time.Minute))
	}

	rs := httpx.Responder{Log: log, LegacyNotFound: cfg.API.LegacyNotFound}

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		rs.Error(w, http.StatusNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		rs.Error(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		rs.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/ready", readyHandler(opts.DB, rs))
	r.Handle("/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var (
		ownerRepo       owners.Repository
		animalRepo      animals.Repository
		appointmentRepo appointments.Repository
	)

	if opts.DB != nil {
		ownerRepo = sqlstore.NewOwnersRepo(opts.DB)
		animalRepo = sqlstore.NewAnimalsRepo(opts.DB)
		appointmentRepo = sqlstore.NewAppointmentsRepo(opts.DB)
	} else {
		ownerRepo = mem.NewOwnerRepo()
		animalRepo = mem.NewAnimalRepo()
		appointmentRepo = mem.NewAppointmentRepo()
	}

	// Services por módulo
	ownersSvc := owners.NewService(ownerRepo)
	animalsSvc := animals.NewService(animalRepo, ownersSvc, cfg.References.AnimalOwner)
	appointmentsSvc := appointments.NewService(appointmentRepo, animalsSvc, cfg.References.AppointmentAnimal)

	// Rutas por módulo
	r.Route("/api", func(api chi.Router) {
		owners.RegisterRoutes(api, ownersSvc, rs)
		animals.RegisterRoutes(api, animalsSvc, ownersSvc, rs)
		appointments.RegisterRoutes(api, appointmentsSvc, appointments.Views{
			Animals: animalsSvc,
			Owners:  ownersSvc,
		}, rs)
	})

	return r
}

func allowedOrigins(origins []string) []string {
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// readyHandler: con DB hace ping; in-memory siempre está listo.
func readyHandler(db *sqlx.DB, rs httpx.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()

			if err := db.PingContext(ctx); err != nil {
				if rs.Log != nil {
					rs.Log.Warn("readiness ping failed", map[string]any{
						"request_id": middleware.GetRequestID(r.Context()),
						"error":      err.Error(),
					})
				}
				rs.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
				return
			}
		}
		rs.JSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}
