package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/oumar782/Jessback/api/controllers"
	"github.com/oumar782/Jessback/api/middleware"
	"github.com/oumar782/Jessback/internal/packages"
	"github.com/oumar782/Jessback/internal/reservations"
	"github.com/oumar782/Jessback/internal/slots"
	"github.com/oumar782/Jessback/pkg/config"
	"github.com/oumar782/Jessback/pkg/db"
	"github.com/oumar782/Jessback/pkg/logger"
	"github.com/oumar782/Jessback/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	reservationService reservations.Service,
	slotService slots.Service,
	packageService packages.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisClient))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/reservations", func(r chi.Router) {
			r.Get("/", controllers.ReservationList(reservationService, logg))
			r.Get("/count", controllers.ReservationCount(reservationService, logg))
			r.Get("/{id}", controllers.ReservationGet(reservationService, logg))
			r.Post("/", controllers.ReservationCreate(reservationService, logg))
			r.Put("/{id}", controllers.ReservationUpdate(reservationService, logg))
			r.Patch("/{id}", controllers.ReservationPatch(reservationService, logg))
			r.Delete("/{id}", controllers.ReservationDelete(reservationService, logg))
			r.Delete("/", controllers.ReservationDeleteMany(reservationService, logg))
		})

		r.Route("/creneaux", func(r chi.Router) {
			r.Get("/", controllers.SlotList(slotService, logg))
			r.Get("/count", controllers.SlotCount(slotService, logg))
			r.Get("/{id}", controllers.SlotGet(slotService, logg))
			r.Post("/", controllers.SlotCreate(slotService, logg))
			r.Put("/{id}", controllers.SlotUpdate(slotService, logg))
			r.Patch("/{id}", controllers.SlotPatch(slotService, logg))
			r.Delete("/{id}", controllers.SlotDelete(slotService, logg))
		})

		r.Route("/colis", func(r chi.Router) {
			r.Get("/", controllers.PackageList(packageService, logg))
			r.Get("/count", controllers.PackageCount(packageService, logg))
			r.Get("/suivi/{code}", controllers.PackageTrack(packageService, redisClient, logg))
			r.Get("/{id}", controllers.PackageGet(packageService, logg))
			r.Post("/", controllers.PackageCreate(packageService, logg))
			r.Put("/{id}", controllers.PackageUpdate(packageService, logg))
			r.Patch("/{id}", controllers.PackagePatch(packageService, logg))
			r.Delete("/{id}", controllers.PackageDelete(packageService, logg))
		})
	})

	return r
}
