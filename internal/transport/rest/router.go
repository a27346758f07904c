package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/vehicle-ledger/internal/auth"
	"github.com/frahmantamala/vehicle-ledger/internal/expense"
	"github.com/frahmantamala/vehicle-ledger/internal/mileage"
	"github.com/frahmantamala/vehicle-ledger/internal/refill"
	"github.com/frahmantamala/vehicle-ledger/internal/transport/middleware"
	"github.com/frahmantamala/vehicle-ledger/internal/transport/swagger"
	"github.com/frahmantamala/vehicle-ledger/internal/trip"
)

// RegisterAllRoutes wires the full route tree. Everything under /api/v1
// except login is guarded by the session middleware.
func RegisterAllRoutes(
	router *chi.Mux,
	db *sql.DB,
	allowedOrigins string,
	authHandler *auth.Handler,
	expenseHandler *expense.Handler,
	refillHandler *refill.Handler,
	tripHandler *trip.Handler,
	mileageHandler *mileage.Handler,
	logger *slog.Logger,
) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// OpenAPI spec and swagger UI at root, outside the API prefix
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/login", authHandler.Login)
			sr.Post("/logout", authHandler.Logout)
		})

		// Ledger routes, session required
		r.Group(func(pr chi.Router) {
			pr.Use(authHandler.SessionMiddleware)

			pr.Route("/expenses", func(er chi.Router) {
				er.Post("/", expenseHandler.Create)
				er.Get("/", expenseHandler.List)
				er.Get("/{id}", expenseHandler.Get)
				er.Patch("/{id}", expenseHandler.Update)
				er.Delete("/{id}", expenseHandler.Delete)
			})

			pr.Route("/refills", func(rr chi.Router) {
				rr.Post("/", refillHandler.Create)
				rr.Get("/", refillHandler.List)
				rr.Get("/{id}", refillHandler.Get)
				rr.Patch("/{id}", refillHandler.Update)
				rr.Delete("/{id}", refillHandler.Delete)
			})

			pr.Route("/trips", func(tr chi.Router) {
				tr.Post("/", tripHandler.Create)
				tr.Get("/", tripHandler.List)
				tr.Get("/{id}", tripHandler.Get)
				tr.Patch("/{id}", tripHandler.Update)
				tr.Delete("/{id}", tripHandler.Delete)
			})

			pr.Get("/mileage", mileageHandler.MileageOverTime)
		})
	})
}
