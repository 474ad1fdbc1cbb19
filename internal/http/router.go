package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/mfcarvalho/interco/internal/http/auth"
	"github.com/mfcarvalho/interco/internal/http/fiscal"
	"github.com/mfcarvalho/interco/internal/http/interco"
	"github.com/mfcarvalho/interco/internal/http/template"
)

func New(
	verifier *auth.Verifier,
	fiscalV1 *fiscal.Handler,
	templateV1 *template.Handler,
	intercoV1 *interco.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(verifier.Middleware)
		r.Use(middleware.AllowContentType("application/json"))

		r.Route("/fiscal-years", fiscalV1.Routes)

		r.Route("/periods", func(r chi.Router) {
			fiscalV1.PeriodRoutes(r)
			intercoV1.PeriodRoutes(r)
		})

		r.Route("/templates", templateV1.Routes)

		r.Route("/legs", intercoV1.LegRoutes)
	})

	return router
}
