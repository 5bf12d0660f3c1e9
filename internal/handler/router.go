package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	convohandler "github.com/Manny2706/servicehire/internal/handler/convo"
	"github.com/Manny2706/servicehire/internal/knowledge"
	"github.com/Manny2706/servicehire/internal/leads"
	middlewarePkg "github.com/Manny2706/servicehire/internal/middleware"
	convoservice "github.com/Manny2706/servicehire/internal/service/convo"
	"github.com/Manny2706/servicehire/pkg/utils"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(convoSvc *convoservice.Service, plans knowledge.Store, sink leads.Sink) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	convoHandler := convohandler.New(convoSvc, plans, sink)

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		convoHandler.RegisterRoutes(api)
	})

	return r
}
