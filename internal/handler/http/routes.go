package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// vaultAPIPath is the vault endpoint. remoteKey authenticates the request.
const vaultAPIPath = "/{username}/{remoteKey}/vaultage_api"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	router.Get("/config", h.getConfig)
	router.Get(vaultAPIPath, h.pullVault)
	router.Post(vaultAPIPath, h.pushVault)

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	return router
}
