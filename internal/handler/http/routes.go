package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	versionPath   = "/api/version/"
	saveDraftPath = "/api/user/draft/save"
	loadDraftPath = "/api/user/draft/load"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Get(versionPath, h.getServerVersion)

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth, h.checkHash)

		r.Post(saveDraftPath, h.saveDraft)
		r.Post(loadDraftPath, h.loadDraft)
	})

	router.MethodNotAllowed(methodNotAllowed(router))

	return router
}
