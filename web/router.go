package web

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/unrolled/render"

	"github.com/jorgelillo7/biwenger-tools/controller"
)

func getRouter(ctrl controller.C, render *render.Render, admin AdminCreds) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/", comunicadosHandler(ctrl, render))
	r.Get("/participacion", participacionHandler(ctrl, render))
	r.Get("/palmares", palmaresHandler(ctrl, render))
	r.Get("/status", statusHandler(ctrl, render))

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.BasicAuth("biwenger-tools", map[string]string{admin.User: admin.Password}))
		r.Use(middleware.Timeout(5 * time.Minute)) // Syncs talk to the platform, give them room

		r.Post("/sync", forceSyncHandler(ctrl, render))
		r.Post("/analyze", forceAnalyzeHandler(ctrl, render))
	})

	return r
}
