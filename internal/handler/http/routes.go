package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		h.withTraceID,
		h.withLogging,
		h.withRecovery,
		middleware.CleanPath,
		middleware.StripSlashes,
		middleware.Compress(5, "application/json"),
	)

	router.NotFound(h.handle(h.routeNotFound))
	router.MethodNotAllowed(h.handle(h.routeNotFound))

	router.Get("/", h.handle(h.welcome))
	router.Get("/api/version", h.getServerVersion)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/users", h.handle(h.createUser))
		r.Get("/api/courses", h.handle(h.listCourses))
		r.Get("/api/courses/{id}", h.handle(h.getCourse))
	})

	// routes with Basic authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/users", h.handle(h.listUsers))
		r.Post("/api/courses", h.handle(h.createCourse))
		r.Put("/api/courses/{id}", h.handle(h.updateCourse))
		r.Delete("/api/courses/{id}", h.handle(h.deleteCourse))
	})

	return router
}
