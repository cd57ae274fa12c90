package calculator

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the calculator endpoints under the /calculator
// prefix of the given router (mounted under /api by the server).
func RegisterRoutes(r chi.Router) {
	r.Route("/calculator", func(r chi.Router) {
		r.Post("/add", AddHandler)
		r.Post("/subtract", SubtractHandler)
		r.Post("/multiply", MultiplyHandler)
		r.Post("/divide", DivideHandler)
	})
}
