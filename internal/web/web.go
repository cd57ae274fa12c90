package web

import (
	"embed"
	"net/http"

	"github.com/go-chi/chi/v5"

	"calculator-api/internal/handlers"
)

//go:embed static docs
var assets embed.FS

// RegisterRoutes mounts the static calculator page at / and, when docs is
// true, the Swagger UI shell and OpenAPI document. Production keeps the
// docs routes unmounted entirely rather than hidden.
func RegisterRoutes(r chi.Router, docs bool) {
	r.Get("/", Index)

	if docs {
		r.Get("/docs", Docs)
		r.Get("/openapi.json", OpenAPI)
	}
}

// Index serves the embedded single-page calculator UI.
func Index(w http.ResponseWriter, r *http.Request) {
	serveAsset(w, "static/index.html", "text/html; charset=utf-8")
}

// Docs serves the Swagger UI shell pointed at /openapi.json.
func Docs(w http.ResponseWriter, r *http.Request) {
	serveAsset(w, "docs/index.html", "text/html; charset=utf-8")
}

// OpenAPI serves the API description consumed by the docs page.
func OpenAPI(w http.ResponseWriter, r *http.Request) {
	serveAsset(w, "docs/openapi.json", "application/json")
}

func serveAsset(w http.ResponseWriter, name, contentType string) {
	data, err := assets.ReadFile(name)
	if err != nil {
		// Embedded files are compiled in; a miss is a build defect.
		handlers.WriteError(w, http.StatusInternalServerError, "asset not found")
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
