package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/legallens/legal-lens-api/internal/handlers"
	"github.com/legallens/legal-lens-api/internal/middleware"
	"github.com/legallens/legal-lens-api/internal/services"
	"github.com/legallens/legal-lens-api/internal/utils"
)

// New mounts the analysis endpoint and the static browser client. CORS is
// deliberately permissive so the client can be hosted elsewhere during
// development.
func New(service services.AnalysisService, logger *utils.Logger, staticDir string, maxUpload int64) http.Handler {
	r := mux.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))

	analyzeHandler := handlers.NewAnalyzeHandler(service, logger, maxUpload)
	r.HandleFunc("/analyze", analyzeHandler.Analyze).Methods(http.MethodPost)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)

	// Everything else falls through to the bundled browser client.
	r.PathPrefix("/").Handler(http.FileServer(http.Dir(staticDir))).Methods(http.MethodGet)

	return cors.AllowAll().Handler(r)
}
