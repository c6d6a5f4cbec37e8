package main

import (
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/handlers"
	"github.com/phrazzld/copygen-api/internal/api"
	apiMiddleware "github.com/phrazzld/copygen-api/internal/api/middleware"
	"github.com/phrazzld/copygen-api/internal/api/shared"
	"github.com/phrazzld/copygen-api/internal/metrics"
)

const serviceName = "copygen-api"

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	r.Route("/api", func(r chi.Router) {
		r.Post("/generate", app.generateHandler.Generate)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	r.Handle("/metrics", metrics.Handler())

	staticDir := app.config.Server.StaticDir
	if isDir(staticDir) {
		r.Handle("/*", http.FileServer(staticFS{http.Dir(staticDir)}))
	}
	r.Get("/", app.rootHandler(staticDir))

	return handlers.CORS(
		handlers.AllowedOrigins(app.config.Server.CORSAllowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
		handlers.ExposedHeaders([]string{shared.TraceIDHeader}),
	)(r)
}

// rootHandler serves the static index page when one exists and describes
// the service otherwise.
func (app *application) rootHandler(staticDir string) http.HandlerFunc {
	index := filepath.Join(staticDir, "index.html")

	return func(w http.ResponseWriter, r *http.Request) {
		if staticDir != "" && isFile(index) {
			http.ServeFile(w, r, index)
			return
		}

		provider := app.config.LLM.Provider
		if app.provider != nil {
			provider = app.provider.Name()
		}
		shared.RespondWithJSON(w, r, http.StatusOK, api.InfoResponse{
			Service:    serviceName,
			Endpoint:   "POST /api/generate",
			Provider:   provider,
			Configured: app.generateHandler.Configured(),
		})
	}
}

// staticFS hides directories that have no index.html so the file server
// never renders a directory listing.
type staticFS struct {
	fs http.FileSystem
}

func (s staticFS) Open(name string) (http.File, error) {
	f, err := s.fs.Open(name)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if !info.IsDir() {
		return f, nil
	}

	index, err := s.fs.Open(path.Join(name, "index.html"))
	if err != nil {
		_ = f.Close()
		return nil, fs.ErrNotExist
	}
	_ = index.Close()
	return f, nil
}

func isDir(name string) bool {
	if name == "" {
		return false
	}
	info, err := os.Stat(name)
	return err == nil && info.IsDir()
}

func isFile(name string) bool {
	info, err := os.Stat(name)
	return err == nil && info.Mode().IsRegular()
}
