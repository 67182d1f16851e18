// Package server assembles the HTTP handler tree and middleware chain.
package server

import (
	"net/http"

	"portfolio-site/server/internal/accesslog"
	"portfolio-site/server/internal/config"
	documentshandler "portfolio-site/server/internal/documents/handler"
	healthhandler "portfolio-site/server/internal/health/handler"
	"portfolio-site/server/internal/server/middleware"
	"portfolio-site/server/internal/session"
	"portfolio-site/server/internal/telemetry"
	trackinghandler "portfolio-site/server/internal/tracking/handler"
	verificationhandler "portfolio-site/server/internal/verification/handler"
)

// Deps carries the wired services the handler tree needs.
type Deps struct {
	Sessions     session.Store
	AccessLog    *accesslog.Logger
	Verification *verificationhandler.HTTPHandler
	Documents    *documentshandler.HTTPHandler
	Health       *healthhandler.HTTPHandler
	Emitter      telemetry.EventEmitter
}

// quietPaths are not access-logged and emit no telemetry. Probes would
// otherwise dominate both channels.
var quietPaths = map[string]bool{
	"/api/health": true,
}

// NewHandler builds the complete HTTP handler: API routes, static file
// serving, and the middleware chain around them.
func NewHandler(cfg *config.Config, deps Deps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/verify", deps.Verification.Verify)
	mux.HandleFunc("POST /api/signout", deps.Verification.SignOut)
	mux.Handle("GET /api/documents",
		middleware.RequireSession(deps.Sessions)(http.HandlerFunc(deps.Documents.List)))
	mux.HandleFunc("POST /api/track", trackinghandler.NewHTTPHandler(deps.AccessLog).Track)
	mux.HandleFunc("GET /api/health", deps.Health.Health)

	mux.Handle("GET /files/", http.StripPrefix("/files/",
		http.FileServer(http.Dir(cfg.FilesDir))))
	mux.Handle("/", http.FileServer(http.Dir(cfg.PublicDir)))

	var h http.Handler = mux
	h = middleware.Telemetry(deps.Emitter, quietPaths)(h)
	h = middleware.AccessLog(deps.AccessLog, quietPaths)(h)
	h = middleware.RequestContext()(h)
	h = middleware.CORS(cfg.CORSOrigin)(h)
	h = middleware.Recover(!cfg.IsProduction())(h)
	return h
}
