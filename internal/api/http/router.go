package http

import (
	"github.com/gorilla/mux"

	"github.com/memoirhq/memoir-backend/internal/api/recovery"
	"github.com/memoirhq/memoir-backend/internal/auth"
	"github.com/memoirhq/memoir-backend/internal/health"
	"github.com/memoirhq/memoir-backend/internal/services"
	"github.com/memoirhq/memoir-backend/internal/store"
)

// RouterDeps carries the constructed collaborators the router wires together.
type RouterDeps struct {
	Store         store.Store
	Stories       *services.AutobiographyService
	Shares        *services.ShareService
	Admin         *services.AdminService
	Verifier      auth.Verifier
	AuthProvider  auth.Provider
	ServiceHealth *health.ServiceHealthChecker
}

// NewRouter creates the HTTP router with all API routes.
func NewRouter(deps RouterDeps) *mux.Router {
	router := mux.NewRouter()

	// Global middlewares
	router.Use(recovery.Middleware)

	healthHandler := NewHealthHandler(deps.ServiceHealth, deps.Store)
	storyHandler := NewAutobiographyHandler(deps.Stories, deps.Verifier)
	shareHandler := NewShareHandler(deps.Shares, deps.Stories, deps.Verifier)
	exportHandler := NewExportHandler(deps.Stories, deps.Verifier)
	adminHandler := NewAdminHandler(deps.Admin, deps.Verifier)

	// Health endpoints
	router.HandleFunc("/api/health", healthHandler.CheckHealth).Methods("GET")
	router.HandleFunc("/api/health/db", healthHandler.CheckStorageHealth).Methods("GET")

	// Autobiography endpoints (caller identity from bearer token)
	router.HandleFunc("/api/me/autobiography", storyHandler.GetAutobiography).Methods("GET")
	router.HandleFunc("/api/me/autobiography", storyHandler.SaveAutobiography).Methods("PUT")
	router.HandleFunc("/api/me/autobiography/generate", storyHandler.GenerateStory).Methods("POST")

	// Share endpoints
	router.HandleFunc("/api/me/shares", shareHandler.CreateShare).Methods("POST")
	router.HandleFunc("/api/shares/{shareId}", shareHandler.GetShare).Methods("GET")

	// Export endpoints
	router.HandleFunc("/api/me/export/pdf", exportHandler.ExportPDF).Methods("GET")
	router.HandleFunc("/api/me/export/docx", exportHandler.ExportDOCX).Methods("GET")

	// Admin endpoints
	router.HandleFunc("/api/admin/autobiographies", adminHandler.ListAutobiographies).Methods("GET")

	// Credential endpoints, only registered when an identity provider is configured
	if deps.AuthProvider != nil {
		authHandler := NewAuthHandler(deps.AuthProvider)
		router.HandleFunc("/api/auth/signin", authHandler.SignIn).Methods("POST")
		router.HandleFunc("/api/auth/signup", authHandler.SignUp).Methods("POST")
		router.HandleFunc("/api/auth/reset-password", authHandler.ResetPassword).Methods("POST")
	}

	return router
}
