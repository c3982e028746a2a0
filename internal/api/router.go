package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/atlasgrid/user-atlas/internal/api/recovery"
	"github.com/atlasgrid/user-atlas/internal/geocode"
	"github.com/atlasgrid/user-atlas/internal/services"
	"github.com/atlasgrid/user-atlas/internal/store"
)

// NewRouter creates the HTTP handler with all API routes. CORS wraps the
// router itself so preflight requests are answered even for paths mux
// would not otherwise match.
func NewRouter(st store.Store, lookup geocode.Lookup) http.Handler {
	root := mux.NewRouter()
	root.Use(recovery.Middleware)

	// Users
	userSvc := services.NewUserService(st, lookup)
	user := NewUserHandler(userSvc)
	root.HandleFunc("/api/users", user.CreateUser).Methods("POST")
	root.HandleFunc("/api/users", user.ListUsers).Methods("GET")
	root.HandleFunc("/api/users/{userId}", user.GetUser).Methods("GET")
	root.HandleFunc("/api/users/{userId}", user.UpdateUser).Methods("PATCH")
	root.HandleFunc("/api/users/{userId}", user.DeleteUser).Methods("DELETE")

	// ZIP validation probe
	zip := NewZipHandler(lookup)
	root.HandleFunc("/api/zipcodes/validate/{zipCode}", zip.ValidateZip).Methods("GET")

	// Health
	healthHandler := NewHealthHandler()
	root.HandleFunc("/api/health", healthHandler.CheckHealth).Methods("GET")

	return CORS(root)
}
