package http

import (
	"net/http"

	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/delivery/http/handler"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	authHandler          *handler.AuthHandler
	doctorHandler        *handler.DoctorHandler
	advertisementHandler *handler.AdvertisementHandler
	subscriptionHandler  *handler.SubscriptionHandler
	dashboardHandler     *handler.DashboardHandler
	userHandler          *handler.UserHandler
	lookupHandler        *handler.LookupHandler
	authMiddleware       *middleware.AuthMiddleware
	corsMiddleware       *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	doctorHandler *handler.DoctorHandler,
	advertisementHandler *handler.AdvertisementHandler,
	subscriptionHandler *handler.SubscriptionHandler,
	dashboardHandler *handler.DashboardHandler,
	userHandler *handler.UserHandler,
	lookupHandler *handler.LookupHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		authHandler:          authHandler,
		doctorHandler:        doctorHandler,
		advertisementHandler: advertisementHandler,
		subscriptionHandler:  subscriptionHandler,
		dashboardHandler:     dashboardHandler,
		userHandler:          userHandler,
		lookupHandler:        lookupHandler,
		authMiddleware:       authMiddleware,
		corsMiddleware:       corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.RegisterPatient).Methods(http.MethodPost)
	auth.HandleFunc("/register/doctor", r.authHandler.RegisterDoctor).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Public browse routes
	api.HandleFunc("/doctors", r.doctorHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/doctors/search", r.doctorHandler.Search).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/cities", r.lookupHandler.ListCities).Methods(http.MethodGet)
	api.HandleFunc("/specialties", r.lookupHandler.ListSpecialties).Methods(http.MethodGet)
	api.HandleFunc("/advertisements", r.advertisementHandler.ListActive).Methods(http.MethodGet)
	api.HandleFunc("/advertisements/{id}/click", r.advertisementHandler.Click).Methods(http.MethodPost)
	api.HandleFunc("/subscriptions", r.subscriptionHandler.Subscribe).Methods(http.MethodPost)

	// Dashboard redirect + session location (any authenticated role)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)
	protected.HandleFunc("/dashboard", r.dashboardHandler.Redirect).Methods(http.MethodGet)
	protected.HandleFunc("/location", r.dashboardHandler.SetLocation).Methods(http.MethodPut)
	protected.HandleFunc("/location", r.dashboardHandler.ClearLocation).Methods(http.MethodDelete)

	// Doctor routes (protected - doctor only)
	doctor := api.PathPrefix("/doctor").Subrouter()
	doctor.Use(r.authMiddleware.Authenticate)
	doctor.Use(middleware.RequireDoctor)
	doctor.HandleFunc("/dashboard", r.dashboardHandler.Doctor).Methods(http.MethodGet)
	doctor.HandleFunc("/profile", r.doctorHandler.UpdateProfile).Methods(http.MethodPut)
	doctor.HandleFunc("/profile/image", r.doctorHandler.UploadImage).Methods(http.MethodPost)
	doctor.HandleFunc("/cities", r.doctorHandler.ReplaceCities).Methods(http.MethodPut)
	doctor.HandleFunc("/working-hours", r.doctorHandler.SetWorkingHours).Methods(http.MethodPut)

	// Patient routes (protected - patient only)
	patient := api.PathPrefix("/patient").Subrouter()
	patient.Use(r.authMiddleware.Authenticate)
	patient.Use(middleware.RequirePatient)
	patient.HandleFunc("/dashboard", r.dashboardHandler.Patient).Methods(http.MethodGet)

	// Admin routes (protected - super admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireSuperAdmin)
	admin.HandleFunc("/dashboard", r.dashboardHandler.Admin).Methods(http.MethodGet)

	// User management (admin)
	admin.HandleFunc("/users", r.userHandler.List).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}", r.userHandler.Get).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}/active", r.userHandler.SetActive).Methods(http.MethodPatch)
	admin.HandleFunc("/users/{id}", r.userHandler.Delete).Methods(http.MethodDelete)

	// Doctor moderation (admin)
	admin.HandleFunc("/doctors/{id}/verify", r.doctorHandler.SetVerified).Methods(http.MethodPatch)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.Delete).Methods(http.MethodDelete)

	// Advertisement management (admin)
	admin.HandleFunc("/advertisements", r.advertisementHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/advertisements", r.advertisementHandler.List).Methods(http.MethodGet)
	admin.HandleFunc("/advertisements/{id}", r.advertisementHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/advertisements/{id}", r.advertisementHandler.Delete).Methods(http.MethodDelete)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
