package v1handler

import (
	"net/http"

	"github.com/phluxx/gridtips/internal/config"

	"github.com/gorilla/mux"
)

func New(cfg *config.Config, store Store) *HttpHandler {
	h := &HttpHandler{
		config: cfg,
		store:  store,
		auth:   NewAuthMiddleware(cfg),
	}
	h.init()
	return h
}

type HttpHandler struct {
	config *config.Config
	r      *mux.Router
	store  Store
	auth   *AuthMiddleware
}

func (h *HttpHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.r.ServeHTTP(w, r)
}

func (h *HttpHandler) init() {
	h.r = mux.NewRouter()
	h.r.Use(logRequests)

	h.r.HandleFunc("/api/login", h.loginHandler).Methods("POST")

	authed := h.r.NewRoute().Subrouter()
	authed.HandleFunc("/api/events/upcoming", h.upcomingEventsHandler).Methods("GET")
	authed.HandleFunc("/api/tips/submit", h.submitTipHandler).Methods("POST")
	authed.HandleFunc("/api/usertips", h.createUserTipHandler).Methods("POST")
	authed.HandleFunc("/api/usertips", h.myTipsHandler).Methods("GET")
	authed.HandleFunc("/api/leaderboard", h.leaderboardHandler).Methods("GET")
	authed.HandleFunc("/api/teams", h.listTeamsHandler).Methods("GET")
	authed.HandleFunc("/api/drivers", h.listDriversHandler).Methods("GET")
	authed.HandleFunc("/api/events", h.listEventsHandler).Methods("GET")
	authed.HandleFunc("/api/tipoptions", h.listTipOptionsHandler).Methods("GET")
	authed.HandleFunc("/api/users", h.listUsersHandler).Methods("GET")
	authed.Use(h.auth.Auth)

	// Catalog mutation stays behind the admin role.
	admin := h.r.NewRoute().Subrouter()
	admin.HandleFunc("/api/teams", h.createTeamHandler).Methods("POST")
	admin.HandleFunc("/api/drivers", h.createDriverHandler).Methods("POST")
	admin.HandleFunc("/api/events", h.createEventHandler).Methods("POST")
	admin.HandleFunc("/api/events/{id}", h.deleteEventHandler).Methods("DELETE")
	admin.HandleFunc("/api/tipoptions", h.createTipOptionHandler).Methods("POST")
	admin.HandleFunc("/api/tips", h.createTipHandler).Methods("POST")
	admin.HandleFunc("/api/tips/{id}/correct-option", h.setCorrectOptionHandler).Methods("PUT")
	admin.HandleFunc("/api/users", h.createUserHandler).Methods("POST")
	admin.HandleFunc("/api/users/{id}", h.deleteUserHandler).Methods("DELETE")
	admin.Use(h.auth.Auth, h.auth.Admin)
}
