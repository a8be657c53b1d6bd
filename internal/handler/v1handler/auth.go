package v1handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/phluxx/gridtips/internal/store"
	"github.com/phluxx/gridtips/pkg/request/v1request"
	"github.com/phluxx/gridtips/pkg/view/v1view"
	"golang.org/x/crypto/bcrypt"
)

func (h *HttpHandler) loginHandler(w http.ResponseWriter, r *http.Request) {
	var creds v1request.Login

	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "unable to parse request")
		return
	}
	if err := creds.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.store.GetUserByUsername(r.Context(), creds.Username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := h.auth.IssueToken(user, time.Now())
	if err != nil {
		slog.Error("failed to sign token", "error", err)
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}

	writeJSON(w, http.StatusOK, v1view.Token{
		Token:    token,
		Role:     user.Role,
		Username: user.Username,
	})
}

func (h *HttpHandler) createUserHandler(w http.ResponseWriter, r *http.Request) {
	var payload v1request.CreateUser

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "unable to parse request")
		return
	}
	if err := payload.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	user := payload.ToModel(string(hash))
	if err := h.store.CreateUser(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			writeError(w, http.StatusConflict, "username already taken")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	// The hash never leaves the server.
	writeJSON(w, http.StatusCreated, v1view.User{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
	})
}

func (h *HttpHandler) listUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.GetUsers(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch users")
		return
	}
	vUsers := make([]v1view.User, 0, len(users))
	for _, user := range users {
		vUsers = append(vUsers, v1view.User{
			ID:       user.ID,
			Username: user.Username,
		})
	}
	writeJSON(w, http.StatusOK, vUsers)
}

func (h *HttpHandler) deleteUserHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.store.DeleteUser(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete user")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
