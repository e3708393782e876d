package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/gorilla/mux"

	"github.com/itam-labs/assetdesk/modules/core/domain/user"
	"github.com/itam-labs/assetdesk/modules/core/infrastructure/persistence"
	"github.com/itam-labs/assetdesk/modules/core/services"
	"github.com/itam-labs/assetdesk/pkg/httpapi"
)

type userRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Position   string `json:"position"`
	Phone      string `json:"phone"`
	Location   string `json:"location"`
	IsActive   bool   `json:"isActive"`
	IsAdmin    bool   `json:"isAdmin"`
	Password   string `json:"password"`
}

func (req *userRequest) toDomain() *user.User {
	return &user.User{
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
		Position:   req.Position,
		Phone:      req.Phone,
		Location:   req.Location,
		IsActive:   req.IsActive,
		IsAdmin:    req.IsAdmin,
	}
}

type UsersController struct {
	users *services.UserService
}

func NewUsersController(users *services.UserService) *UsersController {
	return &UsersController{users: users}
}

func (c *UsersController) Key() string {
	return "/api/users"
}

func (c *UsersController) Register(r *mux.Router) {
	router := r.PathPrefix("/api/users").Subrouter()
	router.HandleFunc("", c.list).Methods(http.MethodGet)
	router.HandleFunc("", c.create).Methods(http.MethodPost)
	router.HandleFunc("/{id:[0-9]+}", c.get).Methods(http.MethodGet)
	router.HandleFunc("/{id:[0-9]+}", c.update).Methods(http.MethodPut)
	router.HandleFunc("/{id:[0-9]+}", c.delete).Methods(http.MethodDelete)
}

func (c *UsersController) list(w http.ResponseWriter, r *http.Request) {
	users, err := c.users.GetAll(r.Context())
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Failed to fetch users", err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, users)
}

func (c *UsersController) get(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	found, err := c.users.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, persistence.ErrUserNotFound) {
			_ = httpapi.WriteError(w, http.StatusNotFound, "User not found", err)
			return
		}
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Failed to fetch user", err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, found)
}

func (c *UsersController) create(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := httpapi.DecodeJSON(r, &req); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "Failed to create user", err)
		return
	}
	created, err := c.users.Create(r.Context(), req.toDomain(), req.Password)
	if err != nil {
		_ = httpapi.WriteError(w, httpapi.StatusFor(err), "Failed to create user", err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusCreated, created)
}

func (c *UsersController) update(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var req userRequest
	if err := httpapi.DecodeJSON(r, &req); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "Failed to update user", err)
		return
	}
	data := req.toDomain()
	data.ID = id
	if err := c.users.Update(r.Context(), data); err != nil {
		if errors.Is(err, persistence.ErrUserNotFound) {
			_ = httpapi.WriteError(w, http.StatusNotFound, "User not found", err)
			return
		}
		_ = httpapi.WriteError(w, httpapi.StatusFor(err), "Failed to update user", err)
		return
	}
	updated, err := c.users.GetByID(r.Context(), id)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Failed to fetch user", err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, updated)
}

func (c *UsersController) delete(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := c.users.Delete(r.Context(), id); err != nil {
		if errors.Is(err, persistence.ErrUserNotFound) {
			_ = httpapi.WriteError(w, http.StatusNotFound, "User not found", err)
			return
		}
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Failed to delete user", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
