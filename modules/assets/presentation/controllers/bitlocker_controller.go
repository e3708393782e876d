package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/gorilla/mux"

	"github.com/itam-labs/assetdesk/modules/assets/domain/bitlocker"
	"github.com/itam-labs/assetdesk/modules/assets/infrastructure/persistence"
	"github.com/itam-labs/assetdesk/modules/assets/services"
	"github.com/itam-labs/assetdesk/pkg/httpapi"
)

type BitLockerController struct {
	keys *services.BitLockerService
}

func NewBitLockerController(keys *services.BitLockerService) *BitLockerController {
	return &BitLockerController{keys: keys}
}

func (c *BitLockerController) Key() string {
	return "/api/bitlocker-keys"
}

func (c *BitLockerController) Register(r *mux.Router) {
	router := r.PathPrefix("/api/bitlocker-keys").Subrouter()
	router.HandleFunc("", c.list).Methods(http.MethodGet)
	router.HandleFunc("", c.create).Methods(http.MethodPost)
	router.HandleFunc("/{id:[0-9]+}", c.get).Methods(http.MethodGet)
	router.HandleFunc("/{id:[0-9]+}", c.update).Methods(http.MethodPut)
	router.HandleFunc("/{id:[0-9]+}", c.delete).Methods(http.MethodDelete)
}

func (c *BitLockerController) list(w http.ResponseWriter, r *http.Request) {
	keys, err := c.keys.GetAll(r.Context())
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Failed to fetch BitLocker keys", err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, keys)
}

func (c *BitLockerController) get(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	found, err := c.keys.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, persistence.ErrBitLockerKeyNotFound) {
			_ = httpapi.WriteError(w, http.StatusNotFound, "BitLocker key not found", err)
			return
		}
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Failed to fetch BitLocker key", err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, found)
}

func (c *BitLockerController) create(w http.ResponseWriter, r *http.Request) {
	var data bitlocker.Key
	if err := httpapi.DecodeJSON(r, &data); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "Failed to create BitLocker key", err)
		return
	}
	created, err := c.keys.Create(r.Context(), &data)
	if err != nil {
		_ = httpapi.WriteError(w, httpapi.StatusFor(err), "Failed to create BitLocker key", err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusCreated, created)
}

func (c *BitLockerController) update(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var data bitlocker.Key
	if err := httpapi.DecodeJSON(r, &data); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "Failed to update BitLocker key", err)
		return
	}
	data.ID = id
	if err := c.keys.Update(r.Context(), &data); err != nil {
		if errors.Is(err, persistence.ErrBitLockerKeyNotFound) {
			_ = httpapi.WriteError(w, http.StatusNotFound, "BitLocker key not found", err)
			return
		}
		_ = httpapi.WriteError(w, httpapi.StatusFor(err), "Failed to update BitLocker key", err)
		return
	}
	updated, err := c.keys.GetByID(r.Context(), id)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Failed to fetch BitLocker key", err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, updated)
}

func (c *BitLockerController) delete(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := c.keys.Delete(r.Context(), id); err != nil {
		if errors.Is(err, persistence.ErrBitLockerKeyNotFound) {
			_ = httpapi.WriteError(w, http.StatusNotFound, "BitLocker key not found", err)
			return
		}
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Failed to delete BitLocker key", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
