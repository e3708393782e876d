package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/gorilla/mux"

	"github.com/itam-labs/assetdesk/modules/assets/domain/accessory"
	"github.com/itam-labs/assetdesk/modules/assets/infrastructure/persistence"
	"github.com/itam-labs/assetdesk/modules/assets/services"
	"github.com/itam-labs/assetdesk/pkg/httpapi"
)

type AccessoriesController struct {
	accessories *services.AccessoryService
}

func NewAccessoriesController(accessories *services.AccessoryService) *AccessoriesController {
	return &AccessoriesController{accessories: accessories}
}

func (c *AccessoriesController) Key() string {
	return "/api/accessories"
}

func (c *AccessoriesController) Register(r *mux.Router) {
	router := r.PathPrefix("/api/accessories").Subrouter()
	router.HandleFunc("", c.list).Methods(http.MethodGet)
	router.HandleFunc("", c.create).Methods(http.MethodPost)
	router.HandleFunc("/{id:[0-9]+}", c.get).Methods(http.MethodGet)
	router.HandleFunc("/{id:[0-9]+}", c.update).Methods(http.MethodPut)
	router.HandleFunc("/{id:[0-9]+}", c.delete).Methods(http.MethodDelete)
}

func (c *AccessoriesController) list(w http.ResponseWriter, r *http.Request) {
	accessories, err := c.accessories.GetAll(r.Context())
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Failed to fetch accessories", err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, accessories)
}

func (c *AccessoriesController) get(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	found, err := c.accessories.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, persistence.ErrAccessoryNotFound) {
			_ = httpapi.WriteError(w, http.StatusNotFound, "Accessory not found", err)
			return
		}
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Failed to fetch accessory", err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, found)
}

func (c *AccessoriesController) create(w http.ResponseWriter, r *http.Request) {
	var data accessory.Accessory
	if err := httpapi.DecodeJSON(r, &data); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "Failed to create accessory", err)
		return
	}
	created, err := c.accessories.Create(r.Context(), &data)
	if err != nil {
		_ = httpapi.WriteError(w, httpapi.StatusFor(err), "Failed to create accessory", err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusCreated, created)
}

func (c *AccessoriesController) update(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var data accessory.Accessory
	if err := httpapi.DecodeJSON(r, &data); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "Failed to update accessory", err)
		return
	}
	data.ID = id
	if err := c.accessories.Update(r.Context(), &data); err != nil {
		if errors.Is(err, persistence.ErrAccessoryNotFound) {
			_ = httpapi.WriteError(w, http.StatusNotFound, "Accessory not found", err)
			return
		}
		_ = httpapi.WriteError(w, httpapi.StatusFor(err), "Failed to update accessory", err)
		return
	}
	updated, err := c.accessories.GetByID(r.Context(), id)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Failed to fetch accessory", err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, updated)
}

func (c *AccessoriesController) delete(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := c.accessories.Delete(r.Context(), id); err != nil {
		if errors.Is(err, persistence.ErrAccessoryNotFound) {
			_ = httpapi.WriteError(w, http.StatusNotFound, "Accessory not found", err)
			return
		}
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Failed to delete accessory", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
