package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/gorilla/mux"

	"github.com/itam-labs/assetdesk/modules/assets/domain/component"
	"github.com/itam-labs/assetdesk/modules/assets/infrastructure/persistence"
	"github.com/itam-labs/assetdesk/modules/assets/services"
	"github.com/itam-labs/assetdesk/pkg/httpapi"
)

type ComponentsController struct {
	components *services.ComponentService
}

func NewComponentsController(components *services.ComponentService) *ComponentsController {
	return &ComponentsController{components: components}
}

func (c *ComponentsController) Key() string {
	return "/api/components"
}

func (c *ComponentsController) Register(r *mux.Router) {
	router := r.PathPrefix("/api/components").Subrouter()
	router.HandleFunc("", c.list).Methods(http.MethodGet)
	router.HandleFunc("", c.create).Methods(http.MethodPost)
	router.HandleFunc("/{id:[0-9]+}", c.get).Methods(http.MethodGet)
	router.HandleFunc("/{id:[0-9]+}", c.update).Methods(http.MethodPut)
	router.HandleFunc("/{id:[0-9]+}", c.delete).Methods(http.MethodDelete)
}

func (c *ComponentsController) list(w http.ResponseWriter, r *http.Request) {
	components, err := c.components.GetAll(r.Context())
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Failed to fetch components", err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, components)
}

func (c *ComponentsController) get(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	found, err := c.components.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, persistence.ErrComponentNotFound) {
			_ = httpapi.WriteError(w, http.StatusNotFound, "Component not found", err)
			return
		}
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Failed to fetch component", err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, found)
}

func (c *ComponentsController) create(w http.ResponseWriter, r *http.Request) {
	var data component.Component
	if err := httpapi.DecodeJSON(r, &data); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "Failed to create component", err)
		return
	}
	created, err := c.components.Create(r.Context(), &data)
	if err != nil {
		_ = httpapi.WriteError(w, httpapi.StatusFor(err), "Failed to create component", err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusCreated, created)
}

func (c *ComponentsController) update(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var data component.Component
	if err := httpapi.DecodeJSON(r, &data); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "Failed to update component", err)
		return
	}
	data.ID = id
	if err := c.components.Update(r.Context(), &data); err != nil {
		if errors.Is(err, persistence.ErrComponentNotFound) {
			_ = httpapi.WriteError(w, http.StatusNotFound, "Component not found", err)
			return
		}
		_ = httpapi.WriteError(w, httpapi.StatusFor(err), "Failed to update component", err)
		return
	}
	updated, err := c.components.GetByID(r.Context(), id)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Failed to fetch component", err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, updated)
}

func (c *ComponentsController) delete(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := c.components.Delete(r.Context(), id); err != nil {
		if errors.Is(err, persistence.ErrComponentNotFound) {
			_ = httpapi.WriteError(w, http.StatusNotFound, "Component not found", err)
			return
		}
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Failed to delete component", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
