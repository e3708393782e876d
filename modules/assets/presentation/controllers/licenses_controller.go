package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/gorilla/mux"

	"github.com/itam-labs/assetdesk/modules/assets/domain/license"
	"github.com/itam-labs/assetdesk/modules/assets/infrastructure/persistence"
	"github.com/itam-labs/assetdesk/modules/assets/services"
	"github.com/itam-labs/assetdesk/pkg/httpapi"
)

type LicensesController struct {
	licenses *services.LicenseService
}

func NewLicensesController(licenses *services.LicenseService) *LicensesController {
	return &LicensesController{licenses: licenses}
}

func (c *LicensesController) Key() string {
	return "/api/licenses"
}

func (c *LicensesController) Register(r *mux.Router) {
	router := r.PathPrefix("/api/licenses").Subrouter()
	router.HandleFunc("", c.list).Methods(http.MethodGet)
	router.HandleFunc("", c.create).Methods(http.MethodPost)
	router.HandleFunc("/{id:[0-9]+}", c.get).Methods(http.MethodGet)
	router.HandleFunc("/{id:[0-9]+}", c.update).Methods(http.MethodPut)
	router.HandleFunc("/{id:[0-9]+}", c.delete).Methods(http.MethodDelete)
}

func (c *LicensesController) list(w http.ResponseWriter, r *http.Request) {
	licenses, err := c.licenses.GetAll(r.Context())
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Failed to fetch licenses", err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, licenses)
}

func (c *LicensesController) get(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	found, err := c.licenses.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, persistence.ErrLicenseNotFound) {
			_ = httpapi.WriteError(w, http.StatusNotFound, "License not found", err)
			return
		}
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Failed to fetch license", err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, found)
}

func (c *LicensesController) create(w http.ResponseWriter, r *http.Request) {
	var data license.License
	if err := httpapi.DecodeJSON(r, &data); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "Failed to create license", err)
		return
	}
	created, err := c.licenses.Create(r.Context(), &data)
	if err != nil {
		_ = httpapi.WriteError(w, httpapi.StatusFor(err), "Failed to create license", err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusCreated, created)
}

func (c *LicensesController) update(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var data license.License
	if err := httpapi.DecodeJSON(r, &data); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "Failed to update license", err)
		return
	}
	data.ID = id
	if err := c.licenses.Update(r.Context(), &data); err != nil {
		if errors.Is(err, persistence.ErrLicenseNotFound) {
			_ = httpapi.WriteError(w, http.StatusNotFound, "License not found", err)
			return
		}
		_ = httpapi.WriteError(w, httpapi.StatusFor(err), "Failed to update license", err)
		return
	}
	updated, err := c.licenses.GetByID(r.Context(), id)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Failed to fetch license", err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, updated)
}

func (c *LicensesController) delete(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := c.licenses.Delete(r.Context(), id); err != nil {
		if errors.Is(err, persistence.ErrLicenseNotFound) {
			_ = httpapi.WriteError(w, http.StatusNotFound, "License not found", err)
			return
		}
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Failed to delete license", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
