package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/itam-labs/assetdesk/modules/core/domain/networksettings"
	"github.com/itam-labs/assetdesk/modules/core/services"
	"github.com/itam-labs/assetdesk/pkg/httpapi"
)

type NetworkSettingsController struct {
	settings *services.NetworkSettingsService
}

func NewNetworkSettingsController(settings *services.NetworkSettingsService) *NetworkSettingsController {
	return &NetworkSettingsController{settings: settings}
}

func (c *NetworkSettingsController) Key() string {
	return "/api/network-settings"
}

func (c *NetworkSettingsController) Register(r *mux.Router) {
	router := r.PathPrefix("/api/network-settings").Subrouter()
	router.HandleFunc("", c.get).Methods(http.MethodGet)
	router.HandleFunc("", c.update).Methods(http.MethodPut)
}

func (c *NetworkSettingsController) get(w http.ResponseWriter, r *http.Request) {
	settings, err := c.settings.Get(r.Context())
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Failed to fetch network settings", err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, settings)
}

func (c *NetworkSettingsController) update(w http.ResponseWriter, r *http.Request) {
	var data networksettings.Settings
	if err := httpapi.DecodeJSON(r, &data); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "Failed to update network settings", err)
		return
	}
	updated, err := c.settings.Update(r.Context(), &data)
	if err != nil {
		_ = httpapi.WriteError(w, httpapi.StatusFor(err), "Failed to update network settings", err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, updated)
}
