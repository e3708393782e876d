package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/itam-labs/assetdesk/modules/setup/domain"
	"github.com/itam-labs/assetdesk/modules/setup/marker"
	"github.com/itam-labs/assetdesk/modules/setup/services"
	"github.com/itam-labs/assetdesk/pkg/composables"
	"github.com/itam-labs/assetdesk/pkg/httpapi"
)

type SetupController struct {
	provisioner *services.Provisioner
	marker      *marker.Store
}

func NewSetupController(provisioner *services.Provisioner, markerStore *marker.Store) *SetupController {
	return &SetupController{provisioner: provisioner, marker: markerStore}
}

func (c *SetupController) Key() string {
	return "/api/setup"
}

func (c *SetupController) Register(r *mux.Router) {
	router := r.PathPrefix("/api/setup").Subrouter()
	router.HandleFunc("/check-setup-status", c.checkStatus).Methods(http.MethodGet)
	router.HandleFunc("/test-db-connection", c.testConnection).Methods(http.MethodPost)
	router.HandleFunc("/complete", c.complete).Methods(http.MethodPost)
}

func (c *SetupController) checkStatus(w http.ResponseWriter, r *http.Request) {
	_ = httpapi.WriteJSON(w, http.StatusOK, map[string]bool{
		"setupCompleted": c.marker.IsComplete(),
	})
}

func (c *SetupController) testConnection(w http.ResponseWriter, r *http.Request) {
	var cfg domain.DatabaseConfig
	if err := httpapi.DecodeJSON(r, &cfg); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "Missing required database connection parameters", err)
		return
	}
	if cfg.Host == "" || cfg.Port == 0 || cfg.Database == "" || cfg.Username == "" {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "Missing required database connection parameters", nil)
		return
	}

	if err := c.provisioner.TestConnection(r.Context(), cfg); err != nil {
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Failed to connect to database", err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, map[string]string{"message": "Connection successful"})
}

// complete runs the whole provisioning sequence. Every fatal error surfaces
// as a 500 with the error's name and message, which the setup wizard shows
// verbatim; a re-run with the same admin email fails here with a conflict.
func (c *SetupController) complete(w http.ResponseWriter, r *http.Request) {
	var plan domain.Plan
	if err := httpapi.DecodeJSON(r, &plan); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "Missing required setup parameters", err)
		return
	}
	if err := httpapi.Validate(&plan); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "Missing required setup parameters", err)
		return
	}

	logger := composables.UseLogger(r.Context())
	logger.Info("setup: starting provisioning run")

	adminID, err := c.provisioner.Run(r.Context(), &plan)
	if err != nil {
		logger.WithError(err).Error("setup failed")
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Failed to complete setup", err)
		return
	}

	logger.Info("setup: completed successfully")
	_ = httpapi.WriteJSON(w, http.StatusOK, map[string]any{
		"message": "Setup completed successfully",
		"adminId": adminID,
	})
}
