package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/itam-labs/assetdesk/modules/core/services"
	"github.com/itam-labs/assetdesk/pkg/httpapi"
)

type DashboardController struct {
	dashboard *services.DashboardService
}

func NewDashboardController(dashboard *services.DashboardService) *DashboardController {
	return &DashboardController{dashboard: dashboard}
}

func (c *DashboardController) Key() string {
	return "/api/dashboard"
}

func (c *DashboardController) Register(r *mux.Router) {
	router := r.PathPrefix("/api/dashboard").Subrouter()
	router.HandleFunc("/summary", c.summary).Methods(http.MethodGet)
}

func (c *DashboardController) summary(w http.ResponseWriter, r *http.Request) {
	summary, err := c.dashboard.Summary(r.Context())
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Failed to fetch dashboard summary", err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, summary)
}
