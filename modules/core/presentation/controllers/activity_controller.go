package controllers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/itam-labs/assetdesk/modules/core/services"
	"github.com/itam-labs/assetdesk/pkg/httpapi"
)

type ActivityController struct {
	activity *services.ActivityService
}

func NewActivityController(activity *services.ActivityService) *ActivityController {
	return &ActivityController{activity: activity}
}

func (c *ActivityController) Key() string {
	return "/api/activity"
}

func (c *ActivityController) Register(r *mux.Router) {
	router := r.PathPrefix("/api/activity").Subrouter()
	router.HandleFunc("", c.list).Methods(http.MethodGet)
}

func (c *ActivityController) list(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 0 {
		limit = 0
	}
	logs, err := c.activity.GetAll(r.Context(), limit)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Failed to fetch activity logs", err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, logs)
}
