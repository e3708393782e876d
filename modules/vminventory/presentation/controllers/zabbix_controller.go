package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/itam-labs/assetdesk/modules/vminventory/domain/zabbix"
	"github.com/itam-labs/assetdesk/modules/vminventory/services"
	"github.com/itam-labs/assetdesk/pkg/httpapi"
)

type ZabbixController struct {
	zabbix *services.ZabbixService
}

func NewZabbixController(zabbix *services.ZabbixService) *ZabbixController {
	return &ZabbixController{zabbix: zabbix}
}

func (c *ZabbixController) Key() string {
	return "/api/zabbix-vms"
}

func (c *ZabbixController) Register(r *mux.Router) {
	router := r.PathPrefix("/api/zabbix-vms").Subrouter()
	router.HandleFunc("", c.list).Methods(http.MethodGet)
	router.HandleFunc("", c.create).Methods(http.MethodPost)
}

func (c *ZabbixController) list(w http.ResponseWriter, r *http.Request) {
	vms, err := c.zabbix.GetAll(r.Context())
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Failed to fetch Zabbix VMs", err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, vms)
}

func (c *ZabbixController) create(w http.ResponseWriter, r *http.Request) {
	var data zabbix.VM
	if err := httpapi.DecodeJSON(r, &data); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "Failed to create Zabbix VM", err)
		return
	}
	created, err := c.zabbix.Create(r.Context(), &data)
	if err != nil {
		_ = httpapi.WriteError(w, httpapi.StatusFor(err), "Failed to create Zabbix VM", err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusCreated, created)
}
