package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-faster/errors"
	"github.com/gorilla/mux"

	"github.com/itam-labs/assetdesk/modules/vminventory/domain/vm"
	"github.com/itam-labs/assetdesk/modules/vminventory/infrastructure/persistence"
	"github.com/itam-labs/assetdesk/modules/vminventory/services"
	"github.com/itam-labs/assetdesk/pkg/httpapi"
)

const maxImportSize = 10 << 20

type VMController struct {
	vms *services.VMService
	csv *services.VMCSVService
}

func NewVMController(vms *services.VMService, csv *services.VMCSVService) *VMController {
	return &VMController{vms: vms, csv: csv}
}

func (c *VMController) Key() string {
	return "/api/vm-inventory"
}

func (c *VMController) Register(r *mux.Router) {
	router := r.PathPrefix("/api/vm-inventory").Subrouter()
	router.HandleFunc("", c.list).Methods(http.MethodGet)
	router.HandleFunc("", c.create).Methods(http.MethodPost)
	router.HandleFunc("/import", c.importFile).Methods(http.MethodPost)
	router.HandleFunc("/export", c.export).Methods(http.MethodGet)
	router.HandleFunc("/{id:[0-9]+}", c.get).Methods(http.MethodGet)
	router.HandleFunc("/{id:[0-9]+}", c.update).Methods(http.MethodPut)
	router.HandleFunc("/{id:[0-9]+}", c.delete).Methods(http.MethodDelete)
}

func (c *VMController) list(w http.ResponseWriter, r *http.Request) {
	vms, err := c.vms.GetAll(r.Context())
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Failed to fetch VM inventory", err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, vms)
}

func (c *VMController) get(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	found, err := c.vms.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, persistence.ErrVMNotFound) {
			_ = httpapi.WriteError(w, http.StatusNotFound, "VM not found", err)
			return
		}
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Failed to fetch VM", err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, found)
}

func (c *VMController) create(w http.ResponseWriter, r *http.Request) {
	var data vm.VMInventory
	if err := httpapi.DecodeJSON(r, &data); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "Failed to create VM", err)
		return
	}
	created, err := c.vms.Create(r.Context(), &data)
	if err != nil {
		_ = httpapi.WriteError(w, httpapi.StatusFor(err), "Failed to create VM", err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusCreated, created)
}

func (c *VMController) update(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var data vm.VMInventory
	if err := httpapi.DecodeJSON(r, &data); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "Failed to update VM", err)
		return
	}
	data.ID = id
	if err := c.vms.Update(r.Context(), &data); err != nil {
		if errors.Is(err, persistence.ErrVMNotFound) {
			_ = httpapi.WriteError(w, http.StatusNotFound, "VM not found", err)
			return
		}
		_ = httpapi.WriteError(w, httpapi.StatusFor(err), "Failed to update VM", err)
		return
	}
	updated, err := c.vms.GetByID(r.Context(), id)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Failed to fetch VM", err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, updated)
}

func (c *VMController) delete(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := c.vms.Delete(r.Context(), id); err != nil {
		if errors.Is(err, persistence.ErrVMNotFound) {
			_ = httpapi.WriteError(w, http.StatusNotFound, "VM not found", err)
			return
		}
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Failed to delete VM", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (c *VMController) importFile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImportSize); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "File is empty or invalid", err)
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "File is empty or invalid", err)
		return
	}
	defer file.Close()

	report, err := c.csv.Import(r.Context(), file)
	if err != nil {
		_ = httpapi.WriteError(w, httpapi.StatusFor(err), "Error processing file", err)
		return
	}

	vms, err := c.vms.GetAll(r.Context())
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Failed to fetch VM inventory", err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, map[string]any{
		"report":      report,
		"vmInventory": vms,
	})
}

func (c *VMController) export(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("format") == "xlsx" {
		f, err := c.csv.ExportXLSX(r.Context())
		if err != nil {
			_ = httpapi.WriteError(w, http.StatusInternalServerError, "Failed to export VM inventory", err)
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=vm_inventory_export_%s.xlsx", time.Now().Format("2006-01-02")))
		_ = f.Write(w)
		return
	}

	data, err := c.csv.ExportCSV(r.Context())
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Failed to export VM inventory", err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=vm_inventory_export_%s.csv", time.Now().Format("2006-01-02")))
	_, _ = w.Write(data)
}
