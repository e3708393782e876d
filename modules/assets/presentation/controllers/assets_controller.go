package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-faster/errors"
	"github.com/gorilla/mux"

	"github.com/itam-labs/assetdesk/modules/assets/domain/asset"
	"github.com/itam-labs/assetdesk/modules/assets/infrastructure/persistence"
	"github.com/itam-labs/assetdesk/modules/assets/services"
	"github.com/itam-labs/assetdesk/pkg/httpapi"
)

// maxImportSize bounds uploaded CSV files.
const maxImportSize = 10 << 20

type AssetsController struct {
	assets *services.AssetService
	csv    *services.AssetCSVService
}

func NewAssetsController(assets *services.AssetService, csv *services.AssetCSVService) *AssetsController {
	return &AssetsController{assets: assets, csv: csv}
}

func (c *AssetsController) Key() string {
	return "/api/assets"
}

func (c *AssetsController) Register(r *mux.Router) {
	router := r.PathPrefix("/api/assets").Subrouter()
	router.HandleFunc("", c.list).Methods(http.MethodGet)
	router.HandleFunc("", c.create).Methods(http.MethodPost)
	router.HandleFunc("/import", c.importFile).Methods(http.MethodPost)
	router.HandleFunc("/export", c.export).Methods(http.MethodGet)
	router.HandleFunc("/{id:[0-9]+}", c.get).Methods(http.MethodGet)
	router.HandleFunc("/{id:[0-9]+}", c.update).Methods(http.MethodPut)
	router.HandleFunc("/{id:[0-9]+}", c.delete).Methods(http.MethodDelete)
}

func (c *AssetsController) list(w http.ResponseWriter, r *http.Request) {
	assets, err := c.assets.GetAll(r.Context())
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Failed to fetch assets", err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, assets)
}

func (c *AssetsController) get(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	found, err := c.assets.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, persistence.ErrAssetNotFound) {
			_ = httpapi.WriteError(w, http.StatusNotFound, "Asset not found", err)
			return
		}
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Failed to fetch asset", err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, found)
}

func (c *AssetsController) create(w http.ResponseWriter, r *http.Request) {
	var data asset.Asset
	if err := httpapi.DecodeJSON(r, &data); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "Failed to create asset", err)
		return
	}
	created, err := c.assets.Create(r.Context(), &data)
	if err != nil {
		_ = httpapi.WriteError(w, httpapi.StatusFor(err), "Failed to create asset", err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusCreated, created)
}

func (c *AssetsController) update(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var data asset.Asset
	if err := httpapi.DecodeJSON(r, &data); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "Failed to update asset", err)
		return
	}
	data.ID = id
	if err := c.assets.Update(r.Context(), &data); err != nil {
		if errors.Is(err, persistence.ErrAssetNotFound) {
			_ = httpapi.WriteError(w, http.StatusNotFound, "Asset not found", err)
			return
		}
		_ = httpapi.WriteError(w, httpapi.StatusFor(err), "Failed to update asset", err)
		return
	}
	updated, err := c.assets.GetByID(r.Context(), id)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Failed to fetch asset", err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, updated)
}

func (c *AssetsController) delete(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := c.assets.Delete(r.Context(), id); err != nil {
		if errors.Is(err, persistence.ErrAssetNotFound) {
			_ = httpapi.WriteError(w, http.StatusNotFound, "Asset not found", err)
			return
		}
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Failed to delete asset", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (c *AssetsController) importFile(w http.ResponseWriter, r *http.Request) {
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

	assets, err := c.assets.GetAll(r.Context())
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Failed to fetch assets", err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, map[string]any{
		"report": report,
		"assets": assets,
	})
}

func (c *AssetsController) export(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("format") == "xlsx" {
		f, err := c.csv.ExportXLSX(r.Context())
		if err != nil {
			_ = httpapi.WriteError(w, http.StatusInternalServerError, "Failed to export assets", err)
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=assets_export_%s.xlsx", time.Now().Format("2006-01-02")))
		_ = f.Write(w)
		return
	}

	data, err := c.csv.ExportCSV(r.Context())
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Failed to export assets", err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=assets_export_%s.csv", time.Now().Format("2006-01-02")))
	_, _ = w.Write(data)
}
