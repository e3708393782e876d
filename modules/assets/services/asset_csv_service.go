package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/itam-labs/assetdesk/modules/assets/domain/asset"
	"github.com/itam-labs/assetdesk/pkg/importer"
	"github.com/itam-labs/assetdesk/pkg/serrors"
)

// assetCSVColumns is the fixed, ordered column set of the asset CSV flavor.
// Decoding is positional: the header line is informational only and rows are
// read by index, exactly as the export writes them.
var assetCSVColumns = []string{
	"Asset Tag",
	"Model",
	"Serial Number",
	"Manufacturer",
	"Category",
	"Purchase Date",
	"Purchase Cost",
	"Warranty Expires",
	"Location",
	"MAC Address",
	"IP Address",
	"Status",
	"Finance Check",
	"Assigned To",
	"Date Released",
	"Released By",
}

type AssetCSVService struct {
	assets *AssetService
}

func NewAssetCSVService(assets *AssetService) *AssetCSVService {
	return &AssetCSVService{assets: assets}
}

// Decode parses the asset CSV flavor. Blank lines are skipped and rows with
// fewer fields than the header are dropped rather than padded. Every field
// has a fallback so sparse rows still decode; a blank tag gets a synthesized
// AST-<n> tag, which the store remains the final uniqueness arbiter for.
func (s *AssetCSVService) Decode(r io.Reader) ([]asset.Asset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, serrors.Wrap(err, serrors.KindEmptyOrInvalidFile, "File is empty or invalid")
	}
	if len(rows) < 2 {
		return nil, serrors.New(serrors.KindEmptyOrInvalidFile, "File is empty or invalid")
	}

	header := rows[0]
	var records []asset.Asset
	for _, row := range rows[1:] {
		if len(row) < len(header) {
			continue
		}
		records = append(records, asset.Asset{
			AssetTag:        defaultTag(row[0]),
			Model:           row[1],
			SerialNumber:    row[2],
			Manufacturer:    row[3],
			Category:        row[4],
			PurchaseDate:    row[5],
			PurchaseCost:    parseCost(row[6]),
			WarrantyExpires: row[7],
			Location:        row[8],
			MACAddress:      row[9],
			IPAddress:       row[10],
			Status:          asset.NormalizeStatus(row[11]),
			FinanceChecked:  strings.EqualFold(strings.TrimSpace(row[12]), "yes"),
			AssignedTo:      row[13],
			DateReleased:    row[14],
			ReleasedBy:      row[15],
		})
	}

	if len(records) == 0 {
		return nil, serrors.New(serrors.KindNoValidRecords, "No valid assets found in the file")
	}
	return records, nil
}

// Encode renders records in the fixed column order with Yes/No booleans.
// Internal identifiers are intentionally not part of the column set; the
// store reassigns them on import.
func (s *AssetCSVService) Encode(records []asset.Asset) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(assetCSVColumns); err != nil {
		return nil, err
	}
	for _, a := range records {
		if err := w.Write(assetCSVRow(&a)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Import decodes the file and persists each record independently; a failing
// record is reported in the outcome list and never aborts the batch.
func (s *AssetCSVService) Import(ctx context.Context, r io.Reader) (*importer.Report, error) {
	records, err := s.Decode(r)
	if err != nil {
		return nil, err
	}
	report := importer.RunBatch(ctx, records, func(ctx context.Context, rec asset.Asset) error {
		_, err := s.assets.Create(ctx, &rec)
		return err
	})
	return report, nil
}

func (s *AssetCSVService) ExportCSV(ctx context.Context) ([]byte, error) {
	records, err := s.assets.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.Encode(records)
}

// ExportXLSX writes the same column set to a single-sheet workbook.
func (s *AssetCSVService) ExportXLSX(ctx context.Context) (*excelize.File, error) {
	records, err := s.assets.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	const sheet = "Assets"
	f.SetSheetName(f.GetSheetName(0), sheet)

	for col, name := range assetCSVColumns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return nil, err
		}
	}
	for i, a := range records {
		for col, value := range assetCSVRow(&a) {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}

func assetCSVRow(a *asset.Asset) []string {
	return []string{
		a.AssetTag,
		a.Model,
		a.SerialNumber,
		a.Manufacturer,
		a.Category,
		a.PurchaseDate,
		formatCost(a.PurchaseCost),
		a.WarrantyExpires,
		a.Location,
		a.MACAddress,
		a.IPAddress,
		string(a.Status),
		yesNo(a.FinanceChecked),
		a.AssignedTo,
		a.DateReleased,
		a.ReleasedBy,
	}
}

func defaultTag(raw string) string {
	if strings.TrimSpace(raw) != "" {
		return raw
	}
	return fmt.Sprintf("AST-%d", rand.Intn(10000))
}

func parseCost(raw string) float64 {
	cost, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return cost
}

func formatCost(cost float64) string {
	return strconv.FormatFloat(cost, 'f', -1, 64)
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
