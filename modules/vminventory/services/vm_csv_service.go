package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/itam-labs/assetdesk/modules/vminventory/domain/vm"
	"github.com/itam-labs/assetdesk/pkg/importer"
	"github.com/itam-labs/assetdesk/pkg/serrors"
)

// vmCSVColumns is the fixed column set of the VM inventory CSV flavor. Unlike
// the asset flavor, decoding maps columns by header name, so a reordered file
// still imports correctly. Booleans are spelled "true"/"false" here.
var vmCSVColumns = []string{
	"startDate",
	"endDate",
	"validity",
	"hypervisor",
	"hostname",
	"hostModel",
	"hostIpAddress",
	"hostOS",
	"rack",
	"vmId",
	"vmName",
	"vmStatus",
	"vmIpAddress",
	"internetAccess",
	"vmOS",
	"vmOSVersion",
	"deployedBy",
	"user",
	"department",
	"jiraTicketNumber",
	"remarks",
}

type VMCSVService struct {
	vms *VMService
}

func NewVMCSVService(vms *VMService) *VMCSVService {
	return &VMCSVService{vms: vms}
}

// Decode parses the VM CSV flavor by header name. Rows with fewer fields than
// the header are dropped; missing columns default to the empty string with
// validity falling back to available and vmStatus to Running.
func (s *VMCSVService) Decode(r io.Reader) ([]vm.VMInventory, error) {
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
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}

	var records []vm.VMInventory
	for _, row := range rows[1:] {
		if len(row) < len(header) {
			continue
		}
		field := func(name string) string {
			i, ok := index[name]
			if !ok || i >= len(row) {
				return ""
			}
			return row[i]
		}
		rec := vm.VMInventory{
			StartDate:        field("startDate"),
			EndDate:          field("endDate"),
			Validity:         field("validity"),
			Hypervisor:       field("hypervisor"),
			Hostname:         field("hostname"),
			HostModel:        field("hostModel"),
			HostIPAddress:    field("hostIpAddress"),
			HostOS:           field("hostOS"),
			Rack:             field("rack"),
			VMID:             field("vmId"),
			VMName:           field("vmName"),
			VMStatus:         field("vmStatus"),
			VMIPAddress:      field("vmIpAddress"),
			InternetAccess:   field("internetAccess") == "true",
			VMOS:             field("vmOS"),
			VMOSVersion:      field("vmOSVersion"),
			DeployedBy:       field("deployedBy"),
			User:             field("user"),
			Department:       field("department"),
			JiraTicketNumber: field("jiraTicketNumber"),
			Remarks:          field("remarks"),
		}
		if rec.Validity == "" {
			rec.Validity = vm.ValidityAvailable
		}
		if rec.VMStatus == "" {
			rec.VMStatus = "Running"
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, serrors.New(serrors.KindNoValidRecords, "No valid VM records found in the file")
	}
	return records, nil
}

func (s *VMCSVService) Encode(records []vm.VMInventory) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(vmCSVColumns); err != nil {
		return nil, err
	}
	for _, rec := range records {
		if err := w.Write(vmCSVRow(&rec)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Import decodes the file and persists each record independently through the
// create path, so per-record date validation failures surface as outcomes
// rather than aborting the batch.
func (s *VMCSVService) Import(ctx context.Context, r io.Reader) (*importer.Report, error) {
	records, err := s.Decode(r)
	if err != nil {
		return nil, err
	}
	report := importer.RunBatch(ctx, records, func(ctx context.Context, rec vm.VMInventory) error {
		_, err := s.vms.Create(ctx, &rec)
		return err
	})
	return report, nil
}

func (s *VMCSVService) ExportCSV(ctx context.Context) ([]byte, error) {
	records, err := s.vms.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.Encode(records)
}

func (s *VMCSVService) ExportXLSX(ctx context.Context) (*excelize.File, error) {
	records, err := s.vms.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	const sheet = "VM Inventory"
	f.SetSheetName(f.GetSheetName(0), sheet)

	for col, name := range vmCSVColumns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return nil, err
		}
	}
	for i, rec := range records {
		for col, value := range vmCSVRow(&rec) {
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

func vmCSVRow(rec *vm.VMInventory) []string {
	return []string{
		rec.StartDate,
		rec.EndDate,
		rec.Validity,
		rec.Hypervisor,
		rec.Hostname,
		rec.HostModel,
		rec.HostIPAddress,
		rec.HostOS,
		rec.Rack,
		rec.VMID,
		rec.VMName,
		rec.VMStatus,
		rec.VMIPAddress,
		trueFalse(rec.InternetAccess),
		rec.VMOS,
		rec.VMOSVersion,
		rec.DeployedBy,
		rec.User,
		rec.Department,
		rec.JiraTicketNumber,
		rec.Remarks,
	}
}

func trueFalse(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
