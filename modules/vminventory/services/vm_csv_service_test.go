package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itam-labs/assetdesk/modules/vminventory/domain/vm"
	"github.com/itam-labs/assetdesk/pkg/serrors"
)

func TestVMCSVDecode_MapsByHeaderName(t *testing.T) {
	svc := NewVMCSVService(nil)
	// Columns deliberately reordered relative to the export layout.
	input := "vmName,hostname,internetAccess,startDate,endDate,vmStatus,validity\n" +
		"web-01,esx-host-1,true,2024-01-01,2025-01-01,Running,available\n"

	records, err := svc.Decode(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 1)

	got := records[0]
	assert.Equal(t, "web-01", got.VMName)
	assert.Equal(t, "esx-host-1", got.Hostname)
	assert.True(t, got.InternetAccess)
	assert.Equal(t, "2024-01-01", got.StartDate)
	assert.Equal(t, "2025-01-01", got.EndDate)
	assert.Equal(t, "Running", got.VMStatus)
	assert.Equal(t, vm.ValidityAvailable, got.Validity)
}

func TestVMCSVDecode_Defaults(t *testing.T) {
	svc := NewVMCSVService(nil)
	input := "vmName,startDate,endDate,validity,vmStatus,internetAccess\n" +
		"db-01,2024-01-01,2025-01-01,,,yes\n"

	records, err := svc.Decode(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 1)

	got := records[0]
	assert.Equal(t, vm.ValidityAvailable, got.Validity)
	assert.Equal(t, "Running", got.VMStatus)
	assert.False(t, got.InternetAccess, `only the literal "true" enables internet access`)
}

func TestVMCSVDecode_HeaderOnly(t *testing.T) {
	svc := NewVMCSVService(nil)
	_, err := svc.Decode(strings.NewReader("vmName,startDate,endDate\n"))
	require.Error(t, err)
	assert.True(t, serrors.Is(err, serrors.KindEmptyOrInvalidFile))
}

func TestVMCSVDecode_ShortRowsDropped(t *testing.T) {
	svc := NewVMCSVService(nil)
	input := "vmName,startDate,endDate\n" +
		"lonely\n" +
		"app-01,2024-01-01,2025-01-01\n"

	records, err := svc.Decode(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "app-01", records[0].VMName)
}

func TestVMCSVDecode_NoValidRecords(t *testing.T) {
	svc := NewVMCSVService(nil)
	input := "vmName,startDate,endDate\n" + "one,two\n"
	_, err := svc.Decode(strings.NewReader(input))
	require.Error(t, err)
	assert.True(t, serrors.Is(err, serrors.KindNoValidRecords))
}

func TestVMCSVRoundTrip(t *testing.T) {
	svc := NewVMCSVService(nil)
	in := []vm.VMInventory{
		{
			StartDate:        "2024-03-01",
			EndDate:          "2025-03-01",
			Validity:         vm.ValidityAvailable,
			Hypervisor:       "ESXi",
			Hostname:         "esx-host-2",
			HostIPAddress:    "10.0.0.10",
			VMID:             "vm-1001",
			VMName:           "ci-runner",
			VMStatus:         "Running",
			VMIPAddress:      "10.0.1.10",
			InternetAccess:   true,
			VMOS:             "Ubuntu",
			VMOSVersion:      "22.04",
			DeployedBy:       "jane.smith",
			User:             "john.doe",
			Department:       "Engineering",
			JiraTicketNumber: "OPS-42",
			Remarks:          "build fleet",
		},
	}

	encoded, err := svc.Encode(in)
	require.NoError(t, err)

	out, err := svc.Decode(strings.NewReader(string(encoded)))
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, in[0].VMName, out[0].VMName)
	assert.Equal(t, in[0].User, out[0].User)
	assert.True(t, out[0].InternetAccess)
	assert.Equal(t, in[0].JiraTicketNumber, out[0].JiraTicketNumber)
}
