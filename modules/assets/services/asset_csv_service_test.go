package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itam-labs/assetdesk/modules/assets/domain/asset"
	"github.com/itam-labs/assetdesk/pkg/serrors"
)

const assetCSVHeader = "Asset Tag,Model,Serial Number,Manufacturer,Category,Purchase Date,Purchase Cost,Warranty Expires,Location,MAC Address,IP Address,Status,Finance Check,Assigned To,Date Released,Released By"

func TestAssetCSVDecode(t *testing.T) {
	svc := NewAssetCSVService(nil)
	input := assetCSVHeader + "\n" +
		"AST-1,DellXPS,SN1,Dell,Laptop,2023-01-01,1000,2024-01-01,HQ,AA:BB:CC:DD:EE:FF,10.0.0.5,available,Yes,,,\n"

	records, err := svc.Decode(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 1)

	got := records[0]
	assert.Equal(t, "AST-1", got.AssetTag)
	assert.Equal(t, "DellXPS", got.Model)
	assert.Equal(t, "SN1", got.SerialNumber)
	assert.Equal(t, "Dell", got.Manufacturer)
	assert.Equal(t, "Laptop", got.Category)
	assert.Equal(t, "2023-01-01", got.PurchaseDate)
	assert.Equal(t, 1000.0, got.PurchaseCost)
	assert.Equal(t, "2024-01-01", got.WarrantyExpires)
	assert.Equal(t, "HQ", got.Location)
	assert.Equal(t, "AA:BB:CC:DD:EE:FF", got.MACAddress)
	assert.Equal(t, "10.0.0.5", got.IPAddress)
	assert.Equal(t, asset.StatusAvailable, got.Status)
	assert.True(t, got.FinanceChecked)
	assert.Empty(t, got.AssignedTo)
}

func TestAssetCSVDecode_HeaderOnly(t *testing.T) {
	svc := NewAssetCSVService(nil)
	_, err := svc.Decode(strings.NewReader(assetCSVHeader + "\n"))
	require.Error(t, err)
	assert.True(t, serrors.Is(err, serrors.KindEmptyOrInvalidFile))
	assert.Contains(t, err.Error(), "File is empty or invalid")
}

func TestAssetCSVDecode_EmptyFile(t *testing.T) {
	svc := NewAssetCSVService(nil)
	_, err := svc.Decode(strings.NewReader(""))
	require.Error(t, err)
	assert.True(t, serrors.Is(err, serrors.KindEmptyOrInvalidFile))
}

func TestAssetCSVDecode_ShortRowsDropped(t *testing.T) {
	svc := NewAssetCSVService(nil)
	input := assetCSVHeader + "\n" +
		"AST-1,DellXPS\n" +
		"AST-2,ThinkPad,SN2,Lenovo,Laptop,2023-02-01,1200,2025-02-01,HQ,,,deployed,No,john.doe,,\n"

	records, err := svc.Decode(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "AST-2", records[0].AssetTag)
	assert.Equal(t, asset.StatusDeployed, records[0].Status)
	assert.False(t, records[0].FinanceChecked)
}

func TestAssetCSVDecode_NoValidRecords(t *testing.T) {
	svc := NewAssetCSVService(nil)
	input := assetCSVHeader + "\n" + "only,two\n"
	_, err := svc.Decode(strings.NewReader(input))
	require.Error(t, err)
	assert.True(t, serrors.Is(err, serrors.KindNoValidRecords))
}

func TestAssetCSVDecode_SynthesizesMissingTag(t *testing.T) {
	svc := NewAssetCSVService(nil)
	input := assetCSVHeader + "\n" +
		",DellXPS,SN1,Dell,Laptop,,,,,,,available,No,,,\n"

	records, err := svc.Decode(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, strings.HasPrefix(records[0].AssetTag, "AST-"), "blank tags get a synthesized AST- tag, got %q", records[0].AssetTag)
}

func TestAssetCSVDecode_UnknownStatusAndCost(t *testing.T) {
	svc := NewAssetCSVService(nil)
	input := assetCSVHeader + "\n" +
		"AST-3,Mon,SN3,Dell,Monitor,,not-a-number,,,,,Broken Beyond Repair,no,,,\n"

	records, err := svc.Decode(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, asset.StatusAvailable, records[0].Status, "unknown statuses normalize to available")
	assert.Zero(t, records[0].PurchaseCost, "unparseable cost decodes as zero")
}

func TestAssetCSVRoundTrip(t *testing.T) {
	svc := NewAssetCSVService(nil)
	in := []asset.Asset{
		{
			AssetTag:        "AST-9",
			Model:           "XPS 13",
			SerialNumber:    "SN9",
			Manufacturer:    "Dell",
			Category:        "Laptop",
			PurchaseDate:    "2023-05-10",
			PurchaseCost:    1499.99,
			WarrantyExpires: "2026-05-10",
			Location:        "HQ",
			MACAddress:      "AA:BB:CC:00:11:22",
			IPAddress:       "10.1.2.3",
			Status:          asset.StatusDeployed,
			FinanceChecked:  true,
			AssignedTo:      "jane.smith",
		},
	}

	encoded, err := svc.Encode(in)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(encoded), "Asset Tag,Model,"), "header row comes first")

	out, err := svc.Decode(strings.NewReader(string(encoded)))
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, in[0].AssetTag, out[0].AssetTag)
	assert.Equal(t, in[0].PurchaseCost, out[0].PurchaseCost)
	assert.Equal(t, in[0].Status, out[0].Status)
	assert.True(t, out[0].FinanceChecked)
}
