package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itam-labs/assetdesk/modules/vminventory/domain/vm"
	"github.com/itam-labs/assetdesk/pkg/serrors"
)

func TestVMCreate_RejectsBadDates(t *testing.T) {
	svc := NewVMService(nil, nil)

	tests := []struct {
		name      string
		startDate string
		endDate   string
	}{
		{"missing both", "", ""},
		{"missing end", "2024-01-01", ""},
		{"unparseable start", "01/01/2024", "2024-12-31"},
		{"unparseable end", "2024-01-01", "eventually"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), &vm.VMInventory{
				StartDate: tt.startDate,
				EndDate:   tt.endDate,
				VMName:    "web-01",
			})
			require.Error(t, err)
			assert.True(t, serrors.Is(err, serrors.KindInvalidInput))
			assert.Contains(t, err.Error(), "Invalid or missing dates")
		})
	}
}

func TestVMUpdate_RejectsBadDates(t *testing.T) {
	svc := NewVMService(nil, nil)

	err := svc.Update(context.Background(), &vm.VMInventory{ID: 1, StartDate: "bad", EndDate: "2024-12-31"})
	require.Error(t, err)
	assert.True(t, serrors.Is(err, serrors.KindInvalidInput))
}
