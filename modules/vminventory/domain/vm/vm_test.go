package vm_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/itam-labs/assetdesk/modules/vminventory/domain/vm"
)

func TestDeriveValidity(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		startDate string
		endDate   string
		want      string
	}{
		{"inside window", "2024-01-01", "2024-12-31", vm.ValidityAvailable},
		{"before window", "2024-07-01", "2024-12-31", vm.ValidityOverdue},
		{"after window", "2023-01-01", "2024-01-01", vm.ValidityOverdue},
		{"ends today", "2024-01-01", "2024-06-15", vm.ValidityAvailable},
		{"starts today", "2024-06-15", "2024-12-31", vm.ValidityAvailable},
		{"unparseable start", "soon", "2024-12-31", vm.ValidityAvailable},
		{"unparseable end", "2024-01-01", "never", vm.ValidityAvailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, vm.DeriveValidity(tt.startDate, tt.endDate, now))
		})
	}
}

// The calendar day comes from now's location, so a lease starting today is
// available from local midnight even when UTC is still on the previous day.
func TestDeriveValidityUsesLocalCalendarDay(t *testing.T) {
	tokyo := time.FixedZone("UTC+9", 9*60*60)
	now := time.Date(2024, 6, 15, 1, 0, 0, 0, tokyo) // 2024-06-14T16:00Z

	assert.Equal(t, vm.ValidityAvailable, vm.DeriveValidity("2024-06-15", "2024-12-31", now))
	assert.Equal(t, vm.ValidityOverdue, vm.DeriveValidity("2024-01-01", "2024-06-14", now))
}
