package asset

import (
	"context"
	"strings"
)

// Status is the lifecycle state of a hardware asset.
type Status string

const (
	StatusDeployed       Status = "deployed"
	StatusAvailable      Status = "available"
	StatusMaintenance    Status = "maintenance"
	StatusDecommissioned Status = "decommissioned"
	StatusAssigned       Status = "assigned"
	StatusReturned       Status = "returned"
	StatusResigned       Status = "resigned"
	StatusReplacement    Status = "replacement"
	StatusDefective      Status = "defective"
)

var validStatuses = map[Status]struct{}{
	StatusDeployed:       {},
	StatusAvailable:      {},
	StatusMaintenance:    {},
	StatusDecommissioned: {},
	StatusAssigned:       {},
	StatusReturned:       {},
	StatusResigned:       {},
	StatusReplacement:    {},
	StatusDefective:      {},
}

func (s Status) IsValid() bool {
	_, ok := validStatuses[s]
	return ok
}

// NormalizeStatus lowercases the input and falls back to StatusAvailable for
// anything outside the known set, matching the single-record create defaults.
func NormalizeStatus(raw string) Status {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	if !s.IsValid() {
		return StatusAvailable
	}
	return s
}

// Asset is a tracked hardware record. Dates are kept as YYYY-MM-DD strings;
// the empty string means unset.
type Asset struct {
	ID              int     `json:"id"`
	AssetTag        string  `json:"assetTag"`
	SerialNumber    string  `json:"serialNumber,omitempty"`
	Model           string  `json:"model"`
	Status          Status  `json:"status"`
	Category        string  `json:"category"`
	Manufacturer    string  `json:"manufacturer,omitempty"`
	PurchaseDate    string  `json:"purchaseDate,omitempty"`
	PurchaseCost    float64 `json:"purchaseCost,omitempty"`
	WarrantyExpires string  `json:"warrantyExpires,omitempty"`
	AssignedTo      string  `json:"assignedTo,omitempty"`
	Location        string  `json:"location,omitempty"`
	Notes           string  `json:"notes,omitempty"`
	IPAddress       string  `json:"ipAddress,omitempty"`
	MACAddress      string  `json:"macAddress,omitempty"`
	DateReleased    string  `json:"dateReleased,omitempty"`
	ReleasedBy      string  `json:"releasedBy,omitempty"`
	FinanceChecked  bool    `json:"financeChecked"`
	CreatedAt       string  `json:"createdAt,omitempty"`
	UpdatedAt       string  `json:"updatedAt,omitempty"`
}

type Repository interface {
	GetAll(ctx context.Context) ([]Asset, error)
	GetByID(ctx context.Context, id int) (*Asset, error)
	Create(ctx context.Context, data *Asset) (*Asset, error)
	Update(ctx context.Context, data *Asset) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status Status) (int64, error)
}
