package vm

import (
	"context"
	"time"
)

// Validity is derived from the lease window, never stored authoritatively by
// clients: a record is available while today falls inside [start, end].
const (
	ValidityAvailable = "available"
	ValidityOverdue   = "overdue"
)

const dateLayout = "2006-01-02"

// DeriveValidity computes the validity label for a lease window at the given
// instant. Unparseable dates yield available, matching the create defaults.
func DeriveValidity(startDate, endDate string, now time.Time) string {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return ValidityAvailable
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return ValidityAvailable
	}
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if day.Before(start) || day.After(end) {
		return ValidityOverdue
	}
	return ValidityAvailable
}

// VMInventory is a time-bounded virtual machine lease record.
type VMInventory struct {
	ID               int    `json:"id"`
	StartDate        string `json:"startDate"`
	EndDate          string `json:"endDate"`
	Validity         string `json:"validity"`
	Hypervisor       string `json:"hypervisor,omitempty"`
	Hostname         string `json:"hostname,omitempty"`
	HostModel        string `json:"hostModel,omitempty"`
	HostIPAddress    string `json:"hostIpAddress,omitempty"`
	HostOS           string `json:"hostOS,omitempty"`
	Rack             string `json:"rack,omitempty"`
	VMID             string `json:"vmId,omitempty"`
	VMName           string `json:"vmName,omitempty"`
	VMStatus         string `json:"vmStatus,omitempty"`
	VMIPAddress      string `json:"vmIpAddress,omitempty"`
	InternetAccess   bool   `json:"internetAccess"`
	VMOS             string `json:"vmOS,omitempty"`
	VMOSVersion      string `json:"vmOSVersion,omitempty"`
	DeployedBy       string `json:"deployedBy,omitempty"`
	User             string `json:"user,omitempty"`
	Department       string `json:"department,omitempty"`
	JiraTicketNumber string `json:"jiraTicketNumber,omitempty"`
	Remarks          string `json:"remarks,omitempty"`
	CreatedAt        string `json:"createdAt,omitempty"`
	UpdatedAt        string `json:"updatedAt,omitempty"`
}

type Repository interface {
	GetAll(ctx context.Context) ([]VMInventory, error)
	GetByID(ctx context.Context, id int) (*VMInventory, error)
	Create(ctx context.Context, data *VMInventory) (*VMInventory, error)
	Update(ctx context.Context, data *VMInventory) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int64, error)
}
