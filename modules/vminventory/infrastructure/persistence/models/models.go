package models

import (
	"database/sql"
	"time"
)

type VMInventory struct {
	ID               int
	StartDate        time.Time
	EndDate          time.Time
	Validity         string
	Hypervisor       sql.NullString
	Hostname         sql.NullString
	HostModel        sql.NullString
	HostIPAddress    sql.NullString
	HostOS           sql.NullString
	Rack             sql.NullString
	VMID             sql.NullString
	VMName           sql.NullString
	VMStatus         sql.NullString
	VMIPAddress      sql.NullString
	InternetAccess   bool
	VMOS             sql.NullString
	VMOSVersion      sql.NullString
	DeployedBy       sql.NullString
	User             sql.NullString
	Department       sql.NullString
	JiraTicketNumber sql.NullString
	Remarks          sql.NullString
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type ZabbixVM struct {
	ID          int
	Name        string
	IPAddress   sql.NullString
	Status      string
	CPUUsage    sql.NullFloat64
	MemoryUsage sql.NullFloat64
	DiskUsage   sql.NullFloat64
	OS          sql.NullString
	LastCheck   sql.NullTime
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
