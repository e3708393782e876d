package zabbix

import "context"

// VM is a monitored host snapshot pulled from Zabbix, kept read-mostly for
// the dashboard.
type VM struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	IPAddress   string  `json:"ipAddress,omitempty"`
	Status      string  `json:"status"`
	CPUUsage    float64 `json:"cpuUsage"`
	MemoryUsage float64 `json:"memoryUsage"`
	DiskUsage   float64 `json:"diskUsage"`
	OS          string  `json:"os,omitempty"`
	LastCheck   string  `json:"lastCheck,omitempty"`
	CreatedAt   string  `json:"createdAt,omitempty"`
	UpdatedAt   string  `json:"updatedAt,omitempty"`
}

type Repository interface {
	GetAll(ctx context.Context) ([]VM, error)
	Create(ctx context.Context, data *VM) (*VM, error)
	Count(ctx context.Context) (int64, error)
}
