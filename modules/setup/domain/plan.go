// Package domain defines the provisioning plan accepted by the first-run
// setup flow.
package domain

// AdminAccount is the initial administrator to create.
type AdminAccount struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// DatabaseConfig identifies the PostgreSQL instance to provision.
type DatabaseConfig struct {
	Host     string `json:"host" validate:"required"`
	Port     int    `json:"port" validate:"required,min=1,max=65535"`
	Database string `json:"database" validate:"required"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password"`
}

// ImportOptions toggles each seed dataset independently; no toggle implies
// any other.
type ImportOptions struct {
	Assets        bool `json:"assets"`
	Users         bool `json:"users"`
	Components    bool `json:"components"`
	Accessories   bool `json:"accessories"`
	Licenses      bool `json:"licenses"`
	ZabbixVMs     bool `json:"zabbixVms"`
	ActivityLogs  bool `json:"activityLogs"`
	BitLockerKeys bool `json:"bitlockerKeys"`
}

// Plan is the full payload of a provisioning run.
type Plan struct {
	Admin         AdminAccount   `json:"admin" validate:"required"`
	Database      DatabaseConfig `json:"database" validate:"required"`
	ImportOptions ImportOptions  `json:"importOptions"`
}
