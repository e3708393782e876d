package networksettings

import "context"

// Settings holds the site network defaults surfaced on the admin screen.
// A single row is provisioned at setup time and updated in place.
type Settings struct {
	ID             int    `json:"id"`
	DNS1           string `json:"dns1"`
	DNS2           string `json:"dns2"`
	DefaultGateway string `json:"defaultGateway,omitempty"`
	SubnetMask     string `json:"subnetMask,omitempty"`
	CreatedAt      string `json:"createdAt,omitempty"`
	UpdatedAt      string `json:"updatedAt,omitempty"`
}

type Repository interface {
	Get(ctx context.Context) (*Settings, error)
	Update(ctx context.Context, data *Settings) (*Settings, error)
}
