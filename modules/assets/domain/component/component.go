package component

import "context"

// Component is an internal hardware part, optionally installed in an asset.
type Component struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	SerialNumber string  `json:"serialNumber,omitempty"`
	Manufacturer string  `json:"manufacturer,omitempty"`
	Model        string  `json:"model,omitempty"`
	PurchaseDate string  `json:"purchaseDate,omitempty"`
	PurchaseCost float64 `json:"purchaseCost,omitempty"`
	AssetID      *int    `json:"assetId,omitempty"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"createdAt,omitempty"`
	UpdatedAt    string  `json:"updatedAt,omitempty"`
}

type Repository interface {
	GetAll(ctx context.Context) ([]Component, error)
	GetByID(ctx context.Context, id int) (*Component, error)
	Create(ctx context.Context, data *Component) (*Component, error)
	Update(ctx context.Context, data *Component) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int64, error)
}
