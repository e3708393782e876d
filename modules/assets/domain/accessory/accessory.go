package accessory

import "context"

// Accessory is a stocked peripheral tracked by quantity rather than per unit.
type Accessory struct {
	ID                int     `json:"id"`
	Name              string  `json:"name"`
	Category          string  `json:"category"`
	Manufacturer      string  `json:"manufacturer,omitempty"`
	Model             string  `json:"model,omitempty"`
	PurchaseDate      string  `json:"purchaseDate,omitempty"`
	PurchaseCost      float64 `json:"purchaseCost,omitempty"`
	Quantity          int     `json:"quantity"`
	QuantityAvailable int     `json:"quantityAvailable"`
	Location          string  `json:"location,omitempty"`
	CreatedAt         string  `json:"createdAt,omitempty"`
	UpdatedAt         string  `json:"updatedAt,omitempty"`
}

type Repository interface {
	GetAll(ctx context.Context) ([]Accessory, error)
	GetByID(ctx context.Context, id int) (*Accessory, error)
	Create(ctx context.Context, data *Accessory) (*Accessory, error)
	Update(ctx context.Context, data *Accessory) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int64, error)
}
