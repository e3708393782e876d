package license

import "context"

// License is a software entitlement with seat accounting.
type License struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Software       string  `json:"software"`
	Key            string  `json:"key"`
	Seats          int     `json:"seats"`
	SeatsAvailable int     `json:"seatsAvailable"`
	PurchaseDate   string  `json:"purchaseDate,omitempty"`
	ExpirationDate string  `json:"expirationDate,omitempty"`
	PurchaseCost   float64 `json:"purchaseCost,omitempty"`
	Notes          string  `json:"notes,omitempty"`
	CreatedAt      string  `json:"createdAt,omitempty"`
	UpdatedAt      string  `json:"updatedAt,omitempty"`
}

type Repository interface {
	GetAll(ctx context.Context) ([]License, error)
	GetByID(ctx context.Context, id int) (*License, error)
	Create(ctx context.Context, data *License) (*License, error)
	Update(ctx context.Context, data *License) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int64, error)
	// CountExpiringWithin counts licenses whose expiration falls inside the
	// next given number of days.
	CountExpiringWithin(ctx context.Context, days int) (int64, error)
}
