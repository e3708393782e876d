package bitlocker

import "context"

// Key is a BitLocker recovery key tied to an asset.
type Key struct {
	ID          int    `json:"id"`
	AssetID     *int   `json:"assetId,omitempty"`
	RecoveryKey string `json:"recoveryKey"`
	DriveLetter string `json:"driveLetter,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

type Repository interface {
	GetAll(ctx context.Context) ([]Key, error)
	GetByID(ctx context.Context, id int) (*Key, error)
	Create(ctx context.Context, data *Key) (*Key, error)
	Update(ctx context.Context, data *Key) error
	Delete(ctx context.Context, id int) error
}
