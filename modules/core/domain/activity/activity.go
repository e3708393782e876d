package activity

import "context"

// ItemType names the kind of record an activity log entry refers to.
type ItemType string

const (
	ItemTypeAsset     ItemType = "asset"
	ItemTypeUser      ItemType = "user"
	ItemTypeComponent ItemType = "component"
	ItemTypeAccessory ItemType = "accessory"
	ItemTypeLicense   ItemType = "license"
	ItemTypeBitLocker ItemType = "bitlocker"
	ItemTypeVM        ItemType = "vm"
	ItemTypeSystem    ItemType = "system"
)

// Log is a single audit trail entry.
type Log struct {
	ID        int      `json:"id"`
	UserID    *int     `json:"userId,omitempty"`
	Action    string   `json:"action"`
	ItemType  ItemType `json:"itemType"`
	ItemID    int      `json:"itemId"`
	Details   string   `json:"details,omitempty"`
	CreatedAt string   `json:"createdAt,omitempty"`
}

// Repository lists logs newest first; a positive limit caps the result.
type Repository interface {
	GetAll(ctx context.Context, limit int) ([]Log, error)
	Create(ctx context.Context, data *Log) (*Log, error)
	Count(ctx context.Context) (int64, error)
}

// RecordedEvent is published on the event bus whenever a mutating operation
// completes; a subscriber persists it as a Log row.
type RecordedEvent struct {
	UserID   *int
	Action   string
	ItemType ItemType
	ItemID   int
	Details  string
}
