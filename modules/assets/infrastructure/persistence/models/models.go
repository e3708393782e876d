package models

import (
	"database/sql"
	"time"
)

type Asset struct {
	ID              int
	AssetTag        string
	SerialNumber    sql.NullString
	Model           string
	Status          string
	Category        string
	Manufacturer    sql.NullString
	PurchaseDate    sql.NullTime
	PurchaseCost    sql.NullFloat64
	WarrantyExpires sql.NullTime
	AssignedTo      sql.NullString
	Location        sql.NullString
	Notes           sql.NullString
	IPAddress       sql.NullString
	MACAddress      sql.NullString
	DateReleased    sql.NullTime
	ReleasedBy      sql.NullString
	FinanceChecked  bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Component struct {
	ID           int
	Name         string
	Category     string
	SerialNumber sql.NullString
	Manufacturer sql.NullString
	Model        sql.NullString
	PurchaseDate sql.NullTime
	PurchaseCost sql.NullFloat64
	AssetID      sql.NullInt32
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Accessory struct {
	ID                int
	Name              string
	Category          string
	Manufacturer      sql.NullString
	Model             sql.NullString
	PurchaseDate      sql.NullTime
	PurchaseCost      sql.NullFloat64
	Quantity          int
	QuantityAvailable int
	Location          sql.NullString
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type License struct {
	ID             int
	Name           string
	Software       string
	Key            string
	Seats          int
	SeatsAvailable int
	PurchaseDate   sql.NullTime
	ExpirationDate sql.NullTime
	PurchaseCost   sql.NullFloat64
	Notes          sql.NullString
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type BitLockerKey struct {
	ID          int
	AssetID     sql.NullInt32
	RecoveryKey string
	DriveLetter sql.NullString
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
