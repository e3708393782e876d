package models

import (
	"database/sql"
	"time"
)

type User struct {
	ID         int
	Name       string
	Email      string
	Password   sql.NullString
	Department sql.NullString
	Position   sql.NullString
	Phone      sql.NullString
	Location   sql.NullString
	IsActive   bool
	IsAdmin    bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type ActivityLog struct {
	ID        int
	UserID    sql.NullInt32
	Action    string
	ItemType  string
	ItemID    int
	Details   sql.NullString
	CreatedAt time.Time
}

type NetworkSettings struct {
	ID             int
	DNS1           string
	DNS2           string
	DefaultGateway sql.NullString
	SubnetMask     sql.NullString
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
