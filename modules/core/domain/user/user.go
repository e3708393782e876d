package user

import "context"

// User is a directory entry for a person assets can be assigned to. Admin
// users can also sign in to manage the inventory.
type User struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department,omitempty"`
	Position   string `json:"position,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Location   string `json:"location,omitempty"`
	IsActive   bool   `json:"isActive"`
	IsAdmin    bool   `json:"isAdmin"`
	CreatedAt  string `json:"createdAt,omitempty"`
	UpdatedAt  string `json:"updatedAt,omitempty"`

	// PasswordHash never leaves the API surface.
	PasswordHash string `json:"-"`
}

type Repository interface {
	GetAll(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id int) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, data *User) (*User, error)
	Update(ctx context.Context, data *User) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int64, error)
}
