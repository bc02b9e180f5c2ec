package domain

import "time"

// Address is an optional structured postal address on a user profile.
type Address struct {
	Street  string
	City    string
	State   string
	ZipCode string
	Country string
}

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Phone        *string
	Address      *Address
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserUpdate holds the fields a profile update may change. Nil fields are
// left untouched by the repository merge.
type UserUpdate struct {
	Name         *string
	Email        *string
	Phone        *string
	Address      *Address
	PasswordHash *string
}
