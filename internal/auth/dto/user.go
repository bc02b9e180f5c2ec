package dto

import (
	"time"

	"github.com/AnthoniusHendriyanto/todo-service/internal/auth/domain"
)

// UserOutput is the public projection of a user. The password hash never
// leaves the service boundary.
type UserOutput struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Phone     *string        `json:"phone,omitempty"`
	Address   *AddressOutput `json:"address,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

type AddressOutput struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type AuthOutput struct {
	User  UserOutput `json:"user"`
	Token string     `json:"token"`
}

// ToUserOutput maps a domain user to its public projection.
func ToUserOutput(u *domain.User) UserOutput {
	out := UserOutput{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if u.Address != nil {
		out.Address = &AddressOutput{
			Street:  u.Address.Street,
			City:    u.Address.City,
			State:   u.Address.State,
			ZipCode: u.Address.ZipCode,
			Country: u.Address.Country,
		}
	}

	return out
}
