package dto

// UpdateProfileInput carries a partial profile update. Nil fields are left
// unchanged. Changing the password requires CurrentPassword to verify.
type UpdateProfileInput struct {
	Name            *string       `json:"name"`
	Email           *string       `json:"email"`
	Phone           *string       `json:"phone"`
	Address         *AddressInput `json:"address"`
	CurrentPassword string        `json:"currentPassword"`
	NewPassword     *string       `json:"newPassword"`
}

// DeleteAccountInput re-verifies the password before the irreversible delete.
type DeleteAccountInput struct {
	Password string `json:"password"`
}
