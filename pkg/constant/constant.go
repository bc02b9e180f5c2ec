package constant

const (
	// MinPasswordLength applies to registration and password change alike.
	MinPasswordLength = 8

	DefaultPageLimit = 10
	MaxPageLimit     = 100
)
