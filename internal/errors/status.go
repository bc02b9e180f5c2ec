package errors

import (
	"errors"
	"net/http"
)

// HTTPStatus maps a service error to the transport status code the routing
// layer should answer with. Unknown errors are treated as internal faults.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrPasswordTooShort),
		errors.Is(err, ErrTitleRequired),
		errors.Is(err, ErrInvalidStatus),
		errors.Is(err, ErrInvalidPriority):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrTokenInvalid),
		errors.Is(err, ErrTokenExpired),
		errors.Is(err, ErrTokenRevoked):
		return http.StatusUnauthorized
	case errors.Is(err, ErrWrongPassword):
		return http.StatusForbidden
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrTodoNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrEmailAlreadyInUse):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
