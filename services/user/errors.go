package user

// ValidationError signals malformed registration or login input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// AuthError signals bad credentials.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// ConflictError signals an email already in use.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// NotFoundError signals a missing user.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }
