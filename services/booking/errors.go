package booking

// ValidationError signals malformed or missing booking input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError signals a referenced entity that is absent or not owned by
// the caller.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// ConflictError signals a slot whose capacity is exhausted.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }
