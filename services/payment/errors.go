package payment

// ValidationError signals malformed or missing payment input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError signals a payment or transaction that does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// GatewayError signals a rejected or unreachable payment gateway. The
// wrapped cause is preserved for logs.
type GatewayError struct {
	Message string
	Cause   error
}

func (e *GatewayError) Error() string { return e.Message }

func (e *GatewayError) Unwrap() error { return e.Cause }
