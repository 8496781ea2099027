package domain

// Validation failure reasons, reported verbatim to API clients.
const (
	ReasonDateOrder    = "start date must precede end date"
	ReasonUnavailable  = "vehicle not available for this period"
	ReasonInvalidPrice = "daily price must be positive"
)

// ValidationError is a business-rule violation. It is always returned to the
// caller as a value, never treated as fatal; callers distinguish it from
// infrastructure errors with errors.As.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NewValidationError wraps a failure reason.
func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}
