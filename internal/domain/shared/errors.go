package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound         = NewDomainError("NOT_FOUND", "Resource not found")
	ErrInvalidQuantity  = NewDomainError("INVALID_QUANTITY", "Quantity is not valid for this operation")
	ErrUnknownLine      = NewDomainError("UNKNOWN_LINE", "Line number not found on the referenced order")
	ErrUnknownReference = NewDomainError("UNKNOWN_REFERENCE", "Referenced predecessor does not exist")
	ErrInvalidInput     = NewDomainError("INVALID_INPUT", "Invalid input provided")
)
