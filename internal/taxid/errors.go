package taxid

import "fmt"

const (
	CodeInvalidRUT = "CL-RUT-001"

	titleInvalidRUT = "RUT validation error"
	expectedFormat  = "XX.XXX.XXX-X"
)

// ValidationError aborts a save because the document's tax_id is not a valid RUT.
type ValidationError struct {
	Code    string `json:"code"`
	Path    string `json:"path"`
	Value   string `json:"value"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalidRUT(value string) *ValidationError {
	return &ValidationError{
		Code:    CodeInvalidRUT,
		Path:    "tax_id",
		Value:   value,
		Title:   titleInvalidRUT,
		Message: fmt.Sprintf("Invalid RUT: %s. Expected format %s", value, expectedFormat),
	}
}
