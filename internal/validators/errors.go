package validators

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-social-hub/models"
)

// ErrUnsupportedType is returned when the value passed to Validate is not
// a struct (or pointer to struct) and therefore carries no schema.
var ErrUnsupportedType = errors.New("unsupported type for validation")

// ValidationError aggregates every violated constraint found in a request
// body. It implements the error interface; callers should match it with
// [errors.As] and serialize Violations into the HTTP 400 response.
type ValidationError struct {
	Violations []models.FieldError
}

// Error implements the error interface. It joins all violations into a
// single human-readable string for logging purposes.
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Path, v.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
