package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-social-hub/models"
	"github.com/go-playground/validator/v10"
)

// RequestValidator implements [Validator] on top of
// go-playground/validator. A single instance caches struct metadata
// internally and is safe for concurrent use across requests.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator constructs a RequestValidator.
//
// Field names in violation paths are taken from the `json` struct tag of
// the offending field, so error paths always match the wire format of
// the request body (e.g. "postId", not "PostID").
func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	return &RequestValidator{validate: v}
}

// Validate checks obj against the schema declared on its type.
//
// Returns:
//   - nil if every constraint holds;
//   - *ValidationError with one entry per violated constraint otherwise;
//   - ErrUnsupportedType if obj is not a struct or pointer to struct.
func (v *RequestValidator) Validate(ctx context.Context, obj any) error {
	err := v.validate.StructCtx(ctx, obj)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return ErrUnsupportedType
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("unexpected validation error: %w", err)
	}

	violations := make([]models.FieldError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, models.FieldError{
			Path:    fieldPath(fe),
			Message: violationMessage(fe),
		})
	}

	return &ValidationError{Violations: violations}
}

// fieldPath converts the validator namespace ("CreateCommentRequest.postId")
// into the dotted JSON path of the offending field ("postId").
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}

// violationMessage renders a human-readable message for a single broken
// constraint. Unknown tags fall back to a generic message naming the tag.
func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "gt":
		if fe.Param() == "0" {
			return "must be a positive integer"
		}
		return fmt.Sprintf("must be greater than %s", fe.Param())
	default:
		return fmt.Sprintf("failed %q constraint", fe.Tag())
	}
}
