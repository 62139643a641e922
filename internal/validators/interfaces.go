// Package validators implements declarative request-body validation.
//
// Each creation or update request shape declares its schema once, via
// `validate` struct tags on the corresponding models DTO. The validator
// checks every constraint and reports ALL violations — one
// [models.FieldError] per broken constraint — so that clients can fix an
// entire payload in a single round trip.
package validators

import "context"

// Validator validates a request body against the schema declared on its
// type. On failure the returned error is a *ValidationError carrying the
// full violation list; any other error kind signals a validator misuse
// (e.g. a non-struct argument).
type Validator interface {
	Validate(ctx context.Context, obj any) error
}
