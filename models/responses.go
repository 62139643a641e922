package models

// ErrorResponse is the uniform JSON error envelope returned by every
// failing endpoint. Details is populated only for validation failures.
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

// FieldError describes a single violated constraint in a request body:
// the dotted JSON path of the offending field and a human-readable
// message. Validation responses carry one entry per broken constraint,
// not just the first.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// AuthResponse is returned by the register and login endpoints. The
// token is also mirrored in the Authorization response header.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
