package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	// ErrNotOwner reports that the authenticated user attempted a mutation
	// on a resource created by somebody else.
	ErrNotOwner = errors.New("resource belongs to another user")

	// ErrSelfFollow reports an attempt to follow one's own account.
	ErrSelfFollow = errors.New("users cannot follow themselves")
)
