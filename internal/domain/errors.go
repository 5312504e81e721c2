package domain

import "errors"

var (
	ErrMissingSignature   = errors.New("missing signature")
	ErrInvalidSignature   = errors.New("invalid signature")
	ErrMissingReference   = errors.New("no reference found")
	ErrDuplicateReference = errors.New("duplicate reference")
	ErrInviteIssuance     = errors.New("invite issuance failed")
)
