package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the caller lacks the permission flag required
// for the attempted operation, or tried to touch the master identity.
var ErrForbidden = errors.New("operation not permitted")

// ErrPendingApproval indicates a login attempt against an account that has
// registered but has not yet been approved by an administrator. Kept distinct
// from ErrInvalidCredentials so callers can present "awaiting approval".
var ErrPendingApproval = errors.New("account pending approval")

// ErrInvalidCredentials indicates a failed login or password check.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrDomainViolation indicates a record whose cost center kind does not match
// its direction, or an input carrying unknown direction/kind values.
var ErrDomainViolation = errors.New("domain invariant violation")
