package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that a write lost a race against a concurrent
// modification of the same resource.
var ErrConflict = errors.New("resource was modified concurrently")

// ErrInsufficientBalance indicates that a debit would drive an account balance below zero.
var ErrInsufficientBalance = errors.New("insufficient balance")

// ErrAccountDeleted indicates an operation was attempted on a soft-deleted account.
var ErrAccountDeleted = errors.New("account is deleted")

// ErrCustomerDeleted indicates an operation was attempted on a soft-deleted customer.
var ErrCustomerDeleted = errors.New("customer is deleted")

// ErrInternal indicates an unexpected infrastructure failure.
var ErrInternal = errors.New("internal error")
