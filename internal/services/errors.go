package services

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user with this username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTooShort   = errors.New("username must be at least 3 characters")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")

	ErrInvalidOrderType = errors.New("invalid order type")
	ErrQuotaNotSet      = errors.New("quota has not been set by an admin yet")
	ErrInvalidQuota     = errors.New("quota must be greater than zero")

	ErrWithdrawalMinimum   = errors.New("minimum withdrawal amount is 100")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrWithdrawalNotFound  = errors.New("withdrawal request not found")
	ErrReceiptNotFound     = errors.New("payment receipt not found")
	ErrAlreadyProcessed    = errors.New("request has already been processed")
)

// QuotaShortfallError reports a gated task completion blocked by an
// insufficient quota.
type QuotaShortfallError struct {
	Required  float64
	Available float64
}

func (e *QuotaShortfallError) Error() string {
	return fmt.Sprintf("insufficient quota: %g required, %g available", e.Required, e.Available)
}

// TasksIncompleteError reports a withdrawal blocked by unfinished tasks.
type TasksIncompleteError struct {
	Completed int
	Total     int
}

func (e *TasksIncompleteError) Error() string {
	return fmt.Sprintf("all tasks must be completed before withdrawal: %d/%d completed", e.Completed, e.Total)
}
