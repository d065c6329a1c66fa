package service

import "errors"

var (
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidSource      = errors.New("invalid source account")
	ErrInvalidDestination = errors.New("invalid destination account")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrSelfTransfer       = errors.New("cannot transfer to the same account")
	ErrLogFailure         = errors.New("failed to record transaction")
	ErrSyncFailure        = errors.New("failed to update linked bank account")
	ErrInvalidCredentials = errors.New("invalid username or password")
)
