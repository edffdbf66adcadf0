package domain

import "errors"

// Sentinel errors shared across services. Handlers map these to HTTP codes;
// anything else is an internal error and rolls the transaction back.
var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrTicketUnavailable   = errors.New("ticket unavailable")
	ErrRaffleNotFound      = errors.New("raffle not found")
	ErrRaffleNotActive     = errors.New("raffle is not active")
	ErrNoSoldTickets       = errors.New("no sold tickets")
	ErrUnauthorized        = errors.New("operation not allowed")
	ErrRequestNotFound     = errors.New("purchase request not found")
	ErrRequestNotPending   = errors.New("purchase request is not pending")
)
