package entity

import "errors"

var (
	// ErrUnauthorized means the bearer credential is missing, invalid or expired.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNoHotel means the admin has no hotel associated with their account.
	ErrNoHotel = errors.New("no hotel configured")
	// ErrForbidden means the target booking belongs to another hotel.
	ErrForbidden = errors.New("access denied")
	ErrNotFound  = errors.New("not found")

	ErrIllegalTransition = errors.New("illegal payment status transition")
	// ErrBusy means another operation is already in flight for the same target.
	ErrBusy = errors.New("operation already in flight")

	ErrRenderFailure   = errors.New("document rendering failed")
	ErrDispatchFailure = errors.New("message dispatch failed")
	ErrEmptyBatch      = errors.New("nothing to send")
	// ErrConfirmationRequired means a bulk send was requested without the
	// explicit confirmation the operation demands.
	ErrConfirmationRequired = errors.New("confirmation required")
)
