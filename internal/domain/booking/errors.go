package booking

import "errors"

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrInvalidDay      = errors.New("day must be a calendar date in YYYY-MM-DD format")
	ErrServiceNotFound = errors.New("service not found")
	ErrRoomNotFound    = errors.New("room not found")
	ErrGuestNotFound   = errors.New("guest not found")
)
