package order

import "errors"

var (
	ErrInvalidOrderID       = errors.New("invalid order id")
	ErrInvalidClientID      = errors.New("invalid client id")
	ErrInvalidPickup        = errors.New("invalid pickup address")
	ErrInvalidDropoff       = errors.New("invalid delivery address")
	ErrInvalidPackageSize   = errors.New("invalid package size")
	ErrInvalidWeight        = errors.New("weight must be positive")
	ErrInvalidUrgency       = errors.New("invalid urgency")
	ErrInvalidScheduledDate = errors.New("invalid scheduled date")
	ErrInvalidAmount        = errors.New("amount must be positive")
	ErrInvalidDistance      = errors.New("distance must be positive")
	ErrInvalidCourierID     = errors.New("invalid courier id")
	ErrInvalidStatus        = errors.New("invalid order status")

	ErrOrderNotFound      = errors.New("order not found")
	ErrCourierNotFound    = errors.New("courier not found")
	ErrCourierUnavailable = errors.New("courier is not available")
)
