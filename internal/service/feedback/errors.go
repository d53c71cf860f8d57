package feedback

import "errors"

var (
	ErrInvalidOrderID   = errors.New("invalid order id")
	ErrInvalidCourierID = errors.New("invalid courier id")
	ErrInvalidRating    = errors.New("rating must be between 1 and 5")

	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderNotDelivered = errors.New("order is not delivered yet")
	ErrNotOrderClient    = errors.New("feedback can only be left by the order client")
	ErrCourierNotFound   = errors.New("courier not found")
	ErrDuplicateFeedback = errors.New("feedback already submitted for this order")
)
