package entities

import "time"

type Feedback struct {
	ID        int64
	OrderID   string
	CourierID int64
	ClientID  int64
	Rating    int64
	Comment   string
	CreatedAt time.Time
}

// FeedbackDraft - входные данные отзыва, клиент берется из контекста запроса.
type FeedbackDraft struct {
	OrderID   string
	CourierID int64
	ClientID  int64
	Rating    int64
	Comment   string
}
