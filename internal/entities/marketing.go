package entities

import "time"

type NewsletterSubscription struct {
	ID        int64
	Email     string
	CreatedAt time.Time
}

type ContactMessage struct {
	ID        int64
	Name      string
	Email     string
	Subject   string
	Message   string
	CreatedAt time.Time
}
