package types

import "time"

const NewsletterStatusActive = "active"

type NewsletterSubscription struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Status       string    `json:"status"`
	SubscribedAt time.Time `json:"subscribedAt"`
}

type NewsletterSubscribe struct {
	Email string `json:"email" form:"email"`
}
