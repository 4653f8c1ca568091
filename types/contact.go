package types

import "time"

// ContactStatusUnread is the only status a contact message is ever given.
const ContactStatusUnread = "unread"

// ContactMessage represents a message submitted via the contact form.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// ContactMessageCreate is the request body for POST /api/contact.
type ContactMessageCreate struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message"`
}
