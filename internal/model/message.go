package model

import "github.com/google/uuid"

// Message is a composed email ready for delivery.
type Message struct {
	ID      uuid.UUID `json:"id"`
	To      []string  `json:"to"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
}
