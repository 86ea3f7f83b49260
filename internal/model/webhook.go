// internal/model/webhook.go
package model

import "github.com/google/uuid"

// Webhook is a placeholder. Nothing is stored yet, so only the id is known.
type Webhook struct {
	ID uuid.UUID `json:"id"`
}

type WebhookList struct {
	Webhooks []Webhook `json:"webhooks"`
}

type WebhookCreated struct {
	ID        uuid.UUID `json:"id"`
	CreatedBy uuid.UUID `json:"created_by"`
}

// Message is the generic acknowledgement body.
type Message struct {
	Message string `json:"message"`
}
