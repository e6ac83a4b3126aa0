package events

import "time"

// Event types
const (
	UserCreated         = "user.created"
	TransactionCreated  = "transaction.created"
	BalanceUpdated      = "balance.updated"
	ConversationCreated = "conversation.created"
)

// Stream names
const (
	UserEventsStream         = "user.events"
	TransactionEventsStream  = "transaction.events"
	ConversationEventsStream = "conversation.events"
)

// Base event structure
type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

type UserCreatedEvent struct {
	UserID int    `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

type TransactionCreatedEvent struct {
	TransactionID int    `json:"transactionId"`
	UserID        int    `json:"userId"`
	Type          string `json:"type"`
	Amount        string `json:"amount"`
	Recipient     string `json:"recipient,omitempty"`
}

type BalanceUpdatedEvent struct {
	UserID     int    `json:"userId"`
	NewBalance string `json:"newBalance"`
	Change     string `json:"change"`
}

type ConversationCreatedEvent struct {
	ConversationID int    `json:"conversationId"`
	UserID         int    `json:"userId"`
	Intent         string `json:"intent"`
}
