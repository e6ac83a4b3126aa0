package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction types.
const (
	TransactionSend    = "send"
	TransactionReceive = "receive"
	TransactionPayment = "payment"
	TransactionDeposit = "deposit"
)

// Transaction statuses.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Conversation types.
const (
	ConversationChat   = "chat"
	ConversationVoice  = "voice"
	ConversationAction = "action"
)

// User is an account holder. Balance is a decimal amount in the base
// currency; it serialises as a decimal string, never a binary float.
type User struct {
	ID           int             `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	PasswordHash string          `json:"-"`
	Phone        string          `json:"phone"`
	BankAccount  string          `json:"bankAccount"`
	Balance      decimal.Decimal `json:"balance"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// Transaction is a single money movement owned by a user. Type and amount
// are fixed at creation and never change afterwards.
type Transaction struct {
	ID               int             `json:"id"`
	UserID           int             `json:"userId"`
	Type             string          `json:"type"`
	Amount           decimal.Decimal `json:"amount"`
	Recipient        string          `json:"recipient,omitempty"`
	RecipientAccount string          `json:"recipientAccount,omitempty"`
	Description      string          `json:"description,omitempty"`
	Status           string          `json:"status"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// Contact is a saved transfer target. Duplicates per (userId, account) are
// permitted; there is no uniqueness constraint.
type Contact struct {
	ID         int    `json:"id"`
	UserID     int    `json:"userId"`
	Name       string `json:"name"`
	Account    string `json:"account"`
	Bank       string `json:"bank,omitempty"`
	IsFrequent bool   `json:"isFrequent"`
}

// Conversation is one assistant exchange: the user's message and the
// generated response, filled in synchronously at creation.
type Conversation struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
}
