// Package repository defines the storage contract for the banking API and
// provides two implementations: an in-memory store (the default) and a
// PostgreSQL store. Implementations assign ids and creation timestamps
// server-side; callers never supply them.
package repository

import (
	"context"
	"errors"

	"github.com/KimTaekGwan/FinancialFlowApp/internal/models"
	"github.com/shopspring/decimal"
)

var (
	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when a user email is already taken.
	ErrDuplicateEmail = errors.New("email already exists")
)

// UserStore handles user persistence. UpdateUserBalance replaces the
// balance unconditionally; CompareAndSwapBalance succeeds only when the
// stored balance still equals expected, which lets callers serialise
// concurrent debits without a store-wide lock.
type UserStore interface {
	GetUser(ctx context.Context, id int) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	UpdateUserBalance(ctx context.Context, userID int, newBalance decimal.Decimal) (*models.User, error)
	CompareAndSwapBalance(ctx context.Context, userID int, expected, newBalance decimal.Decimal) (*models.User, bool, error)
}

// TransactionStore handles transaction persistence. ListTransactions
// returns only the user's transactions, most recent first.
type TransactionStore interface {
	GetTransaction(ctx context.Context, id int) (*models.Transaction, error)
	ListTransactions(ctx context.Context, userID int) ([]models.Transaction, error)
	CreateTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error)
}

// ContactStore handles contact persistence. Ordering follows insertion.
type ContactStore interface {
	ListContacts(ctx context.Context, userID int) ([]models.Contact, error)
	ListFrequentContacts(ctx context.Context, userID int) ([]models.Contact, error)
	CreateContact(ctx context.Context, contact *models.Contact) (*models.Contact, error)
}

// ConversationStore handles assistant conversation persistence.
// ListConversations returns the user's conversations, most recent first.
type ConversationStore interface {
	ListConversations(ctx context.Context, userID int) ([]models.Conversation, error)
	CreateConversation(ctx context.Context, conv *models.Conversation) (*models.Conversation, error)
}

// Store is the full storage engine behind the API.
type Store interface {
	UserStore
	TransactionStore
	ContactStore
	ConversationStore
}
