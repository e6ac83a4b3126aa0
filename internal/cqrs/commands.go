package cqrs

import "github.com/shopspring/decimal"

type CreateUserCommand struct {
	Name        string
	Email       string
	Password    string
	Phone       string
	BankAccount string
	Balance     decimal.Decimal
}

type CreateTransactionCommand struct {
	UserID           int
	Type             string
	Amount           decimal.Decimal
	Recipient        string
	RecipientAccount string
	Description      string
	Status           string
}

type CreateContactCommand struct {
	UserID     int
	Name       string
	Account    string
	Bank       string
	IsFrequent bool
}

type CreateConversationCommand struct {
	UserID  int
	Message string
	Type    string
}

type LoginCommand struct {
	Email    string
	Password string
}

type RefreshTokenCommand struct {
	Token string
}
