package repository

import (
	"context"
	"fmt"

	"github.com/KimTaekGwan/FinancialFlowApp/internal/models"
	"github.com/KimTaekGwan/FinancialFlowApp/internal/utils"
	"github.com/shopspring/decimal"
)

// demoPassword is the login password for the seeded demo account.
const demoPassword = "demo1234"

// SeedDemoData loads the demo fixtures: one user, two frequent contacts and
// three transactions. Intended for the in-memory store on a fresh start.
func SeedDemoData(ctx context.Context, store Store) error {
	hash, err := utils.HashPassword(demoPassword)
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}

	user, err := store.CreateUser(ctx, &models.User{
		Name:         "김순자",
		Email:        "kim.soonja@example.com",
		PasswordHash: hash,
		Phone:        "010-1234-5678",
		BankAccount:  "KB국민은행 ****1234",
		Balance:      decimal.NewFromInt(2847500),
	})
	if err != nil {
		return fmt.Errorf("failed to seed user: %w", err)
	}

	contacts := []models.Contact{
		{UserID: user.ID, Name: "손자 김민수", Account: "****5678", Bank: "신한은행", IsFrequent: true},
		{UserID: user.ID, Name: "딸 김영희", Account: "****9012", Bank: "하나은행", IsFrequent: true},
	}
	for i := range contacts {
		if _, err := store.CreateContact(ctx, &contacts[i]); err != nil {
			return fmt.Errorf("failed to seed contact: %w", err)
		}
	}

	transactions := []models.Transaction{
		{
			UserID:           user.ID,
			Type:             models.TransactionSend,
			Amount:           decimal.NewFromInt(100000),
			Recipient:        "손자 김민수",
			RecipientAccount: "****5678",
			Description:      "용돈입니다",
			Status:           models.StatusCompleted,
		},
		{
			UserID:      user.ID,
			Type:        models.TransactionReceive,
			Amount:      decimal.NewFromInt(1240000),
			Recipient:   "국민연금공단",
			Description: "연금지급",
			Status:      models.StatusCompleted,
		},
		{
			UserID:      user.ID,
			Type:        models.TransactionPayment,
			Amount:      decimal.NewFromInt(8500),
			Recipient:   "스타벅스 강남점",
			Description: "카드결제",
			Status:      models.StatusCompleted,
		},
	}
	for i := range transactions {
		if _, err := store.CreateTransaction(ctx, &transactions[i]); err != nil {
			return fmt.Errorf("failed to seed transaction: %w", err)
		}
	}
	return nil
}
