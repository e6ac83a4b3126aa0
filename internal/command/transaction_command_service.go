package command

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/KimTaekGwan/FinancialFlowApp/internal/cqrs"
	"github.com/KimTaekGwan/FinancialFlowApp/internal/events"
	"github.com/KimTaekGwan/FinancialFlowApp/internal/models"
	"github.com/KimTaekGwan/FinancialFlowApp/internal/repository"
	"github.com/KimTaekGwan/FinancialFlowApp/pkg/logger"
)

var validTransactionTypes = map[string]bool{
	models.TransactionSend:    true,
	models.TransactionReceive: true,
	models.TransactionPayment: true,
	models.TransactionDeposit: true,
}

var validStatuses = map[string]bool{
	models.StatusPending:   true,
	models.StatusCompleted: true,
	models.StatusFailed:    true,
}

// TransactionCommandService creates transactions. A transaction of type
// "send" also debits the owner's balance; the debit is a compare-and-swap
// loop so two concurrent sends for the same user cannot race each other
// into a corrupted balance. Other types never touch the balance.
type TransactionCommandService struct {
	store     repository.TransactionStore
	users     repository.UserStore
	views     *repository.UserViewRepository
	publisher *events.Publisher
}

func NewTransactionCommandService(
	store repository.TransactionStore,
	users repository.UserStore,
	views *repository.UserViewRepository,
	publisher *events.Publisher,
) *TransactionCommandService {
	return &TransactionCommandService{
		store:     store,
		users:     users,
		views:     views,
		publisher: publisher,
	}
}

func (s *TransactionCommandService) CreateTransaction(ctx context.Context, cmd cqrs.CreateTransactionCommand) (*models.Transaction, error) {
	if !validTransactionTypes[cmd.Type] {
		return nil, fmt.Errorf("%w: unknown transaction type %q", ErrInvalidInput, cmd.Type)
	}
	if !cmd.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than zero", ErrInvalidInput)
	}
	status := cmd.Status
	if status == "" {
		status = models.StatusCompleted
	}
	if !validStatuses[status] {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}

	// The owning user must exist before anything is written; otherwise a
	// failed debit would strand an orphaned transaction record.
	if _, err := s.users.GetUser(ctx, cmd.UserID); err != nil {
		return nil, err
	}

	transaction, err := s.store.CreateTransaction(ctx, &models.Transaction{
		UserID:           cmd.UserID,
		Type:             cmd.Type,
		Amount:           cmd.Amount,
		Recipient:        cmd.Recipient,
		RecipientAccount: cmd.RecipientAccount,
		Description:      cmd.Description,
		Status:           status,
	})
	if err != nil {
		return nil, err
	}

	if cmd.Type == models.TransactionSend {
		user, err := s.debit(ctx, cmd.UserID, cmd.Amount)
		if err != nil {
			return nil, fmt.Errorf("failed to debit balance: %w", err)
		}
		s.views.CacheUserView(ctx, user)
		if err := s.publisher.Publish(ctx, events.TransactionEventsStream, events.BalanceUpdated, events.BalanceUpdatedEvent{
			UserID:     user.ID,
			NewBalance: user.Balance.String(),
			Change:     cmd.Amount.Neg().String(),
		}); err != nil {
			logger.Error("failed to publish balance.updated event", zap.Error(err))
		}
	}

	if err := s.publisher.Publish(ctx, events.TransactionEventsStream, events.TransactionCreated, events.TransactionCreatedEvent{
		TransactionID: transaction.ID,
		UserID:        transaction.UserID,
		Type:          transaction.Type,
		Amount:        transaction.Amount.String(),
		Recipient:     transaction.Recipient,
	}); err != nil {
		logger.Error("failed to publish transaction.created event", zap.Error(err))
	}
	return transaction, nil
}

// debit subtracts amount from the user's balance with decimal-exact
// arithmetic. On a CAS miss the balance is re-read and the subtraction
// retried, which serialises concurrent sends without a global lock.
func (s *TransactionCommandService) debit(ctx context.Context, userID int, amount decimal.Decimal) (*models.User, error) {
	for {
		user, err := s.users.GetUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		updated, ok, err := s.users.CompareAndSwapBalance(ctx, userID, user.Balance, user.Balance.Sub(amount))
		if err != nil {
			return nil, err
		}
		if ok {
			return updated, nil
		}
	}
}
