package command

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/KimTaekGwan/FinancialFlowApp/internal/cqrs"
	"github.com/KimTaekGwan/FinancialFlowApp/internal/events"
	"github.com/KimTaekGwan/FinancialFlowApp/internal/models"
	"github.com/KimTaekGwan/FinancialFlowApp/internal/repository"
	"github.com/KimTaekGwan/FinancialFlowApp/internal/utils"
	"github.com/KimTaekGwan/FinancialFlowApp/pkg/logger"
)

// UserCommandService registers users and keeps the view cache current.
type UserCommandService struct {
	store     repository.UserStore
	views     *repository.UserViewRepository
	publisher *events.Publisher
}

func NewUserCommandService(store repository.UserStore, views *repository.UserViewRepository, publisher *events.Publisher) *UserCommandService {
	return &UserCommandService{store: store, views: views, publisher: publisher}
}

func (s *UserCommandService) CreateUser(ctx context.Context, cmd cqrs.CreateUserCommand) (*models.User, error) {
	if cmd.Balance.IsNegative() {
		return nil, fmt.Errorf("%w: balance must not be negative", ErrInvalidInput)
	}
	passwordHash, err := utils.HashPassword(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user, err := s.store.CreateUser(ctx, &models.User{
		Name:         cmd.Name,
		Email:        cmd.Email,
		PasswordHash: passwordHash,
		Phone:        cmd.Phone,
		BankAccount:  cmd.BankAccount,
		Balance:      cmd.Balance,
	})
	if err != nil {
		return nil, err
	}
	s.views.CacheUserView(ctx, user)
	if err := s.publisher.Publish(ctx, events.UserEventsStream, events.UserCreated, events.UserCreatedEvent{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
	}); err != nil {
		logger.Error("failed to publish user.created event", zap.Error(err))
	}
	return user, nil
}
