package query

import (
	"context"

	"github.com/KimTaekGwan/FinancialFlowApp/internal/cqrs"
	"github.com/KimTaekGwan/FinancialFlowApp/internal/models"
	"github.com/KimTaekGwan/FinancialFlowApp/internal/repository"
)

// UserQueryService reads user profiles through the view cache.
type UserQueryService struct {
	views *repository.UserViewRepository
}

func NewUserQueryService(views *repository.UserViewRepository) *UserQueryService {
	return &UserQueryService{views: views}
}

func (s *UserQueryService) GetUser(ctx context.Context, q cqrs.GetUserQuery) (*models.User, error) {
	return s.views.GetByID(ctx, q.UserID)
}
