package service

import (
	"context"
	"fmt"

	"github.com/rahulpatel51/Hostel-Backend/internal/domain"
)

type AccountRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Account, error)
	FindStudentByAccountID(ctx context.Context, accountID uint) (domain.Student, error)
	FindWardenByAccountID(ctx context.Context, accountID uint) (domain.Warden, error)
}

type AccountService struct {
	repo AccountRepository
}

func NewAccountService(repo AccountRepository) *AccountService {
	return &AccountService{
		repo: repo,
	}
}

func (s *AccountService) GetAccount(ctx context.Context, id uint) (domain.Account, error) {
	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Account{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return account, nil
}

func (s *AccountService) GetStudentByAccountID(ctx context.Context, accountID uint) (domain.Student, error) {
	student, err := s.repo.FindStudentByAccountID(ctx, accountID)
	if err != nil {
		return domain.Student{}, fmt.Errorf("s.repo.FindStudentByAccountID -> %w", err)
	}

	return student, nil
}

func (s *AccountService) GetWardenByAccountID(ctx context.Context, accountID uint) (domain.Warden, error) {
	warden, err := s.repo.FindWardenByAccountID(ctx, accountID)
	if err != nil {
		return domain.Warden{}, fmt.Errorf("s.repo.FindWardenByAccountID -> %w", err)
	}

	return warden, nil
}
