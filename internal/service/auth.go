package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"golang.org/x/crypto/bcrypt"

	"github.com/rahulpatel51/Hostel-Backend/internal/domain"
	"github.com/rahulpatel51/Hostel-Backend/internal/repository"
)

var (
	ErrAccountEmailExists = repository.ErrAccountEmailExists
	ErrAccountNotFound    = repository.ErrAccountNotFound
	ErrWrongPassword      = errors.New("wrong password")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrInvalidAdminCode   = errors.New("invalid admin registration code")
)

// idAttempts bounds the retry loop for generated human-facing ids.
const idAttempts = 5

type AuthAccountRepository interface {
	Create(ctx context.Context, account domain.Account) (domain.Account, error)
	CreateStudent(ctx context.Context, student domain.Student) (domain.Student, error)
	CreateWarden(ctx context.Context, warden domain.Warden) (domain.Warden, error)
	FindByEmail(ctx context.Context, email string) (domain.Account, error)
	TouchLastLogin(ctx context.Context, id uint) error
}

type AuthService struct {
	repo AuthAccountRepository

	adminSignupCode string
}

func NewAuthService(repo AuthAccountRepository, adminSignupCode string) *AuthService {
	return &AuthService{
		repo:            repo,
		adminSignupCode: adminSignupCode,
	}
}

func (s *AuthService) SignupStudent(ctx context.Context, student domain.Student) (domain.Account, error) {
	if err := s.checkEmailExists(ctx, student.Email); err != nil {
		return domain.Account{}, err
	}

	hashed, err := hashPassword(student.Password)
	if err != nil {
		return domain.Account{}, err
	}
	student.Password = hashed
	student.Role = domain.RoleStudent

	var created domain.Student
	for attempt := 0; attempt < idAttempts; attempt++ {
		student.StudentID = fmt.Sprintf("STD%04d", 1000+rand.IntN(9000))

		created, err = s.repo.CreateStudent(ctx, student)
		if errors.Is(err, repository.ErrStudentIDExists) {
			continue
		}
		break
	}
	if err != nil {
		return domain.Account{}, fmt.Errorf("s.repo.CreateStudent -> %w", err)
	}

	return created.Account, nil
}

func (s *AuthService) SignupWarden(ctx context.Context, warden domain.Warden) (domain.Account, error) {
	if err := s.checkEmailExists(ctx, warden.Email); err != nil {
		return domain.Account{}, err
	}

	hashed, err := hashPassword(warden.Password)
	if err != nil {
		return domain.Account{}, err
	}
	warden.Password = hashed
	warden.Role = domain.RoleWarden

	var created domain.Warden
	for attempt := 0; attempt < idAttempts; attempt++ {
		warden.StaffID = fmt.Sprintf("WARD%04d", 1000+rand.IntN(9000))

		created, err = s.repo.CreateWarden(ctx, warden)
		if errors.Is(err, repository.ErrStaffIDExists) {
			continue
		}
		break
	}
	if err != nil {
		return domain.Account{}, fmt.Errorf("s.repo.CreateWarden -> %w", err)
	}

	return created.Account, nil
}

// SignupAdmin requires the registration code configured at startup.
func (s *AuthService) SignupAdmin(ctx context.Context, account domain.Account, adminCode string) (domain.Account, error) {
	if adminCode != s.adminSignupCode {
		return domain.Account{}, ErrInvalidAdminCode
	}

	return s.signupBare(ctx, account, domain.RoleAdmin)
}

func (s *AuthService) SignupStaff(ctx context.Context, account domain.Account) (domain.Account, error) {
	return s.signupBare(ctx, account, domain.RoleStaff)
}

func (s *AuthService) signupBare(ctx context.Context, account domain.Account, role string) (domain.Account, error) {
	if err := s.checkEmailExists(ctx, account.Email); err != nil {
		return domain.Account{}, err
	}

	hashed, err := hashPassword(account.Password)
	if err != nil {
		return domain.Account{}, err
	}
	account.Password = hashed
	account.Role = role

	created, err := s.repo.Create(ctx, account)
	if err != nil {
		return domain.Account{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (domain.Account, error) {
	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domain.Account{}, ErrAccountNotFound
		}

		return domain.Account{}, fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}

	if !account.IsActive {
		return domain.Account{}, ErrAccountDisabled
	}

	if err = bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		return domain.Account{}, ErrWrongPassword
	}

	if err = s.repo.TouchLastLogin(ctx, account.ID); err != nil {
		return domain.Account{}, fmt.Errorf("s.repo.TouchLastLogin -> %w", err)
	}

	return account, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

func (s *AuthService) checkEmailExists(ctx context.Context, email string) error {
	_, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return ErrAccountEmailExists
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return err
	}

	return nil
}
