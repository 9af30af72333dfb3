package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/rahulpatel51/Hostel-Backend/internal/domain"
	"github.com/rahulpatel51/Hostel-Backend/internal/repository/dao"
)

var (
	ErrAccountEmailExists = dao.ErrAccountEmailExists
	ErrAccountNotFound    = dao.ErrAccountNotFound
	ErrStudentIDExists    = dao.ErrStudentIDExists
	ErrStaffIDExists      = dao.ErrStaffIDExists
	ErrWardenNotFound     = dao.ErrWardenNotFound
)

type AccountDAO interface {
	Insert(ctx context.Context, account dao.Account) (dao.Account, error)
	FindByID(ctx context.Context, id uint) (dao.Account, error)
	FindByEmail(ctx context.Context, email string) (dao.Account, error)
	UpdateLastLogin(ctx context.Context, id uint, at time.Time) error
}

type StudentProfileDAO interface {
	InsertWithAccount(ctx context.Context, account dao.Account, student dao.Student) (dao.Student, error)
	FindByID(ctx context.Context, id uint) (dao.Student, error)
}

type WardenProfileDAO interface {
	InsertWithAccount(ctx context.Context, account dao.Account, warden dao.Warden) (dao.Warden, error)
	FindByAccountID(ctx context.Context, accountID uint) (dao.Warden, error)
}

type AccountRepository struct {
	dao        AccountDAO
	studentDAO StudentProfileDAO
	wardenDAO  WardenProfileDAO
}

func NewAccountRepository(accountDAO AccountDAO, studentDAO StudentProfileDAO, wardenDAO WardenProfileDAO) *AccountRepository {
	return &AccountRepository{
		dao:        accountDAO,
		studentDAO: studentDAO,
		wardenDAO:  wardenDAO,
	}
}

// Create provisions a bare account (admin and staff roles carry no profile).
func (r *AccountRepository) Create(ctx context.Context, account domain.Account) (domain.Account, error) {
	created, err := r.dao.Insert(ctx, dao.Account{
		Email:     account.Email,
		Password:  account.Password,
		FirstName: account.FirstName,
		LastName:  account.LastName,
		Phone:     account.Phone,
		Role:      account.Role,
		IsActive:  true,
	})
	if err != nil {
		return domain.Account{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return accountDaoToDomain(created), nil
}

func (r *AccountRepository) CreateStudent(ctx context.Context, student domain.Student) (domain.Student, error) {
	daoAccount := dao.Account{
		Email:     student.Email,
		Password:  student.Password,
		FirstName: student.FirstName,
		LastName:  student.LastName,
		Phone:     student.Phone,
		Role:      domain.RoleStudent,
		IsActive:  true,
	}
	daoStudent := dao.Student{
		StudentID: student.StudentID,
		Course:    student.Course,
		Year:      student.Year,
	}

	created, err := r.studentDAO.InsertWithAccount(ctx, daoAccount, daoStudent)
	if err != nil {
		return domain.Student{}, fmt.Errorf("r.studentDAO.InsertWithAccount -> %w", err)
	}

	return studentDaoToDomain(created), nil
}

func (r *AccountRepository) CreateWarden(ctx context.Context, warden domain.Warden) (domain.Warden, error) {
	daoAccount := dao.Account{
		Email:     warden.Email,
		Password:  warden.Password,
		FirstName: warden.FirstName,
		LastName:  warden.LastName,
		Phone:     warden.Phone,
		Role:      domain.RoleWarden,
		IsActive:  true,
	}
	daoWarden := dao.Warden{
		StaffID:       warden.StaffID,
		AssignedBlock: warden.AssignedBlock,
	}

	created, err := r.wardenDAO.InsertWithAccount(ctx, daoAccount, daoWarden)
	if err != nil {
		return domain.Warden{}, fmt.Errorf("r.wardenDAO.InsertWithAccount -> %w", err)
	}

	return wardenDaoToDomain(created), nil
}

func (r *AccountRepository) FindByID(ctx context.Context, id uint) (domain.Account, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Account{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return accountDaoToDomain(found), nil
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (domain.Account, error) {
	found, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.Account{}, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}

	return accountDaoToDomain(found), nil
}

func (r *AccountRepository) FindStudentByAccountID(ctx context.Context, accountID uint) (domain.Student, error) {
	found, err := r.studentDAO.FindByID(ctx, accountID)
	if err != nil {
		return domain.Student{}, fmt.Errorf("r.studentDAO.FindByID -> %w", err)
	}

	return studentDaoToDomain(found), nil
}

func (r *AccountRepository) FindWardenByAccountID(ctx context.Context, accountID uint) (domain.Warden, error) {
	found, err := r.wardenDAO.FindByAccountID(ctx, accountID)
	if err != nil {
		return domain.Warden{}, fmt.Errorf("r.wardenDAO.FindByAccountID -> %w", err)
	}

	return wardenDaoToDomain(found), nil
}

func (r *AccountRepository) TouchLastLogin(ctx context.Context, id uint) error {
	if err := r.dao.UpdateLastLogin(ctx, id, time.Now()); err != nil {
		return fmt.Errorf("r.dao.UpdateLastLogin -> %w", err)
	}

	return nil
}
