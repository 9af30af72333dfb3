package repository

import (
	"context"
	"fmt"

	"github.com/rahulpatel51/Hostel-Backend/internal/domain"
	"github.com/rahulpatel51/Hostel-Backend/internal/repository/dao"
)

var ErrStudentNotFound = dao.ErrStudentNotFound

type StudentDAO interface {
	FindByID(ctx context.Context, id uint) (dao.Student, error)
	List(ctx context.Context) ([]dao.Student, error)
	UpdateProfile(ctx context.Context, student dao.Student) (dao.Student, error)
}

type StudentRepository struct {
	dao StudentDAO
}

func NewStudentRepository(dao StudentDAO) *StudentRepository {
	return &StudentRepository{
		dao: dao,
	}
}

func (r *StudentRepository) FindByID(ctx context.Context, id uint) (domain.Student, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Student{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return studentDaoToDomain(found), nil
}

func (r *StudentRepository) List(ctx context.Context) ([]domain.Student, error) {
	students, err := r.dao.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.List -> %w", err)
	}

	return studentsDaoToDomain(students), nil
}

func (r *StudentRepository) UpdateProfile(ctx context.Context, student domain.Student) (domain.Student, error) {
	daoStudent := dao.Student{
		AccountID: student.ID,
		Course:    student.Course,
		Year:      student.Year,
		Account: dao.Account{
			FirstName: student.FirstName,
			LastName:  student.LastName,
			Phone:     student.Phone,
		},
	}

	updated, err := r.dao.UpdateProfile(ctx, daoStudent)
	if err != nil {
		return domain.Student{}, fmt.Errorf("r.dao.UpdateProfile -> %w", err)
	}

	return studentDaoToDomain(updated), nil
}
