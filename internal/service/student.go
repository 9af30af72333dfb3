package service

import (
	"context"
	"fmt"

	"github.com/rahulpatel51/Hostel-Backend/internal/domain"
	"github.com/rahulpatel51/Hostel-Backend/internal/repository"
)

var ErrStudentNotFound = repository.ErrStudentNotFound

type StudentRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Student, error)
	List(ctx context.Context) ([]domain.Student, error)
	UpdateProfile(ctx context.Context, student domain.Student) (domain.Student, error)
}

type StudentService struct {
	repo StudentRepository
}

func NewStudentService(repo StudentRepository) *StudentService {
	return &StudentService{
		repo: repo,
	}
}

// GetStudent returns the profile with its current room joined in.
func (s *StudentService) GetStudent(ctx context.Context, id uint) (domain.Student, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Student{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return student, nil
}

func (s *StudentService) ListStudents(ctx context.Context) ([]domain.Student, error) {
	students, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return students, nil
}

// UpdateProfile edits profile fields. The room reference is not an editable
// field here; it moves only through the occupancy coordinator.
func (s *StudentService) UpdateProfile(ctx context.Context, student domain.Student) (domain.Student, error) {
	updated, err := s.repo.UpdateProfile(ctx, student)
	if err != nil {
		return domain.Student{}, fmt.Errorf("s.repo.UpdateProfile -> %w", err)
	}

	return updated, nil
}
