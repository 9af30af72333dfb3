package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rahulpatel51/Hostel-Backend/internal/domain"
	"github.com/rahulpatel51/Hostel-Backend/internal/repository"
)

var (
	ErrRoomFull               = repository.ErrRoomFull
	ErrRoomUnderMaintenance   = repository.ErrRoomUnderMaintenance
	ErrStudentAlreadyAssigned = repository.ErrStudentAlreadyAssigned
	ErrStudentNotInRoom       = repository.ErrStudentNotInRoom

	ErrOccupancyForbidden = errors.New("only admins and wardens can manage room occupancy")
)

type OccupancyRepository interface {
	Assign(ctx context.Context, studentID, roomID uint) (domain.Room, domain.Student, error)
	Remove(ctx context.Context, studentID, roomID uint) (domain.Room, domain.Student, error)
	Transfer(ctx context.Context, studentID, fromRoomID, toRoomID uint) (domain.Room, domain.Student, error)
}

type OccupancyStudentRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Student, error)
}

// OccupancyService is the only authority for moving a student into, out of,
// or between rooms. Each operation maps to a single all-or-nothing
// repository transaction; a failed transfer leaves the original assignment
// in place.
type OccupancyService struct {
	repo     OccupancyRepository
	students OccupancyStudentRepository
}

func NewOccupancyService(repo OccupancyRepository, students OccupancyStudentRepository) *OccupancyService {
	return &OccupancyService{
		repo:     repo,
		students: students,
	}
}

func (s *OccupancyService) Assign(ctx context.Context, actor domain.Account, studentID, roomID uint) (domain.Room, domain.Student, error) {
	if err := checkOccupancyRole(actor); err != nil {
		return domain.Room{}, domain.Student{}, err
	}

	room, student, err := s.repo.Assign(ctx, studentID, roomID)
	if err != nil {
		return domain.Room{}, domain.Student{}, fmt.Errorf("s.repo.Assign -> %w", err)
	}

	return room, student, nil
}

func (s *OccupancyService) Remove(ctx context.Context, actor domain.Account, studentID, roomID uint) (domain.Room, domain.Student, error) {
	if err := checkOccupancyRole(actor); err != nil {
		return domain.Room{}, domain.Student{}, err
	}

	room, student, err := s.repo.Remove(ctx, studentID, roomID)
	if err != nil {
		return domain.Room{}, domain.Student{}, fmt.Errorf("s.repo.Remove -> %w", err)
	}

	return room, student, nil
}

// Deallocate removes a student from whichever room they currently hold.
func (s *OccupancyService) Deallocate(ctx context.Context, actor domain.Account, studentID uint) (domain.Room, domain.Student, error) {
	if err := checkOccupancyRole(actor); err != nil {
		return domain.Room{}, domain.Student{}, err
	}

	student, err := s.students.FindByID(ctx, studentID)
	if err != nil {
		return domain.Room{}, domain.Student{}, fmt.Errorf("s.students.FindByID -> %w", err)
	}
	if !student.Assigned() {
		return domain.Room{}, domain.Student{}, ErrStudentNotInRoom
	}

	room, student, err := s.repo.Remove(ctx, studentID, *student.RoomID)
	if err != nil {
		return domain.Room{}, domain.Student{}, fmt.Errorf("s.repo.Remove -> %w", err)
	}

	return room, student, nil
}

func (s *OccupancyService) Transfer(ctx context.Context, actor domain.Account, studentID, fromRoomID, toRoomID uint) (domain.Room, domain.Student, error) {
	if err := checkOccupancyRole(actor); err != nil {
		return domain.Room{}, domain.Student{}, err
	}

	room, student, err := s.repo.Transfer(ctx, studentID, fromRoomID, toRoomID)
	if err != nil {
		return domain.Room{}, domain.Student{}, fmt.Errorf("s.repo.Transfer -> %w", err)
	}

	return room, student, nil
}

func checkOccupancyRole(actor domain.Account) error {
	if actor.Role != domain.RoleAdmin && actor.Role != domain.RoleWarden {
		return ErrOccupancyForbidden
	}

	return nil
}
