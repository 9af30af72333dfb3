package repository

import (
	"context"
	"fmt"

	"github.com/rahulpatel51/Hostel-Backend/internal/domain"
	"github.com/rahulpatel51/Hostel-Backend/internal/repository/dao"
)

var (
	ErrRoomFull               = dao.ErrRoomFull
	ErrRoomUnderMaintenance   = dao.ErrRoomUnderMaintenance
	ErrStudentAlreadyAssigned = dao.ErrStudentAlreadyAssigned
	ErrStudentNotInRoom       = dao.ErrStudentNotInRoom
)

type OccupancyDAO interface {
	Assign(ctx context.Context, studentID, roomID uint) (dao.Room, dao.Student, error)
	Remove(ctx context.Context, studentID, roomID uint) (dao.Room, dao.Student, error)
	Transfer(ctx context.Context, studentID, fromRoomID, toRoomID uint) (dao.Room, dao.Student, error)
	SetMaintenance(ctx context.Context, roomID uint, on bool) (dao.Room, error)
}

type OccupancyRepository struct {
	dao OccupancyDAO
}

func NewOccupancyRepository(dao OccupancyDAO) *OccupancyRepository {
	return &OccupancyRepository{
		dao: dao,
	}
}

func (r *OccupancyRepository) Assign(ctx context.Context, studentID, roomID uint) (domain.Room, domain.Student, error) {
	room, student, err := r.dao.Assign(ctx, studentID, roomID)
	if err != nil {
		return domain.Room{}, domain.Student{}, fmt.Errorf("r.dao.Assign -> %w", err)
	}

	return roomDaoToDomain(room), studentDaoToDomain(student), nil
}

func (r *OccupancyRepository) Remove(ctx context.Context, studentID, roomID uint) (domain.Room, domain.Student, error) {
	room, student, err := r.dao.Remove(ctx, studentID, roomID)
	if err != nil {
		return domain.Room{}, domain.Student{}, fmt.Errorf("r.dao.Remove -> %w", err)
	}

	return roomDaoToDomain(room), studentDaoToDomain(student), nil
}

func (r *OccupancyRepository) Transfer(ctx context.Context, studentID, fromRoomID, toRoomID uint) (domain.Room, domain.Student, error) {
	room, student, err := r.dao.Transfer(ctx, studentID, fromRoomID, toRoomID)
	if err != nil {
		return domain.Room{}, domain.Student{}, fmt.Errorf("r.dao.Transfer -> %w", err)
	}

	return roomDaoToDomain(room), studentDaoToDomain(student), nil
}

func (r *OccupancyRepository) SetMaintenance(ctx context.Context, roomID uint, on bool) (domain.Room, error) {
	room, err := r.dao.SetMaintenance(ctx, roomID, on)
	if err != nil {
		return domain.Room{}, fmt.Errorf("r.dao.SetMaintenance -> %w", err)
	}

	return roomDaoToDomain(room), nil
}
