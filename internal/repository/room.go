package repository

import (
	"context"
	"fmt"

	"github.com/rahulpatel51/Hostel-Backend/internal/domain"
	"github.com/rahulpatel51/Hostel-Backend/internal/repository/dao"
)

var (
	ErrRoomNotFound           = dao.ErrRoomNotFound
	ErrRoomNumberExists       = dao.ErrRoomNumberExists
	ErrCapacityBelowOccupancy = dao.ErrCapacityBelowOccupancy
)

// RoomFilter mirrors dao.RoomFilter at the domain boundary.
type RoomFilter struct {
	Block    string
	Floor    string
	Status   string
	RoomType string
}

type RoomDAO interface {
	Insert(ctx context.Context, room dao.Room) (dao.Room, error)
	FindByID(ctx context.Context, id uint) (dao.Room, error)
	List(ctx context.Context, filter dao.RoomFilter) ([]dao.Room, error)
	Update(ctx context.Context, room dao.Room) (dao.Room, error)
	Delete(ctx context.Context, id uint) error
}

type RoomRepository struct {
	dao RoomDAO
}

func NewRoomRepository(dao RoomDAO) *RoomRepository {
	return &RoomRepository{
		dao: dao,
	}
}

func (r *RoomRepository) Create(ctx context.Context, room domain.Room) (domain.Room, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(room))
	if err != nil {
		return domain.Room{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return roomDaoToDomain(created), nil
}

func (r *RoomRepository) FindByID(ctx context.Context, id uint) (domain.Room, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Room{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return roomDaoToDomain(found), nil
}

func (r *RoomRepository) List(ctx context.Context, filter RoomFilter) ([]domain.Room, error) {
	rooms, err := r.dao.List(ctx, dao.RoomFilter{
		Block:    filter.Block,
		Floor:    filter.Floor,
		Status:   filter.Status,
		RoomType: filter.RoomType,
	})
	if err != nil {
		return nil, fmt.Errorf("r.dao.List -> %w", err)
	}

	return roomsDaoToDomain(rooms), nil
}

func (r *RoomRepository) Update(ctx context.Context, room domain.Room) (domain.Room, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(room))
	if err != nil {
		return domain.Room{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return roomDaoToDomain(updated), nil
}

func (r *RoomRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *RoomRepository) domainToDao(room domain.Room) dao.Room {
	return dao.Room{
		ID:          room.ID,
		Block:       room.Block,
		RoomNumber:  room.RoomNumber,
		Floor:       room.Floor,
		Capacity:    room.Capacity,
		RoomType:    room.RoomType,
		Facilities:  room.Facilities,
		Description: room.Description,
		Price:       room.Price,
		PricePeriod: room.PricePeriod,
		ImageURL:    room.ImageURL,
	}
}
