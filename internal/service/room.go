package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rahulpatel51/Hostel-Backend/internal/domain"
	"github.com/rahulpatel51/Hostel-Backend/internal/repository"
)

var (
	ErrRoomNotFound           = repository.ErrRoomNotFound
	ErrRoomNumberExists       = repository.ErrRoomNumberExists
	ErrCapacityBelowOccupancy = repository.ErrCapacityBelowOccupancy

	ErrInvalidCapacity = errors.New("capacity must be between 1 and 4")
)

type RoomRepository interface {
	Create(ctx context.Context, room domain.Room) (domain.Room, error)
	FindByID(ctx context.Context, id uint) (domain.Room, error)
	List(ctx context.Context, filter repository.RoomFilter) ([]domain.Room, error)
	Update(ctx context.Context, room domain.Room) (domain.Room, error)
	Delete(ctx context.Context, id uint) error
}

type MaintenanceRepository interface {
	SetMaintenance(ctx context.Context, roomID uint, on bool) (domain.Room, error)
}

type RoomService struct {
	repo        RoomRepository
	maintenance MaintenanceRepository
}

func NewRoomService(repo RoomRepository, maintenance MaintenanceRepository) *RoomService {
	return &RoomService{
		repo:        repo,
		maintenance: maintenance,
	}
}

func (s *RoomService) CreateRoom(ctx context.Context, room domain.Room) (domain.Room, error) {
	if room.Capacity < domain.MinRoomCapacity || room.Capacity > domain.MaxRoomCapacity {
		return domain.Room{}, ErrInvalidCapacity
	}

	created, err := s.repo.Create(ctx, room)
	if err != nil {
		return domain.Room{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *RoomService) GetRoom(ctx context.Context, id uint) (domain.Room, error) {
	room, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Room{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return room, nil
}

func (s *RoomService) ListRooms(ctx context.Context, filter repository.RoomFilter) ([]domain.Room, error) {
	rooms, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return rooms, nil
}

func (s *RoomService) UpdateRoom(ctx context.Context, room domain.Room) (domain.Room, error) {
	if room.Capacity < domain.MinRoomCapacity || room.Capacity > domain.MaxRoomCapacity {
		return domain.Room{}, ErrInvalidCapacity
	}

	updated, err := s.repo.Update(ctx, room)
	if err != nil {
		return domain.Room{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// SetMaintenance moves a room in or out of maintenance. Entering maintenance
// evicts all occupants, so it routes through the occupancy coordinator's
// transaction rather than a plain field update.
func (s *RoomService) SetMaintenance(ctx context.Context, roomID uint, on bool) (domain.Room, error) {
	room, err := s.maintenance.SetMaintenance(ctx, roomID, on)
	if err != nil {
		return domain.Room{}, fmt.Errorf("s.maintenance.SetMaintenance -> %w", err)
	}

	return room, nil
}

func (s *RoomService) DeleteRoom(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
