package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahulpatel51/Hostel-Backend/internal/domain"
	"github.com/rahulpatel51/Hostel-Backend/internal/repository"
)

type fakeRoomRepo struct {
	nextID uint
	rooms  map[uint]domain.Room
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{
		rooms: make(map[uint]domain.Room),
	}
}

func (f *fakeRoomRepo) Create(_ context.Context, room domain.Room) (domain.Room, error) {
	for _, existing := range f.rooms {
		if existing.Block == room.Block && existing.RoomNumber == room.RoomNumber {
			return domain.Room{}, repository.ErrRoomNumberExists
		}
	}

	f.nextID++
	room.ID = f.nextID
	room.Status = domain.RoomStatusAvailable
	f.rooms[room.ID] = room

	return room, nil
}

func (f *fakeRoomRepo) FindByID(_ context.Context, id uint) (domain.Room, error) {
	room, ok := f.rooms[id]
	if !ok {
		return domain.Room{}, repository.ErrRoomNotFound
	}

	return room, nil
}

func (f *fakeRoomRepo) List(_ context.Context, filter repository.RoomFilter) ([]domain.Room, error) {
	var result []domain.Room
	for _, room := range f.rooms {
		if filter.Block != "" && room.Block != filter.Block {
			continue
		}
		if filter.Status != "" && string(room.Status) != filter.Status {
			continue
		}
		result = append(result, room)
	}

	return result, nil
}

func (f *fakeRoomRepo) Update(_ context.Context, room domain.Room) (domain.Room, error) {
	existing, ok := f.rooms[room.ID]
	if !ok {
		return domain.Room{}, repository.ErrRoomNotFound
	}
	if room.Capacity < existing.OccupiedCount {
		return domain.Room{}, repository.ErrCapacityBelowOccupancy
	}

	existing.Capacity = room.Capacity
	existing.Description = room.Description
	f.rooms[room.ID] = existing

	return existing, nil
}

func (f *fakeRoomRepo) Delete(_ context.Context, id uint) error {
	if _, ok := f.rooms[id]; !ok {
		return repository.ErrRoomNotFound
	}
	delete(f.rooms, id)

	return nil
}

func (f *fakeRoomRepo) SetMaintenance(_ context.Context, roomID uint, on bool) (domain.Room, error) {
	room, ok := f.rooms[roomID]
	if !ok {
		return domain.Room{}, repository.ErrRoomNotFound
	}

	if on {
		room.OccupiedCount = 0
	}
	room.Status = domain.DeriveRoomStatus(room.Capacity, room.OccupiedCount, on)
	f.rooms[roomID] = room

	return room, nil
}

func TestRoomService_CreateRoom(t *testing.T) {
	repo := newFakeRoomRepo()
	svc := NewRoomService(repo, repo)

	room, err := svc.CreateRoom(context.Background(), domain.Room{
		Block:      "A",
		RoomNumber: "101",
		Capacity:   2,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RoomStatusAvailable, room.Status)

	_, err = svc.CreateRoom(context.Background(), domain.Room{
		Block:      "A",
		RoomNumber: "101",
		Capacity:   3,
	})
	assert.ErrorIs(t, err, ErrRoomNumberExists)
}

func TestRoomService_CreateRoom_InvalidCapacity(t *testing.T) {
	repo := newFakeRoomRepo()
	svc := NewRoomService(repo, repo)

	_, err := svc.CreateRoom(context.Background(), domain.Room{Block: "A", RoomNumber: "101", Capacity: 0})
	assert.ErrorIs(t, err, ErrInvalidCapacity)

	_, err = svc.CreateRoom(context.Background(), domain.Room{Block: "A", RoomNumber: "101", Capacity: 5})
	assert.ErrorIs(t, err, ErrInvalidCapacity)
}

func TestRoomService_UpdateRoom_CapacityBelowOccupancy(t *testing.T) {
	repo := newFakeRoomRepo()
	svc := NewRoomService(repo, repo)

	room, err := svc.CreateRoom(context.Background(), domain.Room{Block: "A", RoomNumber: "101", Capacity: 3})
	require.NoError(t, err)

	occupied := repo.rooms[room.ID]
	occupied.OccupiedCount = 2
	repo.rooms[room.ID] = occupied

	_, err = svc.UpdateRoom(context.Background(), domain.Room{ID: room.ID, Capacity: 1})
	assert.ErrorIs(t, err, ErrCapacityBelowOccupancy)
}

func TestRoomService_SetMaintenance(t *testing.T) {
	repo := newFakeRoomRepo()
	svc := NewRoomService(repo, repo)

	room, err := svc.CreateRoom(context.Background(), domain.Room{Block: "A", RoomNumber: "101", Capacity: 2})
	require.NoError(t, err)

	occupied := repo.rooms[room.ID]
	occupied.OccupiedCount = 2
	repo.rooms[room.ID] = occupied

	// Entering maintenance evicts occupants.
	updated, err := svc.SetMaintenance(context.Background(), room.ID, true)
	require.NoError(t, err)
	assert.Equal(t, domain.RoomStatusMaintenance, updated.Status)
	assert.Equal(t, 0, updated.OccupiedCount)

	// Leaving maintenance reopens the room.
	updated, err = svc.SetMaintenance(context.Background(), room.ID, false)
	require.NoError(t, err)
	assert.Equal(t, domain.RoomStatusAvailable, updated.Status)
}
