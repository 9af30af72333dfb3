package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahulpatel51/Hostel-Backend/internal/domain"
	"github.com/rahulpatel51/Hostel-Backend/internal/repository"
)

// fakeOccupancyStore serializes transitions behind a mutex, mirroring the
// row-locked transactions of the real repository.
type fakeOccupancyStore struct {
	mu sync.Mutex

	capacity    map[uint]int
	maintenance map[uint]bool
	studentRoom map[uint]*uint
}

func newFakeOccupancyStore() *fakeOccupancyStore {
	return &fakeOccupancyStore{
		capacity:    make(map[uint]int),
		maintenance: make(map[uint]bool),
		studentRoom: make(map[uint]*uint),
	}
}

func (f *fakeOccupancyStore) addRoom(id uint, capacity int) {
	f.capacity[id] = capacity
}

func (f *fakeOccupancyStore) addStudent(id uint) {
	f.studentRoom[id] = nil
}

func (f *fakeOccupancyStore) occupants(roomID uint) int {
	count := 0
	for _, room := range f.studentRoom {
		if room != nil && *room == roomID {
			count++
		}
	}

	return count
}

func (f *fakeOccupancyStore) snapshotRoom(roomID uint) domain.Room {
	capacity := f.capacity[roomID]
	occupied := f.occupants(roomID)

	return domain.Room{
		ID:            roomID,
		Capacity:      capacity,
		OccupiedCount: occupied,
		Status:        domain.DeriveRoomStatus(capacity, occupied, f.maintenance[roomID]),
	}
}

func (f *fakeOccupancyStore) snapshotStudent(studentID uint) domain.Student {
	student := domain.Student{}
	student.ID = studentID
	student.RoomID = f.studentRoom[studentID]

	return student
}

func (f *fakeOccupancyStore) assignLocked(studentID, roomID uint) error {
	if _, ok := f.capacity[roomID]; !ok {
		return repository.ErrRoomNotFound
	}
	current, ok := f.studentRoom[studentID]
	if !ok {
		return repository.ErrStudentNotFound
	}
	if f.maintenance[roomID] {
		return repository.ErrRoomUnderMaintenance
	}
	if current != nil {
		return repository.ErrStudentAlreadyAssigned
	}
	if f.occupants(roomID) >= f.capacity[roomID] {
		return repository.ErrRoomFull
	}

	room := roomID
	f.studentRoom[studentID] = &room

	return nil
}

func (f *fakeOccupancyStore) removeLocked(studentID, roomID uint) error {
	if _, ok := f.capacity[roomID]; !ok {
		return repository.ErrRoomNotFound
	}
	current, ok := f.studentRoom[studentID]
	if !ok {
		return repository.ErrStudentNotFound
	}
	if current == nil || *current != roomID {
		return repository.ErrStudentNotInRoom
	}

	f.studentRoom[studentID] = nil

	return nil
}

func (f *fakeOccupancyStore) Assign(_ context.Context, studentID, roomID uint) (domain.Room, domain.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.assignLocked(studentID, roomID); err != nil {
		return domain.Room{}, domain.Student{}, err
	}

	return f.snapshotRoom(roomID), f.snapshotStudent(studentID), nil
}

func (f *fakeOccupancyStore) Remove(_ context.Context, studentID, roomID uint) (domain.Room, domain.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.removeLocked(studentID, roomID); err != nil {
		return domain.Room{}, domain.Student{}, err
	}

	return f.snapshotRoom(roomID), f.snapshotStudent(studentID), nil
}

func (f *fakeOccupancyStore) Transfer(_ context.Context, studentID, fromRoomID, toRoomID uint) (domain.Room, domain.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	before := f.studentRoom[studentID]

	if err := f.removeLocked(studentID, fromRoomID); err != nil {
		return domain.Room{}, domain.Student{}, err
	}
	if err := f.assignLocked(studentID, toRoomID); err != nil {
		// Roll back, as the real transaction would.
		f.studentRoom[studentID] = before

		return domain.Room{}, domain.Student{}, err
	}

	return f.snapshotRoom(toRoomID), f.snapshotStudent(studentID), nil
}

func (f *fakeOccupancyStore) FindByID(_ context.Context, id uint) (domain.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.studentRoom[id]; !ok {
		return domain.Student{}, repository.ErrStudentNotFound
	}

	return f.snapshotStudent(id), nil
}

func adminActor() domain.Account {
	return domain.Account{ID: 1, Role: domain.RoleAdmin}
}

func TestOccupancyService_Assign(t *testing.T) {
	store := newFakeOccupancyStore()
	store.addRoom(101, 2)
	store.addStudent(7)
	svc := NewOccupancyService(store, store)

	room, student, err := svc.Assign(context.Background(), adminActor(), 7, 101)

	require.NoError(t, err)
	assert.Equal(t, 1, room.OccupiedCount)
	assert.Equal(t, domain.RoomStatusAvailable, room.Status)
	require.NotNil(t, student.RoomID)
	assert.Equal(t, uint(101), *student.RoomID)
}

func TestOccupancyService_Assign_RoomBecomesFull(t *testing.T) {
	store := newFakeOccupancyStore()
	store.addRoom(101, 2)
	store.addStudent(1)
	store.addStudent(2)
	store.addStudent(3)
	svc := NewOccupancyService(store, store)

	_, _, err := svc.Assign(context.Background(), adminActor(), 1, 101)
	require.NoError(t, err)

	room, _, err := svc.Assign(context.Background(), adminActor(), 2, 101)
	require.NoError(t, err)
	assert.Equal(t, domain.RoomStatusFull, room.Status)

	_, _, err = svc.Assign(context.Background(), adminActor(), 3, 101)
	assert.ErrorIs(t, err, ErrRoomFull)
}

func TestOccupancyService_Assign_AlreadyAssigned(t *testing.T) {
	store := newFakeOccupancyStore()
	store.addRoom(101, 2)
	store.addRoom(102, 2)
	store.addStudent(7)
	svc := NewOccupancyService(store, store)

	_, _, err := svc.Assign(context.Background(), adminActor(), 7, 101)
	require.NoError(t, err)

	_, _, err = svc.Assign(context.Background(), adminActor(), 7, 102)
	assert.ErrorIs(t, err, ErrStudentAlreadyAssigned)
}

func TestOccupancyService_Assign_UnderMaintenance(t *testing.T) {
	store := newFakeOccupancyStore()
	store.addRoom(101, 2)
	store.maintenance[101] = true
	store.addStudent(7)
	svc := NewOccupancyService(store, store)

	_, _, err := svc.Assign(context.Background(), adminActor(), 7, 101)

	assert.ErrorIs(t, err, ErrRoomUnderMaintenance)
}

func TestOccupancyService_Assign_Forbidden(t *testing.T) {
	store := newFakeOccupancyStore()
	store.addRoom(101, 2)
	store.addStudent(7)
	svc := NewOccupancyService(store, store)

	actor := domain.Account{ID: 9, Role: domain.RoleStudent}
	_, _, err := svc.Assign(context.Background(), actor, 7, 101)

	assert.ErrorIs(t, err, ErrOccupancyForbidden)
}

func TestOccupancyService_Remove_NotInRoom(t *testing.T) {
	store := newFakeOccupancyStore()
	store.addRoom(101, 2)
	store.addStudent(7)
	svc := NewOccupancyService(store, store)

	_, _, err := svc.Remove(context.Background(), adminActor(), 7, 101)

	assert.ErrorIs(t, err, ErrStudentNotInRoom)
}

func TestOccupancyService_Deallocate(t *testing.T) {
	store := newFakeOccupancyStore()
	store.addRoom(101, 2)
	store.addStudent(7)
	svc := NewOccupancyService(store, store)

	_, _, err := svc.Assign(context.Background(), adminActor(), 7, 101)
	require.NoError(t, err)

	room, student, err := svc.Deallocate(context.Background(), adminActor(), 7)

	require.NoError(t, err)
	assert.Equal(t, 0, room.OccupiedCount)
	assert.Nil(t, student.RoomID)
}

func TestOccupancyService_Deallocate_Unassigned(t *testing.T) {
	store := newFakeOccupancyStore()
	store.addStudent(7)
	svc := NewOccupancyService(store, store)

	_, _, err := svc.Deallocate(context.Background(), adminActor(), 7)

	assert.ErrorIs(t, err, ErrStudentNotInRoom)
}

func TestOccupancyService_Transfer(t *testing.T) {
	store := newFakeOccupancyStore()
	store.addRoom(101, 1)
	store.addRoom(102, 1)
	store.addStudent(7)
	svc := NewOccupancyService(store, store)

	_, _, err := svc.Assign(context.Background(), adminActor(), 7, 101)
	require.NoError(t, err)

	room, student, err := svc.Transfer(context.Background(), adminActor(), 7, 101, 102)

	require.NoError(t, err)
	assert.Equal(t, uint(102), room.ID)
	require.NotNil(t, student.RoomID)
	assert.Equal(t, uint(102), *student.RoomID)
	assert.Equal(t, 0, store.occupants(101))
}

func TestOccupancyService_Transfer_TargetFullKeepsOriginal(t *testing.T) {
	store := newFakeOccupancyStore()
	store.addRoom(101, 1)
	store.addRoom(102, 1)
	store.addStudent(7)
	store.addStudent(8)
	svc := NewOccupancyService(store, store)

	_, _, err := svc.Assign(context.Background(), adminActor(), 7, 101)
	require.NoError(t, err)
	_, _, err = svc.Assign(context.Background(), adminActor(), 8, 102)
	require.NoError(t, err)

	_, _, err = svc.Transfer(context.Background(), adminActor(), 7, 101, 102)

	assert.ErrorIs(t, err, ErrRoomFull)

	// The failed transfer must leave the original assignment in place.
	student, err := store.FindByID(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, student.RoomID)
	assert.Equal(t, uint(101), *student.RoomID)
}

// TestOccupancyService_ConcurrentAssigns races many assignments at one room
// and expects exactly capacity of them to win.
func TestOccupancyService_ConcurrentAssigns(t *testing.T) {
	const (
		roomCapacity = 2
		contenders   = 8
	)

	store := newFakeOccupancyStore()
	store.addRoom(101, roomCapacity)
	for i := 1; i <= contenders; i++ {
		store.addStudent(uint(i))
	}
	svc := NewOccupancyService(store, store)

	errs := make([]error, contenders)

	var wg sync.WaitGroup
	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, errs[i] = svc.Assign(context.Background(), adminActor(), uint(i+1), 101)
		}(i)
	}
	wg.Wait()

	succeeded, full := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case assert.ErrorIs(t, err, ErrRoomFull):
			full++
		}
	}

	assert.Equal(t, roomCapacity, succeeded)
	assert.Equal(t, contenders-roomCapacity, full)
	assert.Equal(t, roomCapacity, store.occupants(101))
}
