package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahulpatel51/Hostel-Backend/internal/domain"
	"github.com/rahulpatel51/Hostel-Backend/internal/repository"
)

type fakeAllocationRepo struct {
	nextID      uint
	allocations map[uint]domain.Allocation
}

func newFakeAllocationRepo() *fakeAllocationRepo {
	return &fakeAllocationRepo{
		allocations: make(map[uint]domain.Allocation),
	}
}

func (f *fakeAllocationRepo) CreateActive(_ context.Context, allocation domain.Allocation) (domain.Allocation, error) {
	for _, existing := range f.allocations {
		if existing.RoomID == allocation.RoomID &&
			existing.BedNumber == allocation.BedNumber &&
			existing.Status == domain.AllocationActive {
			return domain.Allocation{}, repository.ErrBedOccupied
		}
	}

	f.nextID++
	allocation.ID = f.nextID
	allocation.Status = domain.AllocationActive
	f.allocations[allocation.ID] = allocation

	return allocation, nil
}

func (f *fakeAllocationRepo) Release(_ context.Context, allocationID uint, status domain.AllocationStatus) (domain.Allocation, error) {
	allocation, ok := f.allocations[allocationID]
	if !ok {
		return domain.Allocation{}, repository.ErrAllocationNotFound
	}
	if allocation.Status != domain.AllocationActive {
		return domain.Allocation{}, repository.ErrAllocationNotActive
	}

	now := time.Now()
	allocation.Status = status
	allocation.EndDate = &now
	f.allocations[allocationID] = allocation

	return allocation, nil
}

func (f *fakeAllocationRepo) UpdatePaymentStatus(_ context.Context, allocationID uint, paymentStatus domain.PaymentStatus) (domain.Allocation, error) {
	allocation, ok := f.allocations[allocationID]
	if !ok {
		return domain.Allocation{}, repository.ErrAllocationNotFound
	}

	allocation.PaymentStatus = paymentStatus
	f.allocations[allocationID] = allocation

	return allocation, nil
}

func (f *fakeAllocationRepo) FindByID(_ context.Context, id uint) (domain.Allocation, error) {
	allocation, ok := f.allocations[id]
	if !ok {
		return domain.Allocation{}, repository.ErrAllocationNotFound
	}

	return allocation, nil
}

func (f *fakeAllocationRepo) List(_ context.Context, filter repository.AllocationFilter) ([]domain.Allocation, error) {
	var result []domain.Allocation
	for _, allocation := range f.allocations {
		if filter.RoomID != 0 && allocation.RoomID != filter.RoomID {
			continue
		}
		if filter.StudentID != 0 && allocation.StudentID != filter.StudentID {
			continue
		}
		if filter.Status != "" && string(allocation.Status) != filter.Status {
			continue
		}
		result = append(result, allocation)
	}

	return result, nil
}

func TestAllocationService_Allocate(t *testing.T) {
	repo := newFakeAllocationRepo()
	svc := NewAllocationService(repo)
	actor := domain.Account{ID: 42, Role: domain.RoleWarden}

	created, err := svc.Allocate(context.Background(), actor, domain.Allocation{
		StudentID: 7,
		RoomID:    101,
		BedNumber: 1,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.AllocationActive, created.Status)
	assert.Equal(t, domain.PaymentPending, created.PaymentStatus)
	assert.Equal(t, uint(42), created.AllocatedByID)
	assert.False(t, created.StartDate.IsZero())
}

func TestAllocationService_Allocate_Forbidden(t *testing.T) {
	svc := NewAllocationService(newFakeAllocationRepo())
	actor := domain.Account{ID: 7, Role: domain.RoleStudent}

	_, err := svc.Allocate(context.Background(), actor, domain.Allocation{
		StudentID: 7,
		RoomID:    101,
		BedNumber: 1,
	})

	assert.ErrorIs(t, err, ErrOccupancyForbidden)
}

func TestAllocationService_Allocate_BedOccupied(t *testing.T) {
	repo := newFakeAllocationRepo()
	svc := NewAllocationService(repo)
	actor := domain.Account{ID: 42, Role: domain.RoleAdmin}

	_, err := svc.Allocate(context.Background(), actor, domain.Allocation{
		StudentID: 7, RoomID: 101, BedNumber: 1,
	})
	require.NoError(t, err)

	_, err = svc.Allocate(context.Background(), actor, domain.Allocation{
		StudentID: 8, RoomID: 101, BedNumber: 1,
	})
	assert.ErrorIs(t, err, ErrBedOccupied)
}

func TestAllocationService_Release(t *testing.T) {
	repo := newFakeAllocationRepo()
	svc := NewAllocationService(repo)
	actor := domain.Account{ID: 42, Role: domain.RoleAdmin}

	created, err := svc.Allocate(context.Background(), actor, domain.Allocation{
		StudentID: 7, RoomID: 101, BedNumber: 1,
	})
	require.NoError(t, err)

	released, err := svc.Release(context.Background(), actor, created.ID, domain.AllocationCompleted)

	require.NoError(t, err)
	assert.Equal(t, domain.AllocationCompleted, released.Status)
	assert.NotNil(t, released.EndDate)

	// Releasing twice is a conflict, not an idempotent no-op.
	_, err = svc.Release(context.Background(), actor, created.ID, domain.AllocationCancelled)
	assert.ErrorIs(t, err, ErrAllocationNotActive)
}

func TestAllocationService_Release_InvalidStatus(t *testing.T) {
	svc := NewAllocationService(newFakeAllocationRepo())
	actor := domain.Account{ID: 42, Role: domain.RoleAdmin}

	_, err := svc.Release(context.Background(), actor, 1, domain.AllocationActive)

	assert.ErrorIs(t, err, ErrInvalidReleaseStatus)
}

func TestAllocationService_UpdatePaymentStatus(t *testing.T) {
	repo := newFakeAllocationRepo()
	svc := NewAllocationService(repo)
	actor := domain.Account{ID: 42, Role: domain.RoleAdmin}

	created, err := svc.Allocate(context.Background(), actor, domain.Allocation{
		StudentID: 7, RoomID: 101, BedNumber: 2,
	})
	require.NoError(t, err)

	updated, err := svc.UpdatePaymentStatus(context.Background(), actor, created.ID, domain.PaymentPaid)

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPaid, updated.PaymentStatus)

	_, err = svc.UpdatePaymentStatus(context.Background(), actor, 999, domain.PaymentPaid)
	assert.ErrorIs(t, err, ErrAllocationNotFound)
}
