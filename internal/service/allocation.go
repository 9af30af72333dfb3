package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rahulpatel51/Hostel-Backend/internal/domain"
	"github.com/rahulpatel51/Hostel-Backend/internal/repository"
)

var (
	ErrAllocationNotFound  = repository.ErrAllocationNotFound
	ErrAllocationNotActive = repository.ErrAllocationNotActive
	ErrBedOccupied         = repository.ErrBedOccupied
	ErrBedOutOfRange       = repository.ErrBedOutOfRange

	ErrInvalidReleaseStatus = errors.New("release status must be Completed or Cancelled")
)

type AllocationRepository interface {
	CreateActive(ctx context.Context, allocation domain.Allocation) (domain.Allocation, error)
	Release(ctx context.Context, allocationID uint, status domain.AllocationStatus) (domain.Allocation, error)
	UpdatePaymentStatus(ctx context.Context, allocationID uint, paymentStatus domain.PaymentStatus) (domain.Allocation, error)
	FindByID(ctx context.Context, id uint) (domain.Allocation, error)
	List(ctx context.Context, filter repository.AllocationFilter) ([]domain.Allocation, error)
}

// AllocationService keeps the bed-level ledger. It never mutates room
// occupancy itself; the repository runs the ledger write and the occupancy
// change through the coordinator's transaction as one unit.
type AllocationService struct {
	repo AllocationRepository
}

func NewAllocationService(repo AllocationRepository) *AllocationService {
	return &AllocationService{
		repo: repo,
	}
}

func (s *AllocationService) Allocate(ctx context.Context, actor domain.Account, allocation domain.Allocation) (domain.Allocation, error) {
	if err := checkOccupancyRole(actor); err != nil {
		return domain.Allocation{}, err
	}

	if allocation.StartDate.IsZero() {
		allocation.StartDate = time.Now()
	}
	if allocation.PaymentStatus == "" {
		allocation.PaymentStatus = domain.PaymentPending
	}
	allocation.AllocatedByID = actor.ID

	created, err := s.repo.CreateActive(ctx, allocation)
	if err != nil {
		return domain.Allocation{}, fmt.Errorf("s.repo.CreateActive -> %w", err)
	}

	return created, nil
}

func (s *AllocationService) Release(ctx context.Context, actor domain.Account, allocationID uint, status domain.AllocationStatus) (domain.Allocation, error) {
	if err := checkOccupancyRole(actor); err != nil {
		return domain.Allocation{}, err
	}

	if status != domain.AllocationCompleted && status != domain.AllocationCancelled {
		return domain.Allocation{}, ErrInvalidReleaseStatus
	}

	released, err := s.repo.Release(ctx, allocationID, status)
	if err != nil {
		return domain.Allocation{}, fmt.Errorf("s.repo.Release -> %w", err)
	}

	return released, nil
}

func (s *AllocationService) UpdatePaymentStatus(ctx context.Context, actor domain.Account, allocationID uint, paymentStatus domain.PaymentStatus) (domain.Allocation, error) {
	if err := checkOccupancyRole(actor); err != nil {
		return domain.Allocation{}, err
	}

	updated, err := s.repo.UpdatePaymentStatus(ctx, allocationID, paymentStatus)
	if err != nil {
		return domain.Allocation{}, fmt.Errorf("s.repo.UpdatePaymentStatus -> %w", err)
	}

	return updated, nil
}

func (s *AllocationService) GetAllocation(ctx context.Context, id uint) (domain.Allocation, error) {
	allocation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Allocation{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return allocation, nil
}

func (s *AllocationService) ListAllocations(ctx context.Context, filter repository.AllocationFilter) ([]domain.Allocation, error) {
	allocations, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return allocations, nil
}
