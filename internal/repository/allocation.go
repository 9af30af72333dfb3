package repository

import (
	"context"
	"fmt"

	"github.com/rahulpatel51/Hostel-Backend/internal/domain"
	"github.com/rahulpatel51/Hostel-Backend/internal/repository/dao"
)

var (
	ErrAllocationNotFound  = dao.ErrAllocationNotFound
	ErrAllocationNotActive = dao.ErrAllocationNotActive
	ErrBedOccupied         = dao.ErrBedOccupied
	ErrBedOutOfRange       = dao.ErrBedOutOfRange
)

// AllocationFilter mirrors dao.AllocationFilter at the domain boundary.
type AllocationFilter struct {
	RoomID    uint
	StudentID uint
	Status    string
}

type AllocationDAO interface {
	CreateActive(ctx context.Context, allocation dao.Allocation) (dao.Allocation, error)
	Release(ctx context.Context, allocationID uint, status string) (dao.Allocation, error)
	UpdatePaymentStatus(ctx context.Context, allocationID uint, paymentStatus string) (dao.Allocation, error)
	FindByID(ctx context.Context, id uint) (dao.Allocation, error)
	List(ctx context.Context, filter dao.AllocationFilter) ([]dao.Allocation, error)
}

type AllocationRepository struct {
	dao AllocationDAO
}

func NewAllocationRepository(dao AllocationDAO) *AllocationRepository {
	return &AllocationRepository{
		dao: dao,
	}
}

func (r *AllocationRepository) CreateActive(ctx context.Context, allocation domain.Allocation) (domain.Allocation, error) {
	created, err := r.dao.CreateActive(ctx, dao.Allocation{
		StudentID:     allocation.StudentID,
		RoomID:        allocation.RoomID,
		BedNumber:     allocation.BedNumber,
		StartDate:     allocation.StartDate,
		PaymentStatus: string(allocation.PaymentStatus),
		AllocatedByID: allocation.AllocatedByID,
	})
	if err != nil {
		return domain.Allocation{}, fmt.Errorf("r.dao.CreateActive -> %w", err)
	}

	return allocationDaoToDomain(created), nil
}

func (r *AllocationRepository) Release(ctx context.Context, allocationID uint, status domain.AllocationStatus) (domain.Allocation, error) {
	released, err := r.dao.Release(ctx, allocationID, string(status))
	if err != nil {
		return domain.Allocation{}, fmt.Errorf("r.dao.Release -> %w", err)
	}

	return allocationDaoToDomain(released), nil
}

func (r *AllocationRepository) UpdatePaymentStatus(ctx context.Context, allocationID uint, paymentStatus domain.PaymentStatus) (domain.Allocation, error) {
	updated, err := r.dao.UpdatePaymentStatus(ctx, allocationID, string(paymentStatus))
	if err != nil {
		return domain.Allocation{}, fmt.Errorf("r.dao.UpdatePaymentStatus -> %w", err)
	}

	return allocationDaoToDomain(updated), nil
}

func (r *AllocationRepository) FindByID(ctx context.Context, id uint) (domain.Allocation, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Allocation{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return allocationDaoToDomain(found), nil
}

func (r *AllocationRepository) List(ctx context.Context, filter AllocationFilter) ([]domain.Allocation, error) {
	allocations, err := r.dao.List(ctx, dao.AllocationFilter{
		RoomID:    filter.RoomID,
		StudentID: filter.StudentID,
		Status:    filter.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("r.dao.List -> %w", err)
	}

	converted := make([]domain.Allocation, 0, len(allocations))
	for _, a := range allocations {
		converted = append(converted, allocationDaoToDomain(a))
	}

	return converted, nil
}
