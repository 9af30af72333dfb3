package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrAllocationNotFound  = errors.New("allocation not found")
	ErrAllocationNotActive = errors.New("allocation is not active")
	ErrBedOccupied         = errors.New("bed is already occupied in this room")
	ErrBedOutOfRange       = errors.New("bed number exceeds room capacity")
)

type Allocation struct {
	ID uint `gorm:"primaryKey"`

	StudentID uint    `gorm:"not null;index"`
	Student   Student `gorm:"foreignKey:StudentID;references:AccountID"`
	RoomID    uint    `gorm:"not null;index"`
	Room      Room    `gorm:"foreignKey:RoomID"`

	BedNumber int       `gorm:"not null"`
	StartDate time.Time `gorm:"not null"`
	EndDate   *time.Time

	Status        string `gorm:"not null;default:'Active';index"`
	PaymentStatus string `gorm:"not null;default:'Pending'"`

	AllocatedByID uint

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// AllocationFilter narrows List. Zero values mean "no filter".
type AllocationFilter struct {
	RoomID    uint
	StudentID uint
	Status    string
}

type AllocationDAO struct {
	db *gorm.DB
}

func NewAllocationDAO(db *gorm.DB) *AllocationDAO {
	return &AllocationDAO{
		db: db,
	}
}

// CreateActive records a bed-level allocation. It does not touch the
// occupancy fields itself; room membership goes through assignLocked inside
// the same transaction, so the capacity and uniqueness checks and the ledger
// insert commit or roll back together.
func (d *AllocationDAO) CreateActive(ctx context.Context, allocation Allocation) (Allocation, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		room, _, txErr := assignLocked(tx, allocation.StudentID, allocation.RoomID)
		if txErr != nil {
			return txErr
		}

		if allocation.BedNumber < 1 || allocation.BedNumber > room.Capacity {
			return ErrBedOutOfRange
		}

		var taken int64
		txErr = tx.Model(&Allocation{}).
			Where("room_id = ? AND bed_number = ? AND status = ?", allocation.RoomID, allocation.BedNumber, "Active").
			Count(&taken).Error
		if txErr != nil {
			return txErr
		}
		if taken > 0 {
			return ErrBedOccupied
		}

		allocation.Status = "Active"
		if result := tx.Create(&allocation); result.Error != nil {
			// The partial unique index backs the in-transaction check.
			if isUniqueViolation(result.Error, "uniq_allocations_active_bed") {
				return ErrBedOccupied
			}

			return result.Error
		}

		return nil
	})
	if err != nil {
		return Allocation{}, err
	}

	return d.FindByID(ctx, allocation.ID)
}

// Release flips an active allocation to Completed or Cancelled and removes
// the student from the room in the same transaction.
func (d *AllocationDAO) Release(ctx context.Context, allocationID uint, status string) (Allocation, error) {
	var released Allocation

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var allocation Allocation
		txErr := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&allocation, allocationID).Error
		if txErr != nil {
			if errors.Is(txErr, gorm.ErrRecordNotFound) {
				return ErrAllocationNotFound
			}

			return txErr
		}

		if allocation.Status != "Active" {
			return ErrAllocationNotActive
		}

		if _, _, txErr = removeLocked(tx, allocation.StudentID, allocation.RoomID); txErr != nil {
			return txErr
		}

		now := time.Now()
		txErr = tx.Model(&Allocation{}).
			Where("id = ?", allocationID).
			Updates(map[string]interface{}{"status": status, "end_date": &now}).Error
		if txErr != nil {
			return txErr
		}

		allocation.Status = status
		allocation.EndDate = &now
		released = allocation

		return nil
	})
	if err != nil {
		return Allocation{}, err
	}

	return released, nil
}

func (d *AllocationDAO) UpdatePaymentStatus(ctx context.Context, allocationID uint, paymentStatus string) (Allocation, error) {
	result := d.db.WithContext(ctx).
		Model(&Allocation{}).
		Where("id = ?", allocationID).
		Update("payment_status", paymentStatus)
	if result.Error != nil {
		return Allocation{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Allocation{}, ErrAllocationNotFound
	}

	return d.FindByID(ctx, allocationID)
}

func (d *AllocationDAO) FindByID(ctx context.Context, id uint) (Allocation, error) {
	var allocation Allocation

	result := d.db.WithContext(ctx).
		Preload("Student").
		Preload("Student.Account").
		Preload("Room").
		First(&allocation, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Allocation{}, ErrAllocationNotFound
		}

		return Allocation{}, result.Error
	}

	return allocation, nil
}

func (d *AllocationDAO) List(ctx context.Context, filter AllocationFilter) ([]Allocation, error) {
	query := d.db.WithContext(ctx).
		Preload("Student").
		Preload("Student.Account").
		Preload("Room")

	if filter.RoomID != 0 {
		query = query.Where("room_id = ?", filter.RoomID)
	}
	if filter.StudentID != 0 {
		query = query.Where("student_id = ?", filter.StudentID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var allocations []Allocation
	if result := query.Order("id").Find(&allocations); result.Error != nil {
		return nil, result.Error
	}

	return allocations, nil
}
