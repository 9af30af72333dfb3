package domain

import "time"

type AllocationStatus string

const (
	AllocationActive    AllocationStatus = "Active"
	AllocationCompleted AllocationStatus = "Completed"
	AllocationCancelled AllocationStatus = "Cancelled"
)

type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "Paid"
	PaymentPartial PaymentStatus = "Partial"
	PaymentPending PaymentStatus = "Pending"
)

// Allocation is a bed-level ledger entry. It records which bed a student
// holds and how it was paid for; room membership itself is owned by the
// occupancy coordinator, never by this record.
type Allocation struct {
	ID            uint             `json:"id"`
	StudentID     uint             `json:"student_id"`
	Student       *Student         `json:"student,omitempty"`
	RoomID        uint             `json:"room_id"`
	Room          *Room            `json:"room,omitempty"`
	BedNumber     int              `json:"bed_number"`
	StartDate     time.Time        `json:"start_date"`
	EndDate       *time.Time       `json:"end_date,omitempty"`
	Status        AllocationStatus `json:"status"`
	PaymentStatus PaymentStatus    `json:"payment_status"`
	AllocatedByID uint             `json:"allocated_by_id"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}
