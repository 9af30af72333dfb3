package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/rahulpatel51/Hostel-Backend/internal/domain"
)

type CreateAllocationRequest struct {
	StudentID     uint       `json:"student_id"`
	RoomID        uint       `json:"room_id"`
	BedNumber     int        `json:"bed_number"`
	StartDate     *time.Time `json:"start_date,omitempty"`
	PaymentStatus string     `json:"payment_status,omitempty"`
}

func (req *CreateAllocationRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.StudentID, validation.Required),
		validation.Field(&req.RoomID, validation.Required),
		validation.Field(&req.BedNumber, validation.Required,
			validation.Min(1), validation.Max(domain.MaxRoomCapacity)),
		validation.Field(&req.PaymentStatus, validation.In(
			string(domain.PaymentPaid), string(domain.PaymentPartial), string(domain.PaymentPending),
		)),
	)
}

type ReleaseAllocationRequest struct {
	Status string `json:"status"`
}

func (req *ReleaseAllocationRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Status, validation.Required, validation.In(
			string(domain.AllocationCompleted), string(domain.AllocationCancelled),
		)),
	)
}

type UpdatePaymentRequest struct {
	PaymentStatus string `json:"payment_status"`
}

func (req *UpdatePaymentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.PaymentStatus, validation.Required, validation.In(
			string(domain.PaymentPaid), string(domain.PaymentPartial), string(domain.PaymentPending),
		)),
	)
}
