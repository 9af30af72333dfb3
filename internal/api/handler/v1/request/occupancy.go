package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// AssignStudentRequest serves the room-scoped assign/remove endpoints.
type AssignStudentRequest struct {
	StudentID uint `json:"student_id"`
}

func (req *AssignStudentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.StudentID, validation.Required),
	)
}

type AllocateRoomRequest struct {
	StudentID uint `json:"student_id"`
	RoomID    uint `json:"room_id"`
}

func (req *AllocateRoomRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.StudentID, validation.Required),
		validation.Field(&req.RoomID, validation.Required),
	)
}

type DeallocateRoomRequest struct {
	StudentID uint `json:"student_id"`
}

func (req *DeallocateRoomRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.StudentID, validation.Required),
	)
}

type TransferRoomRequest struct {
	StudentID  uint `json:"student_id"`
	FromRoomID uint `json:"from_room_id"`
	ToRoomID   uint `json:"to_room_id"`
}

func (req *TransferRoomRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.StudentID, validation.Required),
		validation.Field(&req.FromRoomID, validation.Required),
		validation.Field(&req.ToRoomID, validation.Required,
			validation.NotIn(req.FromRoomID).Error("target room must differ from the source room")),
	)
}
