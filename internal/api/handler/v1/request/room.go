package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/rahulpatel51/Hostel-Backend/internal/domain"
)

type CreateRoomRequest struct {
	Block       string   `json:"block"`
	RoomNumber  string   `json:"room_number"`
	Floor       string   `json:"floor"`
	Capacity    int      `json:"capacity"`
	RoomType    string   `json:"room_type"`
	Facilities  []string `json:"facilities,omitempty"`
	Description string   `json:"description"`
	Price       int      `json:"price"`
	PricePeriod string   `json:"price_period,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
}

func (req *CreateRoomRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Block, validation.Required, validation.In("A", "B", "C", "D")),
		validation.Field(&req.RoomNumber, validation.Required),
		validation.Field(&req.Capacity, validation.Required,
			validation.Min(domain.MinRoomCapacity), validation.Max(domain.MaxRoomCapacity)),
		validation.Field(&req.Description, validation.Required),
		validation.Field(&req.Price, validation.Min(0)),
		validation.Field(&req.PricePeriod, validation.In("month", "semester", "year")),
	)
}

type UpdateRoomRequest struct {
	Floor       string   `json:"floor,omitempty"`
	Capacity    int      `json:"capacity"`
	RoomType    string   `json:"room_type,omitempty"`
	Facilities  []string `json:"facilities,omitempty"`
	Description string   `json:"description,omitempty"`
	Price       int      `json:"price"`
	PricePeriod string   `json:"price_period,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`

	// Status accepts Available or Maintenance. Full is derived from
	// occupancy and cannot be set directly.
	Status string `json:"status,omitempty"`
}

func (req *UpdateRoomRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Capacity, validation.Required,
			validation.Min(domain.MinRoomCapacity), validation.Max(domain.MaxRoomCapacity)),
		validation.Field(&req.Price, validation.Min(0)),
		validation.Field(&req.PricePeriod, validation.In("month", "semester", "year")),
		validation.Field(&req.Status, validation.In(
			string(domain.RoomStatusAvailable), string(domain.RoomStatusMaintenance),
		)),
	)
}
