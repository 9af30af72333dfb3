package domain

import "time"

type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "Available"
	RoomStatusFull        RoomStatus = "Full"
	RoomStatusMaintenance RoomStatus = "Maintenance"
)

const (
	MinRoomCapacity = 1
	MaxRoomCapacity = 4
)

type Room struct {
	ID              uint       `json:"id"`
	Block           string     `json:"block"`
	RoomNumber      string     `json:"room_number"`
	RoomLabel       string     `json:"room_label"`
	Floor           string     `json:"floor"`
	Capacity        int        `json:"capacity"`
	OccupiedCount   int        `json:"occupied_count"`
	RoomType        string     `json:"room_type"`
	Facilities      []string   `json:"facilities"`
	Status          RoomStatus `json:"status"`
	Description     string     `json:"description"`
	Price           int        `json:"price"`
	PricePeriod     string     `json:"price_period"`
	ImageURL        string     `json:"image_url,omitempty"`
	LastMaintenance *time.Time `json:"last_maintenance,omitempty"`
	Occupants       []Student  `json:"occupants,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// DeriveRoomStatus is the single rule for a room's status. It is a pure
// function of the stored fields, never maintained by independent writers:
// Maintenance wins outright, otherwise Full iff the room is at capacity.
func DeriveRoomStatus(capacity, occupied int, underMaintenance bool) RoomStatus {
	switch {
	case underMaintenance:
		return RoomStatusMaintenance
	case occupied >= capacity:
		return RoomStatusFull
	default:
		return RoomStatusAvailable
	}
}
