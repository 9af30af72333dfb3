package domain

// Student is an account's student profile. The promoted ID is the account
// id; profiles are keyed 1:1 by account.
type Student struct {
	Account
	StudentID string `json:"student_id"`
	Course    string `json:"course"`
	Year      int    `json:"year"`

	// RoomID is the student's single current room, if any. It is read-only
	// outside the occupancy coordinator.
	RoomID *uint `json:"room_id,omitempty"`
	Room   *Room `json:"room,omitempty"`
}

// Assigned reports whether the student currently holds a room.
func (s Student) Assigned() bool {
	return s.RoomID != nil
}
