package domain

import "time"

const (
	RoleAdmin   = "admin"
	RoleWarden  = "warden"
	RoleStudent = "student"
	RoleStaff   = "staff"
)

type Account struct {
	ID             uint       `json:"id"`
	Email          string     `json:"email"`
	Password       string     `json:"-"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	Phone          string     `json:"phone"`
	Role           string     `json:"role"`
	ProfilePicture string     `json:"profile_picture"`
	IsActive       bool       `json:"is_active"`
	LastLogin      *time.Time `json:"last_login,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (a Account) FullName() string {
	if a.LastName == "" {
		return a.FirstName
	}

	return a.FirstName + " " + a.LastName
}
