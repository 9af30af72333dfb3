package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type UpdateStudentRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Course    string `json:"course"`
	Year      int    `json:"year"`
}

func (req *UpdateStudentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.FirstName, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.LastName, validation.Length(0, 50)),
		validation.Field(&req.Course, validation.Required),
		validation.Field(&req.Year, validation.Min(0), validation.Max(8)),
	)
}
