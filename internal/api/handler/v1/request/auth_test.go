package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validSignupRequest() SignupRequest {
	return SignupRequest{
		Email:           "john@example.com",
		Password:        "password1",
		ConfirmPassword: "password1",
		Role:            "student",
		FirstName:       "John",
		Course:          "B.Tech",
	}
}

func TestSignupRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *SignupRequest)
		wantErr bool
	}{
		{
			name:   "valid student signup",
			mutate: func(req *SignupRequest) {},
		},
		{
			name: "valid warden signup without course",
			mutate: func(req *SignupRequest) {
				req.Role = "warden"
				req.Course = ""
			},
		},
		{
			name: "invalid email",
			mutate: func(req *SignupRequest) {
				req.Email = "not-an-email"
			},
			wantErr: true,
		},
		{
			name: "unknown role",
			mutate: func(req *SignupRequest) {
				req.Role = "superuser"
			},
			wantErr: true,
		},
		{
			name: "password too short",
			mutate: func(req *SignupRequest) {
				req.Password = "abc1"
				req.ConfirmPassword = "abc1"
			},
			wantErr: true,
		},
		{
			name: "password without a number",
			mutate: func(req *SignupRequest) {
				req.Password = "passwordonly"
				req.ConfirmPassword = "passwordonly"
			},
			wantErr: true,
		},
		{
			name: "password without a letter",
			mutate: func(req *SignupRequest) {
				req.Password = "12345678"
				req.ConfirmPassword = "12345678"
			},
			wantErr: true,
		},
		{
			name: "confirm password mismatch",
			mutate: func(req *SignupRequest) {
				req.ConfirmPassword = "password2"
			},
			wantErr: true,
		},
		{
			name: "student without course",
			mutate: func(req *SignupRequest) {
				req.Course = ""
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSignupRequest()
			tt.mutate(&req)

			err := req.Validate()

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTransferRoomRequest_Validate(t *testing.T) {
	req := TransferRoomRequest{StudentID: 7, FromRoomID: 101, ToRoomID: 102}
	assert.NoError(t, req.Validate())

	same := TransferRoomRequest{StudentID: 7, FromRoomID: 101, ToRoomID: 101}
	assert.Error(t, same.Validate())
}
