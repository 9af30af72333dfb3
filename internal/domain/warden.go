package domain

// Warden is an account's warden profile, keyed 1:1 by account.
type Warden struct {
	Account
	StaffID       string `json:"staff_id"`
	AssignedBlock string `json:"assigned_block"`
}
