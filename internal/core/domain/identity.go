package domain

import "time"

const (
	RoleEmployer = "employer"
	RoleEmployee = "employee"
)

// ValidRole reports whether role is one of the two account roles.
func ValidRole(role string) bool {
	return role == RoleEmployer || role == RoleEmployee
}

// Identity models a registered account.
type Identity struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Location     string    `json:"location"`
	IsVerified   bool      `json:"isVerified"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	LastLogin    time.Time `json:"lastLogin"`
}
