package handler

import "time"

type registerRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Location string `json:"location"`
}

type loginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// identityResponse is the public view of an account. It has no password field.
type identityResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email,omitempty"`
	Role       string    `json:"role"`
	Location   string    `json:"location"`
	IsVerified bool      `json:"isVerified"`
	CreatedAt  time.Time `json:"createdAt"`
	LastLogin  time.Time `json:"lastLogin"`
}

type authResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Token   string           `json:"token"`
	User    identityResponse `json:"user"`
}

type meResponse struct {
	Success bool             `json:"success"`
	User    identityResponse `json:"user"`
}
