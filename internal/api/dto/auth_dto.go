package dto

import "time"

// StaffLoginRequest payload for staff login. Login accepts username or email.
type StaffLoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// CustomerRegisterRequest payload for new storefront accounts.
type CustomerRegisterRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CustomerLoginRequest payload for customer login.
type CustomerLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
