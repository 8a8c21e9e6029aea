package dto

// SignupRequest is the payload for POST /signup.
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest is the payload for POST /user-login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SuccessResponse is the body of auth endpoints on success.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// SessionResponse reports the session state for GET /api/session.
type SessionResponse struct {
	LoggedIn  bool   `json:"logged_in"`
	AccountID uint64 `json:"account_id,omitempty"`
}

// ProfileResponse carries the profile fields; never the password hash.
type ProfileResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
