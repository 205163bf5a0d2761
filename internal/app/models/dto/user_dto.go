package dto

// LoginRequest is the credential payload for POST /api/user
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest is the payload for POST /api/user/register
type RegisterRequest struct {
	Email     string `json:"email" binding:"required"`
	Nome      string `json:"nome" binding:"required"`
	Matricula string `json:"matricula" binding:"required"`
	Curso     string `json:"curso" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

// UpdateUserRequest is the payload for PUT /api/user/:id
type UpdateUserRequest struct {
	Email     string `json:"email" binding:"required"`
	Nome      string `json:"nome" binding:"required"`
	Matricula string `json:"matricula" binding:"required"`
	Curso     string `json:"curso" binding:"required"`
}

// PasswordUpdateRequest is the payload for PUT /api/user/:id/password
type PasswordUpdateRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

// AuthResponse identifies the logged-in or freshly registered user.
// Token is additive over the original contract; user_id and is_admin
// keep their wire names.
type AuthResponse struct {
	UserID  int64  `json:"user_id"`
	IsAdmin bool   `json:"is_admin"`
	Token   string `json:"token,omitempty"`
}
