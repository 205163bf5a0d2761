package models

// User defines the user model based on the 'users' table
type User struct {
	ID           int64  `json:"id" db:"id"`
	Email        string `json:"email" db:"email"`
	Nome         string `json:"nome" db:"nome"`
	Matricula    string `json:"matricula" db:"matricula"`
	Curso        string `json:"curso" db:"curso"`
	PasswordHash string `json:"-" db:"senha"` // bcrypt hash, excluded from JSON
	IsAdmin      bool   `json:"is_admin" db:"is_admin"`
}

// UserInfo is the public profile shape returned by the user endpoints
type UserInfo struct {
	Email     string `json:"email"`
	Nome      string `json:"nome"`
	Matricula string `json:"matricula"`
	Curso     string `json:"curso"`
}
