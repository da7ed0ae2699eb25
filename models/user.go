package models

import "time"

// Role is the closed set of account roles. Writes are reserved for
// admin and teacher; student and parent accounts are read-only.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
	RoleParent  Role = "parent"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTeacher, RoleStudent, RoleParent:
		return true
	}
	return false
}

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:120;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:120;not null"`
	PasswordHash string    `json:"-" gorm:"not null"` // bcrypt hash, salt embedded
	Role         Role      `json:"role" gorm:"size:20;not null"`
	AvatarURL    *string   `json:"avatar_url"`
	IsActive     bool      `json:"is_active" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PublicUser is what auth endpoints return: the identity minus the secret.
type PublicUser struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Role      Role    `json:"role"`
	AvatarURL *string `json:"avatar_url"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		AvatarURL: u.AvatarURL,
	}
}
