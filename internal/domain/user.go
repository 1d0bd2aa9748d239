package domain

import (
	"fmt"
	"time"
)

type Role string

const (
	RoleStudent  Role = "student"
	RoleLandlord Role = "landlord"
	RoleAdmin    Role = "admin"
)

type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	Role           Role      `json:"role"`
	TelegramChatID *int64    `json:"telegram_chat_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type RegisterInput struct {
	Name           string
	Email          string
	Password       string
	Role           Role
	TelegramChatID *int64
}

func (i RegisterInput) Validate() error {
	if i.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if i.Email == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	if len(i.Password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", ErrValidation)
	}
	switch i.Role {
	case RoleStudent, RoleLandlord, RoleAdmin:
		return nil
	default:
		return fmt.Errorf("%w: unknown role %q", ErrValidation, i.Role)
	}
}
