package entity

import "time"

type User struct {
	ID        int64
	Email     string
	FullName  string
	AvatarURL string
	Status    UserStatus
	UpdatedAt time.Time
}

type NewUser struct {
	ID        int64
	Email     string
	FullName  string
	AvatarURL string
	Status    UserStatus
	CreatedBy int64
	UpdatedBy int64
}

// UserLoginInfo is the credential projection consulted during login.
type UserLoginInfo struct {
	ID       int64
	Email    string
	FullName string
	Status   UserStatus
	Password string // hashed
}
