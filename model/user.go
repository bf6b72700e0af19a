package model

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	Id           uint32 `storm:"id,increment"`
	Username     string `storm:"unique"`
	Email        string `storm:"unique"`
	PasswordHash string
	FullName     string
	Role         string
	IsActive     bool
	LastLogin    time.Time
	CreatedAt    time.Time `storm:"index"`
	UpdatedAt    time.Time
}

// RefreshToken stores only a hash of the opaque token handed to the client.
type RefreshToken struct {
	Id        uint32 `storm:"id,increment"`
	UserId    uint32 `storm:"index"`
	TokenHash string `storm:"unique"`
	ExpiresAt time.Time
	Revoked   bool
	CreatedAt time.Time `storm:"index"`
}
