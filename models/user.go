package models

import "time"

// User is a marketplace account: an event organizer, a service provider
// or an administrator.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         string    `bson:"role" json:"role"` // "organizer", "provider", "admin"
	Location     string    `bson:"location,omitempty" json:"location,omitempty"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	JoinedAt     time.Time `bson:"joined_at" json:"joinedAt"`
}

const (
	RoleOrganizer = "organizer"
	RoleProvider  = "provider"
	RoleAdmin     = "admin"
)
