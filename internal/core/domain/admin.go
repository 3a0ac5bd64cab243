package domain

import (
	"errors"
	"time"
)

var ErrAdminExists = errors.New("admin already exists")
var ErrAdminNotFound = errors.New("admin not found")
var ErrInvalidCredentials = errors.New("invalid email or password")

// Admin models an authenticated back-office user.
type Admin struct {
	ID           string    `json:"id" bson:"id"`
	Email        string    `json:"email" bson:"email"`
	Name         string    `json:"name" bson:"name"`
	PasswordHash string    `json:"-" bson:"password"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}
