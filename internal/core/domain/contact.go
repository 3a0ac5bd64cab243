package domain

import (
	"errors"
	"time"
)

var ErrContactNotFound = errors.New("contact not found")
var ErrRateLimited = errors.New("too many submissions")

// ContactSubmission is a single contact-form entry from the public site.
// Records are created once and deleted by id; they are never updated.
type ContactSubmission struct {
	ID              string    `json:"id" bson:"id"`
	Name            string    `json:"name" bson:"name"`
	Email           string    `json:"email" bson:"email"`
	Phone           string    `json:"phone" bson:"phone"`
	ServiceInterest string    `json:"service_interest" bson:"service_interest"`
	Budget          string    `json:"budget" bson:"budget"`
	Message         string    `json:"message" bson:"message"`
	Timestamp       time.Time `json:"timestamp" bson:"timestamp"`
}
