package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Person represents a single person record
type Person struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Age       *int      `json:"age,omitempty"`
	ImageURL  *string   `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewPerson creates a new Person with a generated UUID
func NewPerson(name, email string, age *int) *Person {
	return &Person{
		ID:    uuid.New().String(),
		Name:  name,
		Email: email,
		Age:   age,
	}
}

// Common errors
var (
	ErrNotFound       = errors.New("person not found")
	ErrDuplicateEmail = errors.New("email already in use")
)

// ValidationError describes a required field that was not supplied
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
