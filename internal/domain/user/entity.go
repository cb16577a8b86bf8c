package user

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidEmail = errors.New("user email is invalid")

type User struct {
	id    uuid.UUID
	name  string
	email string
}

func NewUser(name, email string) (*User, error) {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}
	return &User{
		id:    uuid.New(),
		name:  name,
		email: email,
	}, nil
}

func ReconstructUser(id uuid.UUID, name, email string) *User {
	return &User{id: id, name: name, email: email}
}

// Patch applies a partial update; nil fields keep their current value.
// Email uniqueness is the caller's concern, format is validated here.
func (u *User) Patch(name, email *string) error {
	if email != nil {
		e := strings.TrimSpace(*email)
		if e == "" || !strings.Contains(e, "@") {
			return ErrInvalidEmail
		}
		u.email = e
	}
	if name != nil {
		u.name = *name
	}
	return nil
}

func (u *User) ID() uuid.UUID { return u.id }
func (u *User) Name() string  { return u.name }
func (u *User) Email() string { return u.email }
