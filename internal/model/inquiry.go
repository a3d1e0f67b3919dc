package model

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Scope is the kind of work an inquiry is about.
type Scope string

const (
	ScopeResidential  Scope = "Residential"
	ScopeInterior     Scope = "Interior"
	ScopeConsultation Scope = "Consultation"
)

// Scopes lists the choices offered on the contact form.
var Scopes = []Scope{ScopeResidential, ScopeInterior, ScopeConsultation}

// Inquiry is a contact form submission.
type Inquiry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Scope     Scope     `json:"scope,omitempty"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Validation errors returned by Inquiry.Validate.
var (
	ErrNameRequired  = errors.New("name is required")
	ErrEmailRequired = errors.New("email is required")
)

// NewInquiry builds an inquiry with a fresh ID and timestamp. Fields are
// trimmed; call Validate before submitting.
func NewInquiry(name, email string, scope Scope, message string) Inquiry {
	return Inquiry{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(name),
		Email:     strings.TrimSpace(email),
		Scope:     scope,
		Message:   strings.TrimSpace(message),
		CreatedAt: time.Now().UTC(),
	}
}

// Validate checks the fields the contact form marks as required.
func (q Inquiry) Validate() error {
	if strings.TrimSpace(q.Name) == "" {
		return ErrNameRequired
	}
	email := strings.TrimSpace(q.Email)
	if email == "" {
		return ErrEmailRequired
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || !strings.Contains(email[strings.LastIndex(email, "@")+1:], ".") {
		return fmt.Errorf("invalid email address %q", email)
	}
	if q.Scope != "" {
		known := false
		for _, s := range Scopes {
			if q.Scope == s {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("unknown project scope %q", q.Scope)
		}
	}
	return nil
}
