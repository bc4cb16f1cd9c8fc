package domain

import (
	"strings"

	"github.com/google/uuid"
)

type RequesterProfile struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Phone     string    `json:"phone"`
}

func (p RequesterProfile) DisplayName() string {
	first := p.FirstName
	if first == "" {
		first = "User"
	}
	return strings.TrimSpace(first + " " + p.LastName)
}

func (p RequesterProfile) ContactPhone() string {
	if p.Phone == "" {
		return "Not provided"
	}
	return p.Phone
}
