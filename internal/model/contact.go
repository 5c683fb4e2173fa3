// Package model defines data structures used throughout the application.
package model

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"
)

// Validation errors for Contact.
var (
	ErrEmptyName          = errors.New("name cannot be empty")
	ErrEmptySurname       = errors.New("surname cannot be empty")
	ErrPhoneParts         = errors.New("phone number must have 4 dash-separated parts")
	ErrPhonePrefix        = errors.New("phone number prefix is not allowed")
	ErrPhoneNotNumeric    = errors.New("phone number parts must contain only digits")
	ErrUnknownSearchField = errors.New("unknown search field")
)

// PhoneParts is the number of dash-separated groups in a phone number.
const PhoneParts = 4

// PhonePrefixes lists the accepted operator prefixes for the first phone group.
var PhonePrefixes = []string{"55", "50", "51", "70", "77", "99", "10", "40", "60"}

// Contact represents a single entry in the contact book.
type Contact struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Phone   string `json:"phone"`
}

// Validate checks if the Contact has valid field values.
func (c *Contact) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}

	if strings.TrimSpace(c.Surname) == "" {
		return ErrEmptySurname
	}

	return ValidatePhone(c.Phone)
}

// String formats the contact the way it is shown in listings.
func (c Contact) String() string {
	return fmt.Sprintf("%d. %s %s - %s", c.ID, c.Name, c.Surname, c.Phone)
}

// ValidatePhone checks that number consists of exactly four dash-separated
// groups of digits whose first group is a known prefix. Group lengths are
// not checked, so "55-1-2-3" is accepted.
func ValidatePhone(number string) error {
	parts := strings.Split(number, "-")
	if len(parts) != PhoneParts {
		return ErrPhoneParts
	}

	if !slices.Contains(PhonePrefixes, parts[0]) {
		return ErrPhonePrefix
	}

	for _, part := range parts {
		if !isAllDigits(part) {
			return ErrPhoneNotNumeric
		}
	}

	return nil
}

// isAllDigits reports whether s holds only Unicode decimal digits.
// The empty string qualifies.
func isAllDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// SearchField selects which contact field a search compares against.
type SearchField int

// Search fields, numbered as they appear in the search menu.
const (
	FieldName SearchField = iota + 1
	FieldSurname
	FieldPhone
)

// ParseSearchField maps a search menu choice to a SearchField.
func ParseSearchField(choice int) (SearchField, error) {
	f := SearchField(choice)
	if !f.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnknownSearchField, choice)
	}
	return f, nil
}

// Valid reports whether f is one of the known fields.
func (f SearchField) Valid() bool {
	return f >= FieldName && f <= FieldPhone
}

// String returns the human-readable field name used in prompts.
func (f SearchField) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldSurname:
		return "surname"
	case FieldPhone:
		return "phone number"
	default:
		return fmt.Sprintf("SearchField(%d)", int(f))
	}
}

// Matches reports whether c matches term on field f. Name and surname are
// compared case-insensitively, phone numbers exactly.
func (f SearchField) Matches(c Contact, term string) bool {
	switch f {
	case FieldName:
		return strings.EqualFold(c.Name, term)
	case FieldSurname:
		return strings.EqualFold(c.Surname, term)
	case FieldPhone:
		return c.Phone == term
	default:
		return false
	}
}
