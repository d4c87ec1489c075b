package contracts

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	minUsernameLength = 3
	maxUsernameLength = 30
)

// UserContact is the external identity a subscription is attached to.
// Identity is defined solely by the (userID, username) pair; the profile
// fields are informational and do not participate in equality.
type UserContact struct {
	userID    string
	username  string
	firstName string
	lastName  string
	email     string
	phone     string
}

// UserID returns the opaque external user key.
func (c UserContact) UserID() string { return c.userID }

// Username returns the display username.
func (c UserContact) Username() string { return c.username }

// FirstName returns the optional first name.
func (c UserContact) FirstName() (string, bool) { return c.firstName, c.firstName != "" }

// LastName returns the optional last name.
func (c UserContact) LastName() (string, bool) { return c.lastName, c.lastName != "" }

// Email returns the optional email address.
func (c UserContact) Email() (string, bool) { return c.email, c.email != "" }

// Phone returns the optional phone number.
func (c UserContact) Phone() (string, bool) { return c.phone, c.phone != "" }

// Equal reports whether both contacts identify the same user. Profile
// fields are ignored.
func (c UserContact) Equal(other UserContact) bool {
	return c.userID == other.userID && c.username == other.username
}

// isZero reports whether the contact was never constructed.
func (c UserContact) isZero() bool { return c.userID == "" && c.username == "" }

// UserContactBuilder assembles a UserContact. Optional profile fields chain;
// Build validates the identity pair.
type UserContactBuilder struct {
	contact UserContact
}

// NewUserContact starts building a contact for the given external user id
// and username.
func NewUserContact(userID, username string) *UserContactBuilder {
	return &UserContactBuilder{contact: UserContact{userID: userID, username: username}}
}

// FirstName sets the optional first name.
func (b *UserContactBuilder) FirstName(name string) *UserContactBuilder {
	b.contact.firstName = name
	return b
}

// LastName sets the optional last name.
func (b *UserContactBuilder) LastName(name string) *UserContactBuilder {
	b.contact.lastName = name
	return b
}

// Email sets the optional email address.
func (b *UserContactBuilder) Email(email string) *UserContactBuilder {
	b.contact.email = email
	return b
}

// Phone sets the optional phone number.
func (b *UserContactBuilder) Phone(phone string) *UserContactBuilder {
	b.contact.phone = phone
	return b
}

// Build finalizes the contact. It fails with ErrMissingUserID when the user
// id is empty and with ErrInvalidUsername when the username is blank or its
// length falls outside [3, 30] characters.
func (b *UserContactBuilder) Build() (UserContact, error) {
	if strings.TrimSpace(b.contact.userID) == "" {
		return UserContact{}, ErrMissingUserID
	}
	if strings.TrimSpace(b.contact.username) == "" {
		return UserContact{}, fmt.Errorf("%w: username is blank", ErrInvalidUsername)
	}
	if n := utf8.RuneCountInString(b.contact.username); n < minUsernameLength || n > maxUsernameLength {
		return UserContact{}, fmt.Errorf("%w: %q has %d", ErrInvalidUsername, b.contact.username, n)
	}
	return b.contact, nil
}
