package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gothamai/internal/domain"
)

func validContact() ContactInput {
	return ContactInput{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Subject: "Membership",
		Message: "I would like to join the club.",
	}
}

func TestContact_NormalizesValidInput(t *testing.T) {
	in := validContact()
	in.Name = "  Ada Lovelace  "
	in.Email = "  Ada.Lovelace@Example.COM "
	in.Phone = " (555) 123-4567 "

	sub, err := Contact(in)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", sub.Name)
	assert.Equal(t, "ada.lovelace@example.com", sub.Email)
	assert.Equal(t, "(555) 123-4567", sub.Phone)
}

func TestContact_Rules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ContactInput)
		wantMsg string
	}{
		{"name too short", func(c *ContactInput) { c.Name = "A" }, "Name must be at least 2 characters"},
		{"name only spaces", func(c *ContactInput) { c.Name = "   A   " }, "Name must be at least 2 characters"},
		{"name too long", func(c *ContactInput) { c.Name = strings.Repeat("a", 101) }, "Name cannot exceed 100 characters"},
		{"invalid email", func(c *ContactInput) { c.Email = "not-an-email" }, "Please provide a valid email address"},
		{"missing email", func(c *ContactInput) { c.Email = "" }, "Please provide a valid email address"},
		{"subject too short", func(c *ContactInput) { c.Subject = "Hi" }, "Subject must be at least 3 characters"},
		{"subject too long", func(c *ContactInput) { c.Subject = strings.Repeat("s", 201) }, "Subject cannot exceed 200 characters"},
		{"message of nine characters", func(c *ContactInput) { c.Message = "123456789" }, "Message must be at least 10 characters"},
		{"message too long", func(c *ContactInput) { c.Message = strings.Repeat("m", 2001) }, "Message cannot exceed 2000 characters"},
		{"bad phone", func(c *ContactInput) { c.Phone = "12-34" }, "Please provide a valid phone number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validContact()
			tt.mutate(&in)
			_, err := Contact(in)
			require.Error(t, err)
			require.True(t, errors.Is(err, domain.ErrValidation))
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestContact_AggregatesMessages(t *testing.T) {
	_, err := Contact(ContactInput{Name: "A", Email: "x", Subject: "ok subject", Message: "short"})
	require.Error(t, err)
	assert.Equal(t,
		"Name must be at least 2 characters, Please provide a valid email address, Message must be at least 10 characters",
		err.Error())
}

func TestContact_PhoneShapes(t *testing.T) {
	valid := []string{"", "5551234567", "+555 123 4567", "(555) 123-4567", "555.123.456789", "555-123-4567"}
	for _, p := range valid {
		in := validContact()
		in.Phone = p
		_, err := Contact(in)
		assert.NoError(t, err, "phone %q", p)
	}
	invalid := []string{"abc", "55-123-4567", "555-123-456", "555-123-4567890", "++5551234567"}
	for _, p := range invalid {
		in := validContact()
		in.Phone = p
		_, err := Contact(in)
		assert.Error(t, err, "phone %q", p)
	}
}
