package domain

import (
	"context"
	"time"
)

// ContactStatus is the triage state of a contact inquiry.
type ContactStatus string

const (
	ContactStatusPending  ContactStatus = "pending"
	ContactStatusRead     ContactStatus = "read"
	ContactStatusReplied  ContactStatus = "replied"
	ContactStatusArchived ContactStatus = "archived"
)

// Contact is a submitted inquiry from the public contact form.
// swagger:model Contact
type Contact struct {
	ID        string        `json:"_id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Subject   string        `json:"subject"`
	Message   string        `json:"message"`
	Phone     string        `json:"phone,omitempty"`
	IPAddress string        `json:"ipAddress,omitempty"`
	Status    ContactStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// ContactSubmission is the normalized contact form input.
type ContactSubmission struct {
	Name    string
	Email   string
	Subject string
	Message string
	Phone   string
}

// NewContact builds a pending Contact from a normalized submission.
func NewContact(sub ContactSubmission, ipAddress string, now time.Time) *Contact {
	return &Contact{
		Name:      sub.Name,
		Email:     sub.Email,
		Subject:   sub.Subject,
		Message:   sub.Message,
		Phone:     sub.Phone,
		IPAddress: ipAddress,
		Status:    ContactStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ContactQuery selects contacts for the administrative listing.
type ContactQuery struct {
	Status     string
	Sort       []SortField
	Pagination PaginationParams
}

// ContactRepository defines storage for contacts.
type ContactRepository interface {
	Create(ctx context.Context, c *Contact) error
	List(ctx context.Context, q ContactQuery) ([]*Contact, int, error)
}

// ContactService defines contact form submission and listing.
type ContactService interface {
	Submit(ctx context.Context, sub ContactSubmission, ipAddress string) (*Contact, error)
	List(ctx context.Context, q ContactQuery) ([]*Contact, int, error)
}
