package validation

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"gothamai/internal/domain"
)

// ContactInput is the raw contact form body.
type ContactInput struct {
	Name    string `json:"name" validate:"min=2,max=100"`
	Email   string `json:"email" validate:"email"`
	Subject string `json:"subject" validate:"min=3,max=200"`
	Message string `json:"message" validate:"min=10,max=2000"`
	Phone   string `json:"phone,omitempty" validate:"omitempty,phone"`
}

var contactMessages = map[string]string{
	"name.min":    "Name must be at least 2 characters",
	"name.max":    "Name cannot exceed 100 characters",
	"email.email": "Please provide a valid email address",
	"subject.min": "Subject must be at least 3 characters",
	"subject.max": "Subject cannot exceed 200 characters",
	"message.min": "Message must be at least 10 characters",
	"message.max": "Message cannot exceed 2000 characters",
	"phone.phone": "Please provide a valid phone number",
}

// Normalize trims every field and lowercases the email.
func (in ContactInput) Normalize() ContactInput {
	return ContactInput{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.ToLower(strings.TrimSpace(in.Email)),
		Subject: strings.TrimSpace(in.Subject),
		Message: strings.TrimSpace(in.Message),
		Phone:   strings.TrimSpace(in.Phone),
	}
}

// Contact normalizes the input and checks it. On failure it returns a
// *domain.ValidationError listing every violated rule in field order.
func Contact(in ContactInput) (domain.ContactSubmission, error) {
	n := in.Normalize()
	if err := validate.Struct(n); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return domain.ContactSubmission{}, err
		}
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msg, ok := contactMessages[fe.Field()+"."+fe.Tag()]
			if !ok {
				msg = fieldMessage(fe)
			}
			msgs = append(msgs, msg)
		}
		return domain.ContactSubmission{}, domain.NewValidationError(msgs...)
	}
	return domain.ContactSubmission{
		Name:    n.Name,
		Email:   n.Email,
		Subject: n.Subject,
		Message: n.Message,
		Phone:   n.Phone,
	}, nil
}
