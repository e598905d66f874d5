package controllers

import (
	"log/slog"
	"net/http"

	"gothamai/internal/delivery/http/helpers"
	"gothamai/internal/delivery/http/middleware"
	"gothamai/internal/domain"
	"gothamai/internal/validation"
)

// ContactSubmittedMessage confirms a stored submission.
const ContactSubmittedMessage = "Thank you for contacting us! We will get back to you soon."

// ContactSummary is the part of a stored contact echoed back to the submitter.
type ContactSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SubmitContactResponse is the response body for POST /api/contact (201).
type SubmitContactResponse struct {
	Success bool           `json:"success" example:"true"`
	Message string         `json:"message"`
	Data    ContactSummary `json:"data"`
}

// ContactListResponse is the paginated response body for GET /api/contact.
type ContactListResponse struct {
	Success    bool                   `json:"success" example:"true"`
	Count      int                    `json:"count"`
	Data       []*domain.Contact      `json:"data"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

type ContactController struct {
	Logger  *slog.Logger
	Service domain.ContactService
	Errors  helpers.ErrorWriter
}

func NewContactController(logger *slog.Logger, svc domain.ContactService, errs helpers.ErrorWriter) *ContactController {
	return &ContactController{
		Logger:  logger,
		Service: svc,
		Errors:  errs,
	}
}

// SubmitContact godoc
// @Summary Submit the contact form
// @Description Stores the inquiry and emails a confirmation to the submitter and an alert to the club. Limited to 3 submissions per 15 minutes per client address.
// @Tags contact
// @Accept json
// @Produce json
// @Param contact body validation.ContactInput true "Contact form"
// @Success 201 {object} controllers.SubmitContactResponse
// @Failure 400 {object} helpers.ErrorResponse "all violated rules, joined by \", \""
// @Failure 429 {object} helpers.ErrorResponse "quota used up"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/contact [post]
func (c *ContactController) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var in validation.ContactInput
	if err := helpers.DecodeJSON(w, r, &in); err != nil {
		c.Errors.Write(w, r, err)
		return
	}
	sub, err := validation.Contact(in)
	if err != nil {
		c.Errors.Write(w, r, err)
		return
	}
	contact, err := c.Service.Submit(r.Context(), sub, middleware.ClientIP(r))
	if err != nil {
		c.Errors.Write(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, SubmitContactResponse{
		Success: true,
		Message: ContactSubmittedMessage,
		Data:    ContactSummary{ID: contact.ID, Name: contact.Name, Email: contact.Email},
	})
}

// ListContacts godoc
// @Summary List contact submissions
// @Description Newest first.
// @Tags contact
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending, read, replied or archived"
// @Param page query int false "Page number (1-based)" default(1)
// @Param limit query int false "Items per page (1-100)" default(10)
// @Success 200 {object} controllers.ContactListResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/contact [get]
func (c *ContactController) ListContacts(w http.ResponseWriter, r *http.Request) {
	q := helpers.ContactQuery(r)
	contacts, total, err := c.Service.List(r.Context(), q)
	if err != nil {
		c.Errors.Write(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, ContactListResponse{
		Success:    true,
		Count:      len(contacts),
		Data:       contacts,
		Pagination: helpers.NewPaginationMeta(q.Pagination, total),
	})
}
