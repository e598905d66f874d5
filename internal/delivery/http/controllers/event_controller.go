package controllers

import (
	"log/slog"
	"net/http"
	"time"

	"gothamai/internal/delivery/http/helpers"
	"gothamai/internal/domain"
)

// EventRequest is the request body for POST /api/events and PUT /api/events/{id}.
// _id, createdAt and updatedAt are accepted so a fetched event can be sent
// back unchanged; they are ignored.
type EventRequest struct {
	Title            string           `json:"title" example:"AI Tech Session"`
	Slug             string           `json:"slug" example:"ai-tech-session"`
	Description      string           `json:"description"`
	Content          string           `json:"content"`
	Date             *time.Time       `json:"date,omitempty"`
	DateDisplay      string           `json:"dateDisplay" example:"October 11, 2025"`
	Time             string           `json:"time" example:"6:00 PM - 9:00 PM"`
	Location         string           `json:"location"`
	Image            string           `json:"image"`
	Gallery          []string         `json:"gallery"`
	Attendees        int              `json:"attendees"`
	Category         string           `json:"category" enums:"Technology,Gaming,Networking,Workshop,Seminar,Other"`
	Speakers         []domain.Speaker `json:"speakers"`
	RegistrationLink string           `json:"registrationLink"`
	Tags             []string         `json:"tags"`
	// Published defaults to true.
	Published *bool `json:"published"`

	ID        string     `json:"_id" swaggerignore:"true"`
	CreatedAt *time.Time `json:"createdAt" swaggerignore:"true"`
	UpdatedAt *time.Time `json:"updatedAt" swaggerignore:"true"`
}

func (req EventRequest) toDomain() *domain.Event {
	published := true
	if req.Published != nil {
		published = *req.Published
	}
	return &domain.Event{
		Title:            req.Title,
		Slug:             req.Slug,
		Description:      req.Description,
		Content:          req.Content,
		Date:             req.Date,
		DateDisplay:      req.DateDisplay,
		Time:             req.Time,
		Location:         req.Location,
		Image:            req.Image,
		Gallery:          req.Gallery,
		Attendees:        req.Attendees,
		Category:         req.Category,
		Speakers:         req.Speakers,
		RegistrationLink: req.RegistrationLink,
		Tags:             req.Tags,
		Published:        published,
	}
}

// EventListResponse is the response body for GET /api/events.
type EventListResponse struct {
	Success bool            `json:"success" example:"true"`
	Count   int             `json:"count"`
	Data    []*domain.Event `json:"data"`
}

// EventResponse wraps a single event.
type EventResponse struct {
	Success bool          `json:"success" example:"true"`
	Data    *domain.Event `json:"data"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
	Errors  helpers.ErrorWriter
}

func NewEventController(logger *slog.Logger, svc domain.EventService, errs helpers.ErrorWriter) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
		Errors:  errs,
	}
}

// ListEvents godoc
// @Summary List events
// @Description Published events by default, newest date first. status is derived from the event date.
// @Tags events
// @Produce json
// @Param status query string false "upcoming or past"
// @Param category query string false "Event category"
// @Param published query bool false "Defaults to true"
// @Success 200 {object} controllers.EventListResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.List(r.Context(), helpers.EventQuery(r))
	if err != nil {
		c.Errors.Write(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, EventListResponse{Success: true, Count: len(events), Data: events})
}

// GetEvent godoc
// @Summary Get a published event by slug
// @Tags events
// @Produce json
// @Param slug path string true "Event slug"
// @Success 200 {object} controllers.EventResponse
// @Failure 404 {object} helpers.ErrorResponse "Event not found"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events/{slug} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := c.Service.GetBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		c.Errors.Write(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, EventResponse{Success: true, Data: event})
}

// CreateEvent godoc
// @Summary Create an event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body EventRequest true "Event"
// @Success 201 {object} controllers.EventResponse
// @Failure 400 {object} helpers.ErrorResponse "validation failed"
// @Failure 409 {object} helpers.ErrorResponse "slug already in use"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if err := helpers.DecodeJSON(w, r, &req); err != nil {
		c.Errors.Write(w, r, err)
		return
	}
	event := req.toDomain()
	if err := c.Service.Create(r.Context(), event); err != nil {
		c.Errors.Write(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, EventResponse{Success: true, Data: event})
}

// UpdateEvent godoc
// @Summary Replace an event
// @Description Every field is replaced and validated as on create.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param event body EventRequest true "Event"
// @Success 200 {object} controllers.EventResponse
// @Failure 400 {object} helpers.ErrorResponse "validation failed"
// @Failure 404 {object} helpers.ErrorResponse "Event not found"
// @Failure 409 {object} helpers.ErrorResponse "slug already in use"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events/{id} [put]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if err := helpers.DecodeJSON(w, r, &req); err != nil {
		c.Errors.Write(w, r, err)
		return
	}
	event, err := c.Service.Update(r.Context(), r.PathValue("id"), req.toDomain())
	if err != nil {
		c.Errors.Write(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, EventResponse{Success: true, Data: event})
}

// DeleteEvent godoc
// @Summary Delete an event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} helpers.MessageResponse
// @Failure 404 {object} helpers.ErrorResponse "Event not found"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events/{id} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.Delete(r.Context(), r.PathValue("id")); err != nil {
		c.Errors.Write(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, helpers.MessageResponse{Success: true, Message: "Event deleted successfully"})
}
