package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"gothamai/internal/domain"
)

type contactDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Subject   string             `bson:"subject"`
	Message   string             `bson:"message"`
	Phone     string             `bson:"phone,omitempty"`
	IPAddress string             `bson:"ipAddress,omitempty"`
	Status    string             `bson:"status"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (d contactDoc) toDomain() *domain.Contact {
	return &domain.Contact{
		ID: d.ID.Hex(), Name: d.Name, Email: d.Email, Subject: d.Subject, Message: d.Message, Phone: d.Phone,
		IPAddress: d.IPAddress, Status: domain.ContactStatus(d.Status), CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt,
	}
}

type speakerDoc struct {
	Name  string `bson:"name"`
	Title string `bson:"title,omitempty"`
	Bio   string `bson:"bio,omitempty"`
	Image string `bson:"image,omitempty"`
}

type eventDoc struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Title            string             `bson:"title"`
	Slug             string             `bson:"slug"`
	Description      string             `bson:"description"`
	Content          string             `bson:"content"`
	Date             *time.Time         `bson:"date,omitempty"`
	DateDisplay      string             `bson:"dateDisplay"`
	Time             string             `bson:"time"`
	Location         string             `bson:"location"`
	Image            string             `bson:"image"`
	Gallery          []string           `bson:"gallery"`
	Attendees        int                `bson:"attendees"`
	Category         string             `bson:"category,omitempty"`
	Speakers         []speakerDoc       `bson:"speakers"`
	RegistrationLink string             `bson:"registrationLink,omitempty"`
	Tags             []string           `bson:"tags"`
	Published        bool               `bson:"published"`
	CreatedAt        time.Time          `bson:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt"`
}

func newEventDoc(e *domain.Event) eventDoc {
	speakers := make([]speakerDoc, 0, len(e.Speakers))
	for _, s := range e.Speakers {
		speakers = append(speakers, speakerDoc(s))
	}
	return eventDoc{
		Title: e.Title, Slug: e.Slug, Description: e.Description, Content: e.Content, Date: e.Date,
		DateDisplay: e.DateDisplay, Time: e.Time, Location: e.Location, Image: e.Image, Gallery: nonNil(e.Gallery),
		Attendees: e.Attendees, Category: e.Category, Speakers: speakers, RegistrationLink: e.RegistrationLink,
		Tags: nonNil(e.Tags), Published: e.Published, CreatedAt: e.CreatedAt, UpdatedAt: e.UpdatedAt,
	}
}

func (d eventDoc) toDomain() *domain.Event {
	speakers := make([]domain.Speaker, 0, len(d.Speakers))
	for _, s := range d.Speakers {
		speakers = append(speakers, domain.Speaker(s))
	}
	return &domain.Event{
		ID: d.ID.Hex(), Title: d.Title, Slug: d.Slug, Description: d.Description, Content: d.Content, Date: d.Date,
		DateDisplay: d.DateDisplay, Time: d.Time, Location: d.Location, Image: d.Image, Gallery: nonNil(d.Gallery),
		Attendees: d.Attendees, Category: d.Category, Speakers: speakers, RegistrationLink: d.RegistrationLink,
		Tags: nonNil(d.Tags), Published: d.Published, CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt,
	}
}

type resourceDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Slug        string             `bson:"slug"`
	Description string             `bson:"description"`
	Content     string             `bson:"content,omitempty"`
	Type        string             `bson:"type"`
	Category    string             `bson:"category"`
	Difficulty  string             `bson:"difficulty"`
	Image       string             `bson:"image,omitempty"`
	URL         string             `bson:"url,omitempty"`
	Author      string             `bson:"author,omitempty"`
	Tags        []string           `bson:"tags"`
	Featured    bool               `bson:"featured"`
	Views       int                `bson:"views"`
	Likes       int                `bson:"likes"`
	Published   bool               `bson:"published"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func newResourceDoc(r *domain.Resource) resourceDoc {
	return resourceDoc{
		Title: r.Title, Slug: r.Slug, Description: r.Description, Content: r.Content, Type: r.Type,
		Category: r.Category, Difficulty: r.Difficulty, Image: r.Image, URL: r.URL, Author: r.Author,
		Tags: nonNil(r.Tags), Featured: r.Featured, Views: r.Views, Likes: r.Likes, Published: r.Published,
		CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt,
	}
}

func (d resourceDoc) toDomain() *domain.Resource {
	return &domain.Resource{
		ID: d.ID.Hex(), Title: d.Title, Slug: d.Slug, Description: d.Description, Content: d.Content, Type: d.Type,
		Category: d.Category, Difficulty: d.Difficulty, Image: d.Image, URL: d.URL, Author: d.Author,
		Tags: nonNil(d.Tags), Featured: d.Featured, Views: d.Views, Likes: d.Likes, Published: d.Published,
		CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
