package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gothamai/internal/domain"
)

type contactRepository struct {
	coll *mongo.Collection
}

// NewContactRepository returns a domain.ContactRepository backed by the contacts collection.
func NewContactRepository(db *mongo.Database) domain.ContactRepository {
	return &contactRepository{coll: db.Collection(ContactsCollection)}
}

func (r *contactRepository) Create(ctx context.Context, c *domain.Contact) error {
	doc := contactDoc{
		Name: c.Name, Email: c.Email, Subject: c.Subject, Message: c.Message, Phone: c.Phone,
		IPAddress: c.IPAddress, Status: string(c.Status), CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt,
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		c.ID = oid.Hex()
	}
	return nil
}

func (r *contactRepository) List(ctx context.Context, q domain.ContactQuery) ([]*domain.Contact, int, error) {
	filter := contactFilter(q)
	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	opts := options.Find().
		SetSort(pageSortDoc(q.Sort)).
		SetSkip(int64(q.Pagination.Offset())).
		SetLimit(int64(q.Pagination.PageSize))
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	var docs []contactDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, 0, err
	}
	contacts := make([]*domain.Contact, 0, len(docs))
	for _, d := range docs {
		contacts = append(contacts, d.toDomain())
	}
	return contacts, int(total), nil
}
