package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gothamai/internal/domain"
)

type eventRepository struct {
	coll *mongo.Collection
}

// NewEventRepository returns a domain.EventRepository backed by the events collection.
func NewEventRepository(db *mongo.Database) domain.EventRepository {
	return &eventRepository{coll: db.Collection(EventsCollection)}
}

func eventConflict(e *domain.Event) error {
	return &domain.ConflictError{Entity: "Event", Field: "slug", Value: e.Slug}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	res, err := r.coll.InsertOne(ctx, newEventDoc(e))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return eventConflict(e)
		}
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		e.ID = oid.Hex()
	}
	return nil
}

func (r *eventRepository) List(ctx context.Context, q domain.EventQuery) ([]*domain.Event, error) {
	cur, err := r.coll.Find(ctx, eventFilter(q), options.Find().SetSort(sortDoc(q.Sort)))
	if err != nil {
		return nil, err
	}
	var docs []eventDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	events := make([]*domain.Event, 0, len(docs))
	for _, d := range docs {
		events = append(events, d.toDomain())
	}
	return events, nil
}

func (r *eventRepository) GetPublishedBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	var doc eventDoc
	err := r.coll.FindOne(ctx, bson.D{{Key: "slug", Value: slug}, {Key: "published", Value: true}}).Decode(&doc)
	if err != nil {
		return nil, notFound(err)
	}
	return doc.toDomain(), nil
}

// Update replaces the stored document, keeping its id and creation time.
func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	oid, err := objectID(e.ID)
	if err != nil {
		return err
	}
	doc := newEventDoc(e)
	set := bson.M{}
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	if err := bson.Unmarshal(raw, &set); err != nil {
		return err
	}
	delete(set, "createdAt")
	delete(set, "_id")
	// Optional fields left empty are dropped from the stored document.
	unset := bson.M{}
	for _, key := range []string{"date", "category", "registrationLink"} {
		if _, ok := set[key]; !ok {
			unset[key] = ""
		}
	}
	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	var updated eventDoc
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = r.coll.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: oid}}, update, opts).Decode(&updated)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return eventConflict(e)
		}
		return notFound(err)
	}
	e.CreatedAt = updated.CreatedAt
	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) (*domain.Event, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var doc eventDoc
	if err := r.coll.FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		return nil, notFound(err)
	}
	return doc.toDomain(), nil
}
