package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gothamai/internal/domain"
)

type resourceRepository struct {
	coll *mongo.Collection
}

// NewResourceRepository returns a domain.ResourceRepository backed by the resources collection.
func NewResourceRepository(db *mongo.Database) domain.ResourceRepository {
	return &resourceRepository{coll: db.Collection(ResourcesCollection)}
}

func (r *resourceRepository) Create(ctx context.Context, res *domain.Resource) error {
	ins, err := r.coll.InsertOne(ctx, newResourceDoc(res))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return &domain.ConflictError{Entity: "Resource", Field: "slug", Value: res.Slug}
		}
		return err
	}
	if oid, ok := ins.InsertedID.(primitive.ObjectID); ok {
		res.ID = oid.Hex()
	}
	return nil
}

func (r *resourceRepository) find(ctx context.Context, filter any, opts *options.FindOptions) ([]*domain.Resource, error) {
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var docs []resourceDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]*domain.Resource, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *resourceRepository) List(ctx context.Context, q domain.ResourceQuery) ([]*domain.Resource, int, error) {
	filter := resourceFilter(q)
	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	opts := options.Find().
		SetSort(pageSortDoc(q.Sort)).
		SetSkip(int64(q.Pagination.Offset())).
		SetLimit(int64(q.Pagination.PageSize))
	resources, err := r.find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	return resources, int(total), nil
}

// IncrementViewsBySlug uses a single findOneAndUpdate with $inc so the
// increment and the read are one atomic server-side operation.
func (r *resourceRepository) IncrementViewsBySlug(ctx context.Context, slug string) (*domain.Resource, error) {
	filter := bson.D{{Key: "slug", Value: slug}, {Key: "published", Value: true}}
	update := bson.D{{Key: "$inc", Value: bson.D{{Key: "views", Value: 1}}}}
	var doc resourceDoc
	err := r.coll.FindOneAndUpdate(ctx, filter, update, options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&doc)
	if err != nil {
		return nil, notFound(err)
	}
	return doc.toDomain(), nil
}

func (r *resourceRepository) ListFeatured(ctx context.Context, limit int) ([]*domain.Resource, error) {
	filter := bson.D{{Key: "published", Value: true}, {Key: "featured", Value: true}}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(int64(limit))
	return r.find(ctx, filter, opts)
}
