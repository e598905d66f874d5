package mongo

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"gothamai/internal/domain"
)

// sortDoc renders sort fields as a bson sort document. Field names are the
// document keys, which match domain.SortBy* values.
func sortDoc(sort []domain.SortField) bson.D {
	doc := bson.D{}
	for _, s := range sort {
		dir := 1
		if s.Desc {
			dir = -1
		}
		doc = append(doc, bson.E{Key: s.Field, Value: dir})
	}
	return doc
}

// pageSortDoc is sortDoc ending in _id, so documents with equal sort keys
// keep a single order across pages.
func pageSortDoc(sort []domain.SortField) bson.D {
	return append(sortDoc(sort), bson.E{Key: "_id", Value: -1})
}

func eventFilter(q domain.EventQuery) bson.D {
	filter := bson.D{{Key: "published", Value: q.Published}}
	if q.Category != "" {
		filter = append(filter, bson.E{Key: "category", Value: q.Category})
	}
	switch q.Status {
	case "":
	case domain.EventStatusUpcoming:
		filter = append(filter, bson.E{Key: "date", Value: bson.D{{Key: "$gte", Value: q.Now}}})
	case domain.EventStatusPast:
		filter = append(filter, bson.E{Key: "date", Value: bson.D{{Key: "$lt", Value: q.Now}}})
	default:
		// No event ever carries this id, so the filter matches nothing.
		filter = append(filter, bson.E{Key: "_id", Value: primitive.NilObjectID})
	}
	return filter
}

// containsRegex matches s literally anywhere in a value, ignoring case.
func containsRegex(s string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}

func resourceFilter(q domain.ResourceQuery) bson.D {
	filter := bson.D{{Key: "published", Value: true}}
	if q.Type != "" {
		filter = append(filter, bson.E{Key: "type", Value: q.Type})
	}
	if q.Category != "" {
		filter = append(filter, bson.E{Key: "category", Value: q.Category})
	}
	if q.Difficulty != "" {
		filter = append(filter, bson.E{Key: "difficulty", Value: q.Difficulty})
	}
	if q.Featured != nil {
		filter = append(filter, bson.E{Key: "featured", Value: *q.Featured})
	}
	if q.Search != "" {
		re := containsRegex(q.Search)
		filter = append(filter, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "title", Value: re}},
			bson.D{{Key: "description", Value: re}},
			bson.D{{Key: "tags", Value: re}},
		}})
	}
	return filter
}

func contactFilter(q domain.ContactQuery) bson.D {
	filter := bson.D{}
	if q.Status != "" {
		filter = append(filter, bson.E{Key: "status", Value: q.Status})
	}
	return filter
}
