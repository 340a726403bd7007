package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// ErrCollectionRequired is returned when a call names no collection.
var ErrCollectionRequired = errors.New("collection name is required")

// Query selects documents for Get. Zero values match every document,
// return every field, leave the order to the server and apply no paging.
type Query struct {
	Filter     any
	Projection any
	Sort       any
	Limit      int64
	Skip       int64
}

// Store is the generic document-store primitive set used by repositories.
type Store interface {
	// Get decodes every document matching q into out, a pointer to a slice.
	Get(ctx context.Context, collection string, q Query, out any) error

	// Save upserts doc by its _id, or inserts it when it has none, and
	// returns the document identifier. Concurrent saves of one id race and
	// the last write wins.
	Save(ctx context.Context, collection string, doc any) (string, error)

	// Remove deletes every document matching filter.
	Remove(ctx context.Context, collection string, filter any) (int64, error)

	// Update applies update to the first document matching filter and
	// returns the number of matched documents, even when nothing changed.
	Update(ctx context.Context, collection string, filter, update any) (int64, error)

	// UpdateMany applies update to every document matching filter and
	// returns the number of matched documents.
	UpdateMany(ctx context.Context, collection string, filter, update any) (int64, error)

	// EnsureIndexes creates the given indexes if they do not exist.
	EnsureIndexes(ctx context.Context, collection string, models []mongo.IndexModel) error
}

type mongoStore struct {
	db *mongo.Database
}

// NewMongoStore creates a Store on top of db.
func NewMongoStore(db *mongo.Database) Store {
	return &mongoStore{db: db}
}

func (s *mongoStore) Get(ctx context.Context, collection string, q Query, out any) error {
	if collection == "" {
		return ErrCollectionRequired
	}

	findOptions := options.Find()
	if q.Projection != nil {
		findOptions.SetProjection(q.Projection)
	}
	if q.Sort != nil {
		findOptions.SetSort(q.Sort)
	}
	if q.Limit > 0 {
		findOptions.SetLimit(q.Limit)
	}
	if q.Skip > 0 {
		findOptions.SetSkip(q.Skip)
	}

	cursor, err := s.db.Collection(collection).Find(ctx, filterOrAll(q.Filter), findOptions)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	return cursor.All(ctx, out)
}

func (s *mongoStore) Save(ctx context.Context, collection string, doc any) (string, error) {
	if collection == "" {
		return "", ErrCollectionRequired
	}

	id, fields, err := splitID(doc)
	if err != nil {
		return "", err
	}

	coll := s.db.Collection(collection)

	if id != nil {
		_, err := coll.UpdateOne(ctx,
			bson.D{{Key: "_id", Value: id}},
			bson.D{{Key: "$set", Value: fields}},
			options.UpdateOne().SetUpsert(true),
		)
		if err != nil {
			return "", err
		}
		return idString(id), nil
	}

	result, err := coll.InsertOne(ctx, fields)
	if err != nil {
		return "", err
	}

	return idString(result.InsertedID), nil
}

func (s *mongoStore) Remove(ctx context.Context, collection string, filter any) (int64, error) {
	if collection == "" {
		return 0, ErrCollectionRequired
	}

	result, err := s.db.Collection(collection).DeleteMany(ctx, filterOrAll(filter))
	if err != nil {
		return 0, err
	}

	return result.DeletedCount, nil
}

func (s *mongoStore) Update(ctx context.Context, collection string, filter, update any) (int64, error) {
	if collection == "" {
		return 0, ErrCollectionRequired
	}

	result, err := s.db.Collection(collection).UpdateOne(ctx, filterOrAll(filter), update)
	if err != nil {
		return 0, err
	}

	return result.MatchedCount, nil
}

func (s *mongoStore) UpdateMany(ctx context.Context, collection string, filter, update any) (int64, error) {
	if collection == "" {
		return 0, ErrCollectionRequired
	}

	result, err := s.db.Collection(collection).UpdateMany(ctx, filterOrAll(filter), update)
	if err != nil {
		return 0, err
	}

	return result.MatchedCount, nil
}

func (s *mongoStore) EnsureIndexes(ctx context.Context, collection string, models []mongo.IndexModel) error {
	if collection == "" {
		return ErrCollectionRequired
	}
	if len(models) == 0 {
		return nil
	}

	_, err := s.db.Collection(collection).Indexes().CreateMany(ctx, models)
	return err
}

// splitID marshals doc and separates a non-zero _id from the other fields.
func splitID(doc any) (any, bson.D, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal document: %w", err)
	}

	var fields bson.D
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return nil, nil, fmt.Errorf("unmarshal document: %w", err)
	}

	var id any
	rest := make(bson.D, 0, len(fields))
	for _, elem := range fields {
		if elem.Key == "_id" {
			if !isZeroID(elem.Value) {
				id = elem.Value
			}
			continue
		}
		rest = append(rest, elem)
	}

	return id, rest, nil
}

func isZeroID(v any) bool {
	switch id := v.(type) {
	case nil:
		return true
	case bson.ObjectID:
		return id.IsZero()
	case string:
		return id == ""
	default:
		return false
	}
}

func idString(id any) string {
	switch v := id.(type) {
	case bson.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

func filterOrAll(filter any) any {
	if filter == nil {
		return bson.D{}
	}
	return filter
}
