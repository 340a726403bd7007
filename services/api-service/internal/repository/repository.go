package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/store"
)

// Collection names.
const (
	UserCollection     = "users"
	SeriesCollection   = "series"
	GenreCollection    = "genre"
	EpisodeCollection  = "episodes"
	ProductCollection  = "products"
	CategoryCollection = "categories"
	HistoryCollection  = "watchHistory"
	FavoriteCollection = "favorites"
	TodoCollection     = "todos"
)

var (
	ErrNotFound  = errors.New("document not found")
	ErrInvalidID = errors.New("invalid document id")
)

func findOne[T any](ctx context.Context, s store.Store, collection string, filter any) (*T, error) {
	var docs []T
	if err := s.Get(ctx, collection, store.Query{Filter: filter, Limit: 1}, &docs); err != nil {
		return nil, err
	}

	if len(docs) == 0 {
		return nil, ErrNotFound
	}

	return &docs[0], nil
}

func findByID[T any](ctx context.Context, s store.Store, collection, id string) (*T, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	return findOne[T](ctx, s, collection, bson.M{"_id": objectID})
}

func removeByID(ctx context.Context, s store.Store, collection, id string) (int64, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return 0, ErrInvalidID
	}

	return s.Remove(ctx, collection, bson.M{"_id": objectID})
}

// saveDocument stores doc and returns the identifier to assign back to it.
func saveDocument(ctx context.Context, s store.Store, collection string, doc any) (bson.ObjectID, error) {
	id, err := s.Save(ctx, collection, doc)
	if err != nil {
		return bson.NilObjectID, err
	}

	return bson.ObjectIDFromHex(id)
}

func paging(limit, skip int64) (int64, int64) {
	if limit < 0 {
		limit = 0
	}
	if skip < 0 {
		skip = 0
	}
	return limit, skip
}
