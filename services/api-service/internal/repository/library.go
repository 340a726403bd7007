package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/model"
	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/store"
)

const historyLimit = 50

// HistoryRepository stores watch history entries. Entries are not scoped to a user.
type HistoryRepository interface {
	ListHistory(ctx context.Context) ([]model.WatchHistory, error)
	RecordHistory(ctx context.Context, entry *model.WatchHistory) (*model.WatchHistory, error)
	DeleteHistory(ctx context.Context, id string) (int64, error)
	ClearHistory(ctx context.Context) (int64, error)
}

// FavoriteRepository stores favourite series. Entries are not scoped to a user.
type FavoriteRepository interface {
	ListFavorites(ctx context.Context) ([]model.Favorite, error)
	GetFavoriteBySeries(ctx context.Context, seriesID string) (*model.Favorite, error)
	AddFavorite(ctx context.Context, favorite *model.Favorite) (*model.Favorite, error)
	DeleteFavorite(ctx context.Context, id string) (int64, error)
}

type historyRepository struct {
	store store.Store
}

func NewHistoryRepository(s store.Store) HistoryRepository {
	return &historyRepository{store: s}
}

func (r *historyRepository) ListHistory(ctx context.Context) ([]model.WatchHistory, error) {
	var entries []model.WatchHistory
	err := r.store.Get(ctx, HistoryCollection, store.Query{
		Sort:  bson.D{{Key: "watchedAt", Value: -1}},
		Limit: historyLimit,
	}, &entries)
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// RecordHistory keeps one entry per series: watching a series again moves
// its existing entry to the top instead of adding a second one.
func (r *historyRepository) RecordHistory(ctx context.Context, entry *model.WatchHistory) (*model.WatchHistory, error) {
	existing, err := findOne[model.WatchHistory](ctx, r.store, HistoryCollection, bson.M{"seriesId": entry.SeriesID})
	switch {
	case err == nil:
		entry.ID = existing.ID
	case !errors.Is(err, ErrNotFound):
		return nil, err
	default:
		entry.ID = bson.NilObjectID
	}

	entry.WatchedAt = time.Now()

	id, err := saveDocument(ctx, r.store, HistoryCollection, entry)
	if err != nil {
		return nil, err
	}

	entry.ID = id
	return entry, nil
}

func (r *historyRepository) DeleteHistory(ctx context.Context, id string) (int64, error) {
	return removeByID(ctx, r.store, HistoryCollection, id)
}

func (r *historyRepository) ClearHistory(ctx context.Context) (int64, error) {
	return r.store.Remove(ctx, HistoryCollection, bson.M{})
}

type favoriteRepository struct {
	store store.Store
}

func NewFavoriteRepository(s store.Store) FavoriteRepository {
	return &favoriteRepository{store: s}
}

func (r *favoriteRepository) ListFavorites(ctx context.Context) ([]model.Favorite, error) {
	var favorites []model.Favorite
	err := r.store.Get(ctx, FavoriteCollection, store.Query{Sort: bson.D{{Key: "createdAt", Value: -1}}}, &favorites)
	if err != nil {
		return nil, err
	}

	return favorites, nil
}

func (r *favoriteRepository) GetFavoriteBySeries(ctx context.Context, seriesID string) (*model.Favorite, error) {
	return findOne[model.Favorite](ctx, r.store, FavoriteCollection, bson.M{"seriesId": seriesID})
}

func (r *favoriteRepository) AddFavorite(ctx context.Context, favorite *model.Favorite) (*model.Favorite, error) {
	favorite.ID = bson.NilObjectID
	favorite.CreatedAt = time.Now()

	id, err := saveDocument(ctx, r.store, FavoriteCollection, favorite)
	if err != nil {
		return nil, err
	}

	favorite.ID = id
	return favorite, nil
}

func (r *favoriteRepository) DeleteFavorite(ctx context.Context, id string) (int64, error) {
	return removeByID(ctx, r.store, FavoriteCollection, id)
}
