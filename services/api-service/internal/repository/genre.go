package repository

import (
	"context"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/model"
	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/store"
)

type GenreRepository interface {
	ListGenres(ctx context.Context) ([]model.Genre, error)
	SaveGenre(ctx context.Context, genre *model.Genre) (*model.Genre, error)
	DeleteGenre(ctx context.Context, id string) (int64, error)
	NextGenreID(ctx context.Context) (model.NumericID, error)
}

type genreRepository struct {
	store store.Store
}

func NewGenreRepository(ctx context.Context, logger *zerolog.Logger, s store.Store) GenreRepository {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	if err := s.EnsureIndexes(ctx, GenreCollection, indexes); err != nil {
		logger.Fatal().Err(err).Msg("failed to create genre indexes")
	}

	return &genreRepository{store: s}
}

func (r *genreRepository) ListGenres(ctx context.Context) ([]model.Genre, error) {
	var genres []model.Genre
	err := r.store.Get(ctx, GenreCollection, store.Query{Sort: bson.D{{Key: "id", Value: 1}}}, &genres)
	if err != nil {
		return nil, err
	}

	return genres, nil
}

func (r *genreRepository) SaveGenre(ctx context.Context, genre *model.Genre) (*model.Genre, error) {
	id, err := saveDocument(ctx, r.store, GenreCollection, genre)
	if err != nil {
		return nil, err
	}

	genre.ID = id
	return genre, nil
}

func (r *genreRepository) DeleteGenre(ctx context.Context, id string) (int64, error) {
	return removeByID(ctx, r.store, GenreCollection, id)
}

// NextGenreID returns one more than the highest numeric genre id.
func (r *genreRepository) NextGenreID(ctx context.Context) (model.NumericID, error) {
	var genres []model.Genre
	err := r.store.Get(ctx, GenreCollection, store.Query{
		Sort:  bson.D{{Key: "id", Value: -1}},
		Limit: 1,
	}, &genres)
	if err != nil {
		return 0, err
	}

	if len(genres) == 0 {
		return 1, nil
	}

	return genres[0].GenreID + 1, nil
}
