package repository

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/model"
	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/store"
)

// ErrDuplicateEpisode is returned when a series already has an episode with the same number.
var ErrDuplicateEpisode = errors.New("episode number already exists")

type EpisodeRepository interface {
	ListEpisodes(ctx context.Context, seriesID string) ([]model.Episode, error)
	GetEpisode(ctx context.Context, id string) (*model.Episode, error)
	SaveEpisode(ctx context.Context, episode *model.Episode) (*model.Episode, error)
	DeleteEpisode(ctx context.Context, id string) (int64, error)
	DeleteSeriesEpisodes(ctx context.Context, seriesID string) (int64, error)
}

type episodeRepository struct {
	store store.Store
}

func NewEpisodeRepository(ctx context.Context, logger *zerolog.Logger, s store.Store) EpisodeRepository {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "seriesId", Value: 1}, {Key: "episodeNumber", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	if err := s.EnsureIndexes(ctx, EpisodeCollection, indexes); err != nil {
		logger.Fatal().Err(err).Msg("failed to create episode indexes")
	}

	return &episodeRepository{store: s}
}

func (r *episodeRepository) ListEpisodes(ctx context.Context, seriesID string) ([]model.Episode, error) {
	var episodes []model.Episode
	err := r.store.Get(ctx, EpisodeCollection, store.Query{
		Filter: bson.M{"seriesId": seriesID},
		Sort:   bson.D{{Key: "episodeNumber", Value: 1}},
	}, &episodes)
	if err != nil {
		return nil, err
	}

	return episodes, nil
}

func (r *episodeRepository) GetEpisode(ctx context.Context, id string) (*model.Episode, error) {
	return findByID[model.Episode](ctx, r.store, EpisodeCollection, id)
}

func (r *episodeRepository) SaveEpisode(ctx context.Context, episode *model.Episode) (*model.Episode, error) {
	if episode.CreatedAt.IsZero() {
		episode.CreatedAt = time.Now()
	}

	id, err := saveDocument(ctx, r.store, EpisodeCollection, episode)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateEpisode
		}
		return nil, err
	}

	episode.ID = id
	return episode, nil
}

func (r *episodeRepository) DeleteEpisode(ctx context.Context, id string) (int64, error) {
	return removeByID(ctx, r.store, EpisodeCollection, id)
}

func (r *episodeRepository) DeleteSeriesEpisodes(ctx context.Context, seriesID string) (int64, error) {
	return r.store.Remove(ctx, EpisodeCollection, bson.M{"seriesId": seriesID})
}
