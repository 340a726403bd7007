package repository

import (
	"context"
	"regexp"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/model"
	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/store"
)

// SeriesRepository defines the interface for series-related database operations.
type SeriesRepository interface {
	ListSeries(ctx context.Context, params FilterSeriesParams) ([]model.Series, error)
	GetSeries(ctx context.Context, id string) (*model.Series, error)
	GetSeriesByLegacyID(ctx context.Context, legacyID model.NumericID) (*model.Series, error)
	SuggestSeries(ctx context.Context, query string, limit int64) ([]model.Series, error)
	SaveSeries(ctx context.Context, series *model.Series) (*model.Series, error)
	DeleteSeries(ctx context.Context, id string) (int64, error)
}

// FilterSeriesParams defines the parameters for filtering and paginating series.
type FilterSeriesParams struct {
	Search   string
	Genre    string
	Featured *bool
	Limit    int64
	Skip     int64
}

type seriesRepository struct {
	store store.Store
}

func NewSeriesRepository(ctx context.Context, logger *zerolog.Logger, s store.Store) SeriesRepository {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}},
		{Keys: bson.D{{Key: "featured", Value: 1}, {Key: "createdAt", Value: -1}}},
	}

	if err := s.EnsureIndexes(ctx, SeriesCollection, indexes); err != nil {
		logger.Fatal().Err(err).Msg("failed to create series indexes")
	}

	return &seriesRepository{store: s}
}

func (r *seriesRepository) ListSeries(ctx context.Context, params FilterSeriesParams) ([]model.Series, error) {
	filter := bson.M{}
	if params.Search != "" {
		filter["name"] = containsInsensitive(params.Search)
	}
	if params.Genre != "" {
		filter["genre.name"] = params.Genre
	}
	if params.Featured != nil {
		filter["featured"] = *params.Featured
	}

	limit, skip := paging(params.Limit, params.Skip)

	var series []model.Series
	err := r.store.Get(ctx, SeriesCollection, store.Query{
		Filter: filter,
		Sort:   bson.D{{Key: "createdAt", Value: -1}},
		Limit:  limit,
		Skip:   skip,
	}, &series)
	if err != nil {
		return nil, err
	}

	return series, nil
}

func (r *seriesRepository) GetSeries(ctx context.Context, id string) (*model.Series, error) {
	return findByID[model.Series](ctx, r.store, SeriesCollection, id)
}

// GetSeriesByLegacyID looks a series up by the numeric id older documents
// carry next to _id. The value may have been stored as a number or a string.
func (r *seriesRepository) GetSeriesByLegacyID(ctx context.Context, legacyID model.NumericID) (*model.Series, error) {
	filter := bson.M{"id": bson.M{"$in": bson.A{int64(legacyID), strconv.FormatInt(int64(legacyID), 10)}}}
	return findOne[model.Series](ctx, r.store, SeriesCollection, filter)
}

func (r *seriesRepository) SuggestSeries(ctx context.Context, query string, limit int64) ([]model.Series, error) {
	var series []model.Series
	err := r.store.Get(ctx, SeriesCollection, store.Query{
		Filter:     bson.M{"name": containsInsensitive(query)},
		Projection: bson.M{"_id": 1, "name": 1, "genre": 1},
		Limit:      limit,
	}, &series)
	if err != nil {
		return nil, err
	}

	return series, nil
}

func (r *seriesRepository) SaveSeries(ctx context.Context, series *model.Series) (*model.Series, error) {
	if series.CreatedAt.IsZero() {
		series.CreatedAt = time.Now()
	}

	id, err := saveDocument(ctx, r.store, SeriesCollection, series)
	if err != nil {
		return nil, err
	}

	series.ID = id
	return series, nil
}

func (r *seriesRepository) DeleteSeries(ctx context.Context, id string) (int64, error) {
	return removeByID(ctx, r.store, SeriesCollection, id)
}

func containsInsensitive(s string) bson.Regex {
	return bson.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}
