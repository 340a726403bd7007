package repository_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/model"
	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/repository"
	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/store"
	storemocks "github.com/vasapolrittideah/streamhub-api/services/api-service/internal/store/mocks"
)

func newSeriesRepository(t *testing.T) (repository.SeriesRepository, *storemocks.Store) {
	t.Helper()

	s := storemocks.NewStore(t)
	s.On("EnsureIndexes", mock.Anything, repository.SeriesCollection, mock.Anything).Return(nil).Once()

	logger := zerolog.Nop()
	return repository.NewSeriesRepository(context.Background(), &logger, s), s
}

func TestSeriesRepository_ListSeries(t *testing.T) {
	featured := true

	tests := []struct {
		name       string
		params     repository.FilterSeriesParams
		wantFilter bson.M
		wantLimit  int64
		wantSkip   int64
	}{
		{
			name:       "no filters",
			params:     repository.FilterSeriesParams{},
			wantFilter: bson.M{},
		},
		{
			name:   "search is escaped and case insensitive",
			params: repository.FilterSeriesParams{Search: "c++ (remix)", Limit: 10, Skip: 20},
			wantFilter: bson.M{
				"name": bson.Regex{Pattern: `c\+\+ \(remix\)`, Options: "i"},
			},
			wantLimit: 10,
			wantSkip:  20,
		},
		{
			name:       "genre and featured",
			params:     repository.FilterSeriesParams{Genre: "Drama", Featured: &featured, Limit: -1},
			wantFilter: bson.M{"genre.name": "Drama", "featured": true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, s := newSeriesRepository(t)
			s.On("Get", mock.Anything, repository.SeriesCollection, store.Query{
				Filter: tt.wantFilter,
				Sort:   bson.D{{Key: "createdAt", Value: -1}},
				Limit:  tt.wantLimit,
				Skip:   tt.wantSkip,
			}, mock.Anything).Return(nil).Once()

			_, err := repo.ListSeries(context.Background(), tt.params)
			require.NoError(t, err)
		})
	}
}

func TestSeriesRepository_GetSeriesByLegacyID(t *testing.T) {
	repo, s := newSeriesRepository(t)
	s.On("Get", mock.Anything, repository.SeriesCollection, store.Query{
		Filter: bson.M{"id": bson.M{"$in": bson.A{int64(12), "12"}}},
		Limit:  1,
	}, mock.Anything).
		Run(func(args mock.Arguments) {
			legacy := model.NumericID(12)
			*args.Get(3).(*[]model.Series) = []model.Series{{LegacyID: &legacy, Name: "Harbor Lights"}}
		}).
		Return(nil).Once()

	series, err := repo.GetSeriesByLegacyID(context.Background(), 12)
	require.NoError(t, err)
	assert.Equal(t, "Harbor Lights", series.Name)
}

func TestSeriesRepository_SuggestSeries(t *testing.T) {
	repo, s := newSeriesRepository(t)
	s.On("Get", mock.Anything, repository.SeriesCollection, store.Query{
		Filter:     bson.M{"name": bson.Regex{Pattern: "har", Options: "i"}},
		Projection: bson.M{"_id": 1, "name": 1, "genre": 1},
		Limit:      5,
	}, mock.Anything).Return(nil).Once()

	_, err := repo.SuggestSeries(context.Background(), "har", 5)
	require.NoError(t, err)
}

func TestSeriesRepository_SaveSeries(t *testing.T) {
	id := bson.NewObjectID()

	repo, s := newSeriesRepository(t)
	s.On("Save", mock.Anything, repository.SeriesCollection, mock.Anything).Return(id.Hex(), nil).Once()

	series, err := repo.SaveSeries(context.Background(), &model.Series{Name: "Harbor Lights"})
	require.NoError(t, err)
	assert.Equal(t, id, series.ID)
	assert.False(t, series.CreatedAt.IsZero())
}

func nopLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}
