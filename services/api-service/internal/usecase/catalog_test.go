package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/model"
	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/payload"
	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/repository"
	repomocks "github.com/vasapolrittideah/streamhub-api/services/api-service/internal/repository/mocks"
	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/usecase"
	"github.com/vasapolrittideah/streamhub-api/shared/apperror"
	"github.com/vasapolrittideah/streamhub-api/shared/cache"
)

type catalogFields struct {
	seriesRepo  *repomocks.SeriesRepository
	episodeRepo *repomocks.EpisodeRepository
	genreRepo   *repomocks.GenreRepository
}

func newCatalogFields(t *testing.T) catalogFields {
	return catalogFields{
		seriesRepo:  repomocks.NewSeriesRepository(t),
		episodeRepo: repomocks.NewEpisodeRepository(t),
		genreRepo:   repomocks.NewGenreRepository(t),
	}
}

func (f catalogFields) usecase(t *testing.T, c cache.Cache) usecase.CatalogUsecase {
	return usecase.NewCatalogUsecase(f.seriesRepo, f.episodeRepo, f.genreRepo, c, testValidator(t), testLogger())
}

func TestCatalogUsecase_GetSeries(t *testing.T) {
	objectID := bson.NewObjectID()
	legacy := model.NumericID(42)

	tests := []struct {
		name     string
		id       string
		mockCall func(f catalogFields)
		wantName string
		wantErr  error
	}{
		{
			name: "document id",
			id:   objectID.Hex(),
			mockCall: func(f catalogFields) {
				f.seriesRepo.On("GetSeries", mock.Anything, objectID.Hex()).
					Return(&model.Series{ID: objectID, Name: "Harbor Lights"}, nil).Once()
			},
			wantName: "Harbor Lights",
		},
		{
			name: "legacy numeric id falls back to the id field",
			id:   "42",
			mockCall: func(f catalogFields) {
				f.seriesRepo.On("GetSeries", mock.Anything, "42").Return(nil, repository.ErrInvalidID).Once()
				f.seriesRepo.On("GetSeriesByLegacyID", mock.Anything, legacy).
					Return(&model.Series{LegacyID: &legacy, Name: "Old Town", Genre: []model.GenreRef{{ID: 3, Name: "Drama"}}}, nil).Once()
			},
			wantName: "Old Town",
		},
		{
			name: "unknown legacy id",
			id:   "77",
			mockCall: func(f catalogFields) {
				f.seriesRepo.On("GetSeries", mock.Anything, "77").Return(nil, repository.ErrInvalidID).Once()
				f.seriesRepo.On("GetSeriesByLegacyID", mock.Anything, model.NumericID(77)).
					Return(nil, repository.ErrNotFound).Once()
			},
			wantErr: usecase.ErrSeriesNotFound,
		},
		{
			name: "neither a document id nor a number",
			id:   "harbor",
			mockCall: func(f catalogFields) {
				f.seriesRepo.On("GetSeries", mock.Anything, "harbor").Return(nil, repository.ErrInvalidID).Once()
			},
			wantErr: usecase.ErrSeriesNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCatalogFields(t)
			tt.mockCall(f)

			got, err := f.usecase(t, nil).GetSeries(context.Background(), tt.id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantName, got.Name)
		})
	}
}

func TestCatalogUsecase_GetSeries_StorageFailure(t *testing.T) {
	f := newCatalogFields(t)
	f.seriesRepo.On("GetSeries", mock.Anything, mock.Anything).Return(nil, errors.New("socket closed")).Once()

	_, err := f.usecase(t, nil).GetSeries(context.Background(), bson.NewObjectID().Hex())
	assert.EqualError(t, err, "Failed to get series: socket closed")
	assert.Equal(t, apperror.KindInternal, apperror.KindOf(err))
}

func TestCatalogUsecase_Suggestions(t *testing.T) {
	f := newCatalogFields(t)
	id := bson.NewObjectID()

	f.seriesRepo.On("SuggestSeries", mock.Anything, "Har", int64(5)).
		Return([]model.Series{
			{ID: id, Name: "Harbor Lights", Genre: []model.GenreRef{{ID: 1, Name: "Drama"}, {ID: 2, Name: "Romance"}}},
			{ID: id, Name: "Harvest"},
		}, nil).Once()

	uc := f.usecase(t, cache.NewMemoryCache(time.Minute, time.Minute))

	want := []payload.Suggestion{
		{ID: id.Hex(), Name: "Harbor Lights", Tag: "Drama"},
		{ID: id.Hex(), Name: "Harvest", Tag: ""},
	}

	got, err := uc.Suggestions(context.Background(), &payload.SearchRequest{Query: " Har "})
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// Served from the cache; the repository expectation is Once.
	got, err = uc.Suggestions(context.Background(), &payload.SearchRequest{Query: "HAR"})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCatalogUsecase_Suggestions_EmptyQuery(t *testing.T) {
	got, err := newCatalogFields(t).usecase(t, nil).Suggestions(context.Background(), &payload.SearchRequest{})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestCatalogUsecase_SaveGenre_InvalidatesCache(t *testing.T) {
	f := newCatalogFields(t)
	c := cache.NewMemoryCache(time.Minute, time.Minute)
	uc := f.usecase(t, c)

	f.genreRepo.On("ListGenres", mock.Anything).Return([]model.Genre{{GenreID: 1, Name: "Drama"}}, nil).Twice()
	f.genreRepo.On("NextGenreID", mock.Anything).Return(model.NumericID(2), nil).Once()
	f.genreRepo.On("SaveGenre", mock.Anything, mock.MatchedBy(func(g *model.Genre) bool {
		return g.GenreID == 2 && g.Name == "Mystery"
	})).Return(&model.Genre{GenreID: 2, Name: "Mystery"}, nil).Once()

	_, err := uc.ListGenres(context.Background())
	require.NoError(t, err)
	_, err = uc.ListGenres(context.Background())
	require.NoError(t, err)

	saved, err := uc.SaveGenre(context.Background(), &payload.SaveGenreRequest{Name: " Mystery "})
	require.NoError(t, err)
	assert.Equal(t, model.NumericID(2), saved.GenreID)

	_, err = uc.ListGenres(context.Background())
	require.NoError(t, err)
}

func TestCatalogUsecase_DeleteSeries(t *testing.T) {
	id := bson.NewObjectID().Hex()

	t.Run("removes episodes too", func(t *testing.T) {
		f := newCatalogFields(t)
		f.seriesRepo.On("DeleteSeries", mock.Anything, id).Return(int64(1), nil).Once()
		f.episodeRepo.On("DeleteSeriesEpisodes", mock.Anything, id).Return(int64(12), nil).Once()

		got, err := f.usecase(t, nil).DeleteSeries(context.Background(), &payload.IDRequest{ID: id})
		require.NoError(t, err)
		assert.Equal(t, int64(1), got.Deleted)
	})

	t.Run("missing series", func(t *testing.T) {
		f := newCatalogFields(t)
		f.seriesRepo.On("DeleteSeries", mock.Anything, id).Return(int64(0), nil).Once()

		_, err := f.usecase(t, nil).DeleteSeries(context.Background(), &payload.IDRequest{ID: id})
		assert.ErrorIs(t, err, usecase.ErrSeriesNotFound)
	})
}

func TestCatalogUsecase_SaveEpisode(t *testing.T) {
	tests := []struct {
		name     string
		req      *payload.SaveEpisodeRequest
		mockCall func(f catalogFields)
		wantErr  error
		wantKind apperror.Kind
	}{
		{
			name: "duplicate episode number",
			req:  &payload.SaveEpisodeRequest{SeriesID: "s1", EpisodeNumber: 3, Title: "Pilot"},
			mockCall: func(f catalogFields) {
				f.episodeRepo.On("SaveEpisode", mock.Anything, mock.Anything).Return(nil, repository.ErrDuplicateEpisode).Once()
			},
			wantErr:  usecase.ErrEpisodeExists,
			wantKind: apperror.KindBusiness,
		},
		{
			name:     "episode number is required",
			req:      &payload.SaveEpisodeRequest{SeriesID: "s1", Title: "Pilot"},
			mockCall: func(f catalogFields) {},
			wantKind: apperror.KindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCatalogFields(t)
			tt.mockCall(f)

			_, err := f.usecase(t, nil).SaveEpisode(context.Background(), tt.req)
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, apperror.KindOf(err))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
