package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/sync/singleflight"

	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/model"
	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/payload"
	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/repository"
	"github.com/vasapolrittideah/streamhub-api/shared/apperror"
	"github.com/vasapolrittideah/streamhub-api/shared/cache"
	"github.com/vasapolrittideah/streamhub-api/shared/validation"
)

const (
	catalogCachePrefix = "catalog:"
	genresCacheKey     = catalogCachePrefix + "genres"
	suggestionsPrefix  = catalogCachePrefix + "suggestions:"
	catalogCacheTTL    = 5 * time.Minute

	suggestionLimit    = 5
	featuredLimit      = 10
	defaultSeriesLimit = 20
)

// CatalogUsecase serves series, episodes and genres.
type CatalogUsecase interface {
	ListSeries(ctx context.Context, req *payload.ListSeriesRequest) ([]model.Series, error)

	// GetSeries accepts a document id or the numeric id of older records.
	GetSeries(ctx context.Context, id string) (*model.Series, error)

	SearchSeries(ctx context.Context, req *payload.SearchRequest) ([]model.Series, error)
	Suggestions(ctx context.Context, req *payload.SearchRequest) ([]payload.Suggestion, error)
	FeaturedSeries(ctx context.Context) ([]model.Series, error)
	SaveSeries(ctx context.Context, req *payload.SaveSeriesRequest) (*model.Series, error)
	DeleteSeries(ctx context.Context, req *payload.IDRequest) (*payload.DeletedResponse, error)

	ListEpisodes(ctx context.Context, req *payload.ListEpisodesRequest) ([]model.Episode, error)
	GetEpisode(ctx context.Context, req *payload.IDRequest) (*model.Episode, error)
	SaveEpisode(ctx context.Context, req *payload.SaveEpisodeRequest) (*model.Episode, error)
	DeleteEpisode(ctx context.Context, req *payload.IDRequest) (*payload.DeletedResponse, error)

	ListGenres(ctx context.Context) ([]model.Genre, error)
	SaveGenre(ctx context.Context, req *payload.SaveGenreRequest) (*model.Genre, error)
	DeleteGenre(ctx context.Context, req *payload.IDRequest) (*payload.DeletedResponse, error)
}

type catalogUsecase struct {
	seriesRepo  repository.SeriesRepository
	episodeRepo repository.EpisodeRepository
	genreRepo   repository.GenreRepository
	cache       cache.Cache
	validator   *validation.Validator
	logger      *zerolog.Logger
	group       singleflight.Group
}

func NewCatalogUsecase(
	seriesRepo repository.SeriesRepository,
	episodeRepo repository.EpisodeRepository,
	genreRepo repository.GenreRepository,
	catalogCache cache.Cache,
	validator *validation.Validator,
	logger *zerolog.Logger,
) CatalogUsecase {
	return &catalogUsecase{
		seriesRepo:  seriesRepo,
		episodeRepo: episodeRepo,
		genreRepo:   genreRepo,
		cache:       catalogCache,
		validator:   validator,
		logger:      logger,
	}
}

func (u *catalogUsecase) ListSeries(ctx context.Context, req *payload.ListSeriesRequest) ([]model.Series, error) {
	if err := u.validator.Struct(req); err != nil {
		return nil, err
	}

	limit := req.Limit
	if limit == 0 {
		limit = defaultSeriesLimit
	}

	series, err := u.seriesRepo.ListSeries(ctx, repository.FilterSeriesParams{
		Genre:    req.Genre,
		Featured: req.Featured,
		Limit:    limit,
		Skip:     req.Skip,
	})
	if err != nil {
		return nil, apperror.Wrap(err, "get series")
	}

	return orEmpty(series), nil
}

func (u *catalogUsecase) GetSeries(ctx context.Context, id string) (*model.Series, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperror.Validation("Series id is required")
	}

	series, err := u.seriesRepo.GetSeries(ctx, id)
	if err == nil {
		return series, nil
	}
	if !errors.Is(err, repository.ErrNotFound) && !errors.Is(err, repository.ErrInvalidID) {
		return nil, apperror.Wrap(err, "get series")
	}

	legacyID, parseErr := model.ParseNumericID(id)
	if parseErr != nil {
		return nil, ErrSeriesNotFound
	}

	series, err = u.seriesRepo.GetSeriesByLegacyID(ctx, legacyID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSeriesNotFound
		}
		return nil, apperror.Wrap(err, "get series")
	}

	return series, nil
}

func (u *catalogUsecase) SearchSeries(ctx context.Context, req *payload.SearchRequest) ([]model.Series, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return []model.Series{}, nil
	}

	series, err := u.seriesRepo.ListSeries(ctx, repository.FilterSeriesParams{Search: query})
	if err != nil {
		return nil, apperror.Wrap(err, "search series")
	}

	return orEmpty(series), nil
}

// Suggestions returns up to five name matches, tagged with their first genre.
func (u *catalogUsecase) Suggestions(ctx context.Context, req *payload.SearchRequest) ([]payload.Suggestion, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return []payload.Suggestion{}, nil
	}

	key := suggestionsPrefix + strings.ToLower(query)

	var cached []payload.Suggestion
	if u.readCache(ctx, key, &cached) {
		return cached, nil
	}

	// Concurrent misses for the same query share one lookup.
	val, err, _ := u.group.Do(key, func() (any, error) {
		series, err := u.seriesRepo.SuggestSeries(ctx, query, suggestionLimit)
		if err != nil {
			return nil, err
		}

		suggestions := make([]payload.Suggestion, 0, len(series))
		for _, s := range series {
			suggestions = append(suggestions, payload.Suggestion{
				ID:   s.ID.Hex(),
				Name: s.Name,
				Tag:  s.FirstGenreName(),
			})
		}

		u.writeCache(ctx, key, suggestions)
		return suggestions, nil
	})
	if err != nil {
		return nil, apperror.Wrap(err, "get suggestions")
	}

	return val.([]payload.Suggestion), nil
}

func (u *catalogUsecase) FeaturedSeries(ctx context.Context) ([]model.Series, error) {
	featured := true

	series, err := u.seriesRepo.ListSeries(ctx, repository.FilterSeriesParams{Featured: &featured, Limit: featuredLimit})
	if err != nil {
		return nil, apperror.Wrap(err, "get featured series")
	}

	return orEmpty(series), nil
}

func (u *catalogUsecase) SaveSeries(ctx context.Context, req *payload.SaveSeriesRequest) (*model.Series, error) {
	if err := u.validator.Struct(req); err != nil {
		return nil, err
	}

	series := &model.Series{
		LegacyID:    req.LegacyID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Cover:       req.Cover,
		Genre:       req.Genre,
		Tags:        req.Tags,
		Languages:   req.Languages,
		VideoID:     req.VideoID,
		Featured:    req.Featured,
	}
	if series.Genre == nil {
		series.Genre = []model.GenreRef{}
	}

	if req.ID != "" {
		existing, err := u.seriesRepo.GetSeries(ctx, req.ID)
		switch {
		case errors.Is(err, repository.ErrInvalidID):
			return nil, apperror.Validation("Invalid series id")
		case errors.Is(err, repository.ErrNotFound):
			series.ID, _ = bson.ObjectIDFromHex(req.ID)
		case err != nil:
			return nil, apperror.Wrap(err, "save series")
		default:
			series.ID = existing.ID
			series.CreatedAt = existing.CreatedAt
		}
	}

	saved, err := u.seriesRepo.SaveSeries(ctx, series)
	if err != nil {
		return nil, apperror.Wrap(err, "save series")
	}

	u.invalidateCache(ctx)

	return saved, nil
}

// DeleteSeries removes the series together with its episodes.
func (u *catalogUsecase) DeleteSeries(ctx context.Context, req *payload.IDRequest) (*payload.DeletedResponse, error) {
	if err := u.validator.Struct(req); err != nil {
		return nil, err
	}

	deleted, err := u.seriesRepo.DeleteSeries(ctx, req.ID)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidID) {
			return nil, ErrSeriesNotFound
		}
		return nil, apperror.Wrap(err, "delete series")
	}
	if deleted == 0 {
		return nil, ErrSeriesNotFound
	}

	if _, err := u.episodeRepo.DeleteSeriesEpisodes(ctx, req.ID); err != nil {
		return nil, apperror.Wrap(err, "delete series episodes")
	}

	u.invalidateCache(ctx)

	return &payload.DeletedResponse{Deleted: deleted}, nil
}

func (u *catalogUsecase) ListEpisodes(ctx context.Context, req *payload.ListEpisodesRequest) ([]model.Episode, error) {
	if err := u.validator.Struct(req); err != nil {
		return nil, err
	}

	episodes, err := u.episodeRepo.ListEpisodes(ctx, req.SeriesID)
	if err != nil {
		return nil, apperror.Wrap(err, "get episodes")
	}

	return orEmpty(episodes), nil
}

func (u *catalogUsecase) GetEpisode(ctx context.Context, req *payload.IDRequest) (*model.Episode, error) {
	if err := u.validator.Struct(req); err != nil {
		return nil, err
	}

	episode, err := u.episodeRepo.GetEpisode(ctx, req.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrInvalidID) {
			return nil, ErrEpisodeNotFound
		}
		return nil, apperror.Wrap(err, "get episode")
	}

	return episode, nil
}

func (u *catalogUsecase) SaveEpisode(ctx context.Context, req *payload.SaveEpisodeRequest) (*model.Episode, error) {
	if err := u.validator.Struct(req); err != nil {
		return nil, err
	}

	episode := &model.Episode{
		SeriesID:      req.SeriesID,
		EpisodeNumber: req.EpisodeNumber,
		Title:         strings.TrimSpace(req.Title),
		Description:   req.Description,
		Thumbnail:     req.Thumbnail,
		VideoID:       req.VideoID,
		VideoURL:      req.VideoURL,
		Duration:      req.Duration,
	}

	if req.ID != "" {
		existing, err := u.episodeRepo.GetEpisode(ctx, req.ID)
		switch {
		case errors.Is(err, repository.ErrInvalidID):
			return nil, apperror.Validation("Invalid episode id")
		case errors.Is(err, repository.ErrNotFound):
			episode.ID, _ = bson.ObjectIDFromHex(req.ID)
		case err != nil:
			return nil, apperror.Wrap(err, "save episode")
		default:
			episode.ID = existing.ID
			episode.CreatedAt = existing.CreatedAt
		}
	}

	saved, err := u.episodeRepo.SaveEpisode(ctx, episode)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEpisode) {
			return nil, ErrEpisodeExists
		}
		return nil, apperror.Wrap(err, "save episode")
	}

	return saved, nil
}

func (u *catalogUsecase) DeleteEpisode(ctx context.Context, req *payload.IDRequest) (*payload.DeletedResponse, error) {
	if err := u.validator.Struct(req); err != nil {
		return nil, err
	}

	deleted, err := u.episodeRepo.DeleteEpisode(ctx, req.ID)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidID) {
			return nil, ErrEpisodeNotFound
		}
		return nil, apperror.Wrap(err, "delete episode")
	}
	if deleted == 0 {
		return nil, ErrEpisodeNotFound
	}

	return &payload.DeletedResponse{Deleted: deleted}, nil
}

func (u *catalogUsecase) ListGenres(ctx context.Context) ([]model.Genre, error) {
	var cached []model.Genre
	if u.readCache(ctx, genresCacheKey, &cached) {
		return cached, nil
	}

	val, err, _ := u.group.Do(genresCacheKey, func() (any, error) {
		genres, err := u.genreRepo.ListGenres(ctx)
		if err != nil {
			return nil, err
		}

		genres = orEmpty(genres)
		u.writeCache(ctx, genresCacheKey, genres)
		return genres, nil
	})
	if err != nil {
		return nil, apperror.Wrap(err, "get genres")
	}

	return val.([]model.Genre), nil
}

// SaveGenre assigns the next numeric id to new genres. Renaming a genre
// does not update the copies embedded in series.
func (u *catalogUsecase) SaveGenre(ctx context.Context, req *payload.SaveGenreRequest) (*model.Genre, error) {
	if err := u.validator.Struct(req); err != nil {
		return nil, err
	}

	genre := &model.Genre{GenreID: req.GenreID, Name: strings.TrimSpace(req.Name)}

	if req.ID != "" {
		id, err := bson.ObjectIDFromHex(req.ID)
		if err != nil {
			return nil, apperror.Validation("Invalid genre id")
		}
		genre.ID = id
	}

	if genre.GenreID == 0 {
		next, err := u.genreRepo.NextGenreID(ctx)
		if err != nil {
			return nil, apperror.Wrap(err, "save genre")
		}
		genre.GenreID = next
	}

	saved, err := u.genreRepo.SaveGenre(ctx, genre)
	if err != nil {
		return nil, apperror.Wrap(err, "save genre")
	}

	u.invalidateCache(ctx)

	return saved, nil
}

func (u *catalogUsecase) DeleteGenre(ctx context.Context, req *payload.IDRequest) (*payload.DeletedResponse, error) {
	if err := u.validator.Struct(req); err != nil {
		return nil, err
	}

	deleted, err := u.genreRepo.DeleteGenre(ctx, req.ID)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidID) {
			return nil, ErrGenreNotFound
		}
		return nil, apperror.Wrap(err, "delete genre")
	}
	if deleted == 0 {
		return nil, ErrGenreNotFound
	}

	u.invalidateCache(ctx)

	return &payload.DeletedResponse{Deleted: deleted}, nil
}

// Cache failures never fail a request; the catalog is read from Mongo instead.
func (u *catalogUsecase) readCache(ctx context.Context, key string, dest any) bool {
	if u.cache == nil {
		return false
	}

	found, err := u.cache.Get(ctx, key, dest)
	if err != nil {
		u.logger.Warn().Err(err).Str("key", key).Msg("failed to read catalog cache")
		return false
	}

	return found
}

func (u *catalogUsecase) writeCache(ctx context.Context, key string, value any) {
	if u.cache == nil {
		return
	}

	if err := u.cache.Set(ctx, key, value, catalogCacheTTL); err != nil {
		u.logger.Warn().Err(err).Str("key", key).Msg("failed to write catalog cache")
	}
}

func (u *catalogUsecase) invalidateCache(ctx context.Context) {
	if u.cache == nil {
		return
	}

	if err := u.cache.DeletePrefix(ctx, catalogCachePrefix); err != nil {
		u.logger.Warn().Err(err).Msg("failed to invalidate catalog cache")
	}
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
