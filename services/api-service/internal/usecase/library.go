package usecase

import (
	"context"
	"errors"

	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/model"
	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/payload"
	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/repository"
	"github.com/vasapolrittideah/streamhub-api/shared/apperror"
	"github.com/vasapolrittideah/streamhub-api/shared/validation"
)

// LibraryUsecase manages watch history and favourites. Both lists are
// shared by every visitor.
type LibraryUsecase interface {
	ListHistory(ctx context.Context) ([]model.WatchHistory, error)
	AddHistory(ctx context.Context, req *payload.AddHistoryRequest) (*model.WatchHistory, error)

	// DeleteHistory removes one entry, or clears the history when no id is given.
	DeleteHistory(ctx context.Context, req *payload.DeleteHistoryRequest) (*payload.DeletedResponse, error)

	ListFavorites(ctx context.Context) ([]model.Favorite, error)
	AddFavorite(ctx context.Context, req *payload.AddFavoriteRequest) (*model.Favorite, error)
	DeleteFavorite(ctx context.Context, req *payload.IDRequest) (*payload.DeletedResponse, error)
}

type libraryUsecase struct {
	historyRepo  repository.HistoryRepository
	favoriteRepo repository.FavoriteRepository
	validator    *validation.Validator
}

func NewLibraryUsecase(
	historyRepo repository.HistoryRepository,
	favoriteRepo repository.FavoriteRepository,
	validator *validation.Validator,
) LibraryUsecase {
	return &libraryUsecase{
		historyRepo:  historyRepo,
		favoriteRepo: favoriteRepo,
		validator:    validator,
	}
}

func (u *libraryUsecase) ListHistory(ctx context.Context) ([]model.WatchHistory, error) {
	entries, err := u.historyRepo.ListHistory(ctx)
	if err != nil {
		return nil, apperror.Wrap(err, "get history")
	}

	return orEmpty(entries), nil
}

func (u *libraryUsecase) AddHistory(ctx context.Context, req *payload.AddHistoryRequest) (*model.WatchHistory, error) {
	if err := u.validator.Struct(req); err != nil {
		return nil, err
	}

	entry, err := u.historyRepo.RecordHistory(ctx, &model.WatchHistory{
		SeriesID:   req.SeriesID,
		EpisodeID:  req.EpisodeID,
		SeriesName: req.SeriesName,
		Cover:      req.Cover,
		Progress:   req.Progress,
	})
	if err != nil {
		return nil, apperror.Wrap(err, "add history")
	}

	return entry, nil
}

func (u *libraryUsecase) DeleteHistory(
	ctx context.Context,
	req *payload.DeleteHistoryRequest,
) (*payload.DeletedResponse, error) {
	if req.ID == "" {
		deleted, err := u.historyRepo.ClearHistory(ctx)
		if err != nil {
			return nil, apperror.Wrap(err, "clear history")
		}
		return &payload.DeletedResponse{Deleted: deleted}, nil
	}

	deleted, err := u.historyRepo.DeleteHistory(ctx, req.ID)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidID) {
			return nil, ErrHistoryNotFound
		}
		return nil, apperror.Wrap(err, "delete history")
	}
	if deleted == 0 {
		return nil, ErrHistoryNotFound
	}

	return &payload.DeletedResponse{Deleted: deleted}, nil
}

func (u *libraryUsecase) ListFavorites(ctx context.Context) ([]model.Favorite, error) {
	favorites, err := u.favoriteRepo.ListFavorites(ctx)
	if err != nil {
		return nil, apperror.Wrap(err, "get favorites")
	}

	return orEmpty(favorites), nil
}

func (u *libraryUsecase) AddFavorite(ctx context.Context, req *payload.AddFavoriteRequest) (*model.Favorite, error) {
	if err := u.validator.Struct(req); err != nil {
		return nil, err
	}

	_, err := u.favoriteRepo.GetFavoriteBySeries(ctx, req.SeriesID)
	if err == nil {
		return nil, ErrAlreadyFavorite
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, apperror.Wrap(err, "add favorite")
	}

	favorite, err := u.favoriteRepo.AddFavorite(ctx, &model.Favorite{
		SeriesID:   req.SeriesID,
		SeriesName: req.SeriesName,
		Cover:      req.Cover,
	})
	if err != nil {
		return nil, apperror.Wrap(err, "add favorite")
	}

	return favorite, nil
}

func (u *libraryUsecase) DeleteFavorite(ctx context.Context, req *payload.IDRequest) (*payload.DeletedResponse, error) {
	if err := u.validator.Struct(req); err != nil {
		return nil, err
	}

	deleted, err := u.favoriteRepo.DeleteFavorite(ctx, req.ID)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidID) {
			return nil, ErrFavoriteNotFound
		}
		return nil, apperror.Wrap(err, "delete favorite")
	}
	if deleted == 0 {
		return nil, ErrFavoriteNotFound
	}

	return &payload.DeletedResponse{Deleted: deleted}, nil
}
