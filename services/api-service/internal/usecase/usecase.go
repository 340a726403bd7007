package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/vasapolrittideah/streamhub-api/shared/apperror"
	"github.com/vasapolrittideah/streamhub-api/shared/provider"
)

// Expected failures, returned to clients as {success:false,error}.
var (
	ErrEmailExists        = apperror.Business("Email already exists")
	ErrInvalidCredentials = apperror.Business("Invalid email or password")
	ErrUserNotFound       = apperror.Business("User not found")
	ErrUnauthorized       = apperror.Business("Unauthorized")
	ErrIncorrectPassword  = apperror.Business("Current password is incorrect")
	ErrResetTokenInvalid  = apperror.Business("Invalid reset token")
	ErrResetTokenExpired  = apperror.Business("Reset token has expired")
	ErrSeriesNotFound     = apperror.Business("Series not found")
	ErrEpisodeNotFound    = apperror.Business("Episode not found")
	ErrEpisodeExists      = apperror.Business("Episode number already exists for this series")
	ErrGenreNotFound      = apperror.Business("Genre not found")
	ErrProductNotFound    = apperror.Business("Product not found")
	ErrTodoNotFound       = apperror.Business("Todo not found")
	ErrHistoryNotFound    = apperror.Business("History entry not found")
	ErrFavoriteNotFound   = apperror.Business("Favorite not found")
	ErrAlreadyFavorite    = apperror.Business("Series is already in favorites")
)

// Integration failures for adapters that were not configured at startup.
var (
	ErrImageStoreDisabled = errors.New("image CDN is not configured")
	ErrVideoHostDisabled  = errors.New("video CDN is not configured")
	ErrOAuthDisabled      = errors.New("Google OAuth is not configured")
)

// EmailSender delivers transactional email.
type EmailSender interface {
	SendHTML(to []string, subject, htmlBody string) error
}

// ImageStore uploads and deletes images on the image CDN.
type ImageStore interface {
	Upload(ctx context.Context, file, folder string) (*provider.UploadedImage, error)
	Destroy(ctx context.Context, publicID string) error
}

// VideoHost creates and deletes videos on the video CDN.
type VideoHost interface {
	CreateVideo(ctx context.Context, title string) (*provider.Video, error)
	DeleteVideo(ctx context.Context, guid string) error
	EmbedURL(guid string) string
}

// OAuthProvider resolves Google credentials to a profile.
type OAuthProvider interface {
	Exchange(ctx context.Context, code, redirectURI string) (*provider.GoogleProfile, error)
	ValidateIDToken(ctx context.Context, idToken string) (*provider.GoogleProfile, error)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
