package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/config"
	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/payload"
	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/repository"
	"github.com/vasapolrittideah/streamhub-api/shared/apperror"
	"github.com/vasapolrittideah/streamhub-api/shared/mailer"
	"github.com/vasapolrittideah/streamhub-api/shared/security"
	"github.com/vasapolrittideah/streamhub-api/shared/validation"
)

const (
	resetTokenBytes = 32

	// PasswordResetRequestedMessage is the answer to every reset request,
	// whether or not the account exists.
	PasswordResetRequestedMessage = "If an account with that email exists, a password reset link has been sent"
	PasswordResetDoneMessage      = "Password has been reset successfully"
)

// PasswordResetUsecase defines the business logic for password reset token operations.
type PasswordResetUsecase interface {
	// RequestPasswordReset issues a reset token and emails the reset link.
	RequestPasswordReset(ctx context.Context, req *payload.ForgotPasswordRequest) (*payload.MessageResponse, error)

	// ResetPassword consumes a reset token and replaces the password.
	ResetPassword(ctx context.Context, req *payload.ResetPasswordRequest) (*payload.MessageResponse, error)

	// CleanupExpiredTokens removes reset tokens that can no longer be used.
	CleanupExpiredTokens(ctx context.Context) (int64, error)
}

type passwordResetUsecase struct {
	userRepo  repository.UserRepository
	validator *validation.Validator
	mailer    EmailSender
	apiConfig *config.APIServiceConfig
	logger    *zerolog.Logger
	now       func() time.Time
}

// NewPasswordResetUsecase creates a new instance of PasswordResetUsecase.
func NewPasswordResetUsecase(
	userRepo repository.UserRepository,
	validator *validation.Validator,
	mailer EmailSender,
	apiConfig *config.APIServiceConfig,
	logger *zerolog.Logger,
) PasswordResetUsecase {
	return &passwordResetUsecase{
		userRepo:  userRepo,
		validator: validator,
		mailer:    mailer,
		apiConfig: apiConfig,
		logger:    logger,
		now:       time.Now,
	}
}

func (u *passwordResetUsecase) RequestPasswordReset(
	ctx context.Context,
	req *payload.ForgotPasswordRequest,
) (*payload.MessageResponse, error) {
	if err := u.validator.Struct(req); err != nil {
		return nil, err
	}

	response := &payload.MessageResponse{Message: PasswordResetRequestedMessage}

	user, err := u.userRepo.GetUserByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// To prevent email enumeration, do not reveal that the email does not exist.
			return response, nil
		}
		return nil, apperror.Wrap(err, "request password reset")
	}

	token, err := generateResetToken()
	if err != nil {
		return nil, apperror.Wrap(err, "generate reset token")
	}

	expiresIn := u.apiConfig.Token.PasswordResetTokenExpiresIn
	if err := u.userRepo.SetResetToken(ctx, user.ID.Hex(), token, u.now().Add(expiresIn)); err != nil {
		return nil, apperror.Wrap(err, "request password reset")
	}

	// Delivery failures are only logged so the response stays identical.
	if err := u.sendResetEmail(user.Email, user.Nickname, token, expiresIn); err != nil {
		u.logger.Warn().Err(err).Str("user_id", user.ID.Hex()).Msg("failed to send password reset email")
	}

	return response, nil
}

func (u *passwordResetUsecase) ResetPassword(
	ctx context.Context,
	req *payload.ResetPasswordRequest,
) (*payload.MessageResponse, error) {
	if err := u.validator.Struct(req); err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetUserByResetToken(ctx, req.Token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrResetTokenInvalid
		}
		return nil, apperror.Wrap(err, "reset password")
	}

	if user.ResetTokenExpiry == nil || !u.now().Before(*user.ResetTokenExpiry) {
		return nil, ErrResetTokenExpired
	}

	passwordHash, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, apperror.Wrap(err, "hash password")
	}

	if err := u.userRepo.ResetPassword(ctx, user.ID.Hex(), req.Token, passwordHash); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrResetTokenInvalid
		}
		return nil, apperror.Wrap(err, "reset password")
	}

	return &payload.MessageResponse{Message: PasswordResetDoneMessage}, nil
}

func (u *passwordResetUsecase) CleanupExpiredTokens(ctx context.Context) (int64, error) {
	cleared, err := u.userRepo.ClearExpiredResetTokens(ctx, u.now())
	if err != nil {
		return 0, apperror.Wrap(err, "clear expired reset tokens")
	}

	return cleared, nil
}

func (u *passwordResetUsecase) sendResetEmail(to, name, token string, expiresIn time.Duration) error {
	if u.mailer == nil {
		return mailer.ErrMailerDisabled
	}

	htmlBody, err := mailer.RenderPasswordReset(mailer.PasswordResetData{
		Name:      name,
		Link:      fmt.Sprintf("%s/reset-password?token=%s", u.apiConfig.AppBaseURL, token),
		ExpiresIn: expiresIn,
	})
	if err != nil {
		return err
	}

	return u.mailer.SendHTML([]string{to}, "Password Reset Request", htmlBody)
}

func generateResetToken() (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	return hex.EncodeToString(buf), nil
}
