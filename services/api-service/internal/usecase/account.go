package usecase

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/model"
	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/payload"
	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/repository"
	"github.com/vasapolrittideah/streamhub-api/shared/apperror"
	"github.com/vasapolrittideah/streamhub-api/shared/security"
	"github.com/vasapolrittideah/streamhub-api/shared/validation"
)

const avatarFolder = "avatars"

// AccountUsecase manages the profile of the signed-in user.
type AccountUsecase interface {
	UpdateProfile(ctx context.Context, userID string, req *payload.UpdateProfileRequest) (*model.User, error)
	ChangePassword(ctx context.Context, userID string, req *payload.ChangePasswordRequest) (*payload.MessageResponse, error)
	UpdateAvatar(ctx context.Context, userID string, req *payload.UpdateAvatarRequest) (*model.User, error)
}

type accountUsecase struct {
	userRepo  repository.UserRepository
	validator *validation.Validator
	images    ImageStore
	logger    *zerolog.Logger
}

func NewAccountUsecase(
	userRepo repository.UserRepository,
	validator *validation.Validator,
	images ImageStore,
	logger *zerolog.Logger,
) AccountUsecase {
	return &accountUsecase{
		userRepo:  userRepo,
		validator: validator,
		images:    images,
		logger:    logger,
	}
}

func (u *accountUsecase) UpdateProfile(
	ctx context.Context,
	userID string,
	req *payload.UpdateProfileRequest,
) (*model.User, error) {
	if err := u.validator.Struct(req); err != nil {
		return nil, err
	}

	params := repository.UpdateUserParams{
		Nickname: req.Nickname,
		Phone:    req.Phone,
		Sex:      req.Sex,
		DOB:      req.DOB,
	}
	if params == (repository.UpdateUserParams{}) {
		return nil, apperror.Validation("No profile fields to update")
	}

	user, err := u.userRepo.UpdateUser(ctx, userID, params)
	if err != nil {
		return nil, userError(err, "update profile")
	}

	return user, nil
}

// ChangePassword requires the current password unless the account was
// created through Google and never had one.
func (u *accountUsecase) ChangePassword(
	ctx context.Context,
	userID string,
	req *payload.ChangePasswordRequest,
) (*payload.MessageResponse, error) {
	if err := u.validator.Struct(req); err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetUser(ctx, userID)
	if err != nil {
		return nil, userError(err, "change password")
	}

	if user.HasPassword() {
		if req.CurrentPassword == "" {
			return nil, apperror.Validation("Current password is required")
		}

		ok, err := security.VerifyPassword(req.CurrentPassword, user.Password)
		if err != nil || !ok {
			return nil, ErrIncorrectPassword
		}
	}

	passwordHash, err := security.HashPassword(req.NewPassword)
	if err != nil {
		return nil, apperror.Wrap(err, "hash password")
	}

	if _, err := u.userRepo.UpdateUser(ctx, userID, repository.UpdateUserParams{PasswordHash: &passwordHash}); err != nil {
		return nil, userError(err, "change password")
	}

	return &payload.MessageResponse{Message: "Password changed successfully"}, nil
}

func (u *accountUsecase) UpdateAvatar(
	ctx context.Context,
	userID string,
	req *payload.UpdateAvatarRequest,
) (*model.User, error) {
	if err := u.validator.Struct(req); err != nil {
		return nil, err
	}

	if u.images == nil {
		return nil, apperror.Wrap(ErrImageStoreDisabled, "update avatar")
	}

	current, err := u.userRepo.GetUser(ctx, userID)
	if err != nil {
		return nil, userError(err, "update avatar")
	}

	image, err := u.images.Upload(ctx, req.Image, avatarFolder)
	if err != nil {
		return nil, apperror.Wrap(err, "upload avatar")
	}

	user, err := u.userRepo.UpdateUser(ctx, userID, repository.UpdateUserParams{
		Avatar:         &image.URL,
		AvatarPublicID: &image.PublicID,
	})
	if err != nil {
		return nil, userError(err, "update avatar")
	}

	if current.AvatarPublicID != "" {
		if err := u.images.Destroy(ctx, current.AvatarPublicID); err != nil {
			u.logger.Warn().Err(err).Str("public_id", current.AvatarPublicID).Msg("failed to delete previous avatar")
		}
	}

	return user, nil
}

func userError(err error, action string) error {
	if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrInvalidID) {
		return ErrUserNotFound
	}
	return apperror.Wrap(err, action)
}
