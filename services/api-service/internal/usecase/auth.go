package usecase

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/config"
	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/model"
	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/payload"
	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/repository"
	"github.com/vasapolrittideah/streamhub-api/shared/apperror"
	"github.com/vasapolrittideah/streamhub-api/shared/auth"
	"github.com/vasapolrittideah/streamhub-api/shared/provider"
	"github.com/vasapolrittideah/streamhub-api/shared/security"
	"github.com/vasapolrittideah/streamhub-api/shared/validation"
)

const defaultNickname = "Guest"

// AuthUsecase defines the interface for authentication-related use cases.
type AuthUsecase interface {
	Register(ctx context.Context, req *payload.RegisterRequest) (*payload.AuthResponse, error)
	Login(ctx context.Context, req *payload.LoginRequest) (*payload.AuthResponse, error)

	// GoogleAuth resolves an authorization code or ID token to a Google
	// profile. It does not sign the user in.
	GoogleAuth(ctx context.Context, req *payload.GoogleAuthRequest) (*provider.GoogleProfile, error)

	// GoogleLogin signs in the account linked to a Google profile, linking
	// or creating one when needed.
	GoogleLogin(ctx context.Context, req *payload.GoogleLoginRequest) (*payload.AuthResponse, error)

	Me(ctx context.Context, userID string) (*model.User, error)
	GetUserByEmail(ctx context.Context, req *payload.UserByEmailRequest) (*model.User, error)
}

type authUsecase struct {
	userRepo  repository.UserRepository
	validator *validation.Validator
	jwtAuth   auth.JWTAuthenticator
	oauth     OAuthProvider
	apiConfig *config.APIServiceConfig
	logger    *zerolog.Logger
}

func NewAuthUsecase(
	userRepo repository.UserRepository,
	validator *validation.Validator,
	jwtAuth auth.JWTAuthenticator,
	oauth OAuthProvider,
	apiConfig *config.APIServiceConfig,
	logger *zerolog.Logger,
) AuthUsecase {
	return &authUsecase{
		userRepo:  userRepo,
		validator: validator,
		jwtAuth:   jwtAuth,
		oauth:     oauth,
		apiConfig: apiConfig,
		logger:    logger,
	}
}

func (u *authUsecase) Register(ctx context.Context, req *payload.RegisterRequest) (*payload.AuthResponse, error) {
	if err := u.validator.Struct(req); err != nil {
		return nil, err
	}

	email := normalizeEmail(req.Email)

	_, err := u.userRepo.GetUserByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, apperror.Wrap(err, "register user")
	}

	passwordHash, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, apperror.Wrap(err, "hash password")
	}

	nickname := req.Nickname
	if nickname == "" {
		nickname = defaultNickname
	}

	user, err := u.userRepo.CreateUser(ctx, &model.User{
		Email:    email,
		Password: passwordHash,
		Nickname: nickname,
		Phone:    req.Phone,
		Sex:      req.Sex,
		DOB:      req.DOB,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailExists
		}
		return nil, apperror.Wrap(err, "register user")
	}

	return u.signIn(user)
}

// Login answers every failure with ErrInvalidCredentials and spends a
// password comparison even when the account is missing.
func (u *authUsecase) Login(ctx context.Context, req *payload.LoginRequest) (*payload.AuthResponse, error) {
	if err := u.validator.Struct(req); err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetUserByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			security.SimulatePasswordCheck(req.Password)
			return nil, ErrInvalidCredentials
		}
		return nil, apperror.Wrap(err, "login")
	}

	if !user.HasPassword() {
		security.SimulatePasswordCheck(req.Password)
		return nil, ErrInvalidCredentials
	}

	ok, err := security.VerifyPassword(req.Password, user.Password)
	if err != nil || !ok {
		return nil, ErrInvalidCredentials
	}

	if security.NeedsRehash(user.Password) {
		u.rehashPassword(ctx, user, req.Password)
	}

	return u.signIn(user)
}

func (u *authUsecase) GoogleAuth(ctx context.Context, req *payload.GoogleAuthRequest) (*provider.GoogleProfile, error) {
	if err := u.validator.Struct(req); err != nil {
		return nil, err
	}

	if u.oauth == nil {
		return nil, apperror.Wrap(ErrOAuthDisabled, "authenticate with Google")
	}

	var (
		profile *provider.GoogleProfile
		err     error
	)
	if req.IDToken != "" {
		profile, err = u.oauth.ValidateIDToken(ctx, req.IDToken)
	} else {
		profile, err = u.oauth.Exchange(ctx, req.Code, req.RedirectURI)
	}
	if err != nil {
		var oauthErr *provider.OAuthError
		if errors.As(err, &oauthErr) {
			return nil, apperror.Business(oauthErr.Message)
		}
		if errors.Is(err, provider.ErrInvalidGoogleAudience) {
			return nil, apperror.Business("Invalid Google token")
		}
		return nil, apperror.Wrap(err, "authenticate with Google")
	}

	return profile, nil
}

func (u *authUsecase) GoogleLogin(ctx context.Context, req *payload.GoogleLoginRequest) (*payload.AuthResponse, error) {
	if err := u.validator.Struct(req); err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetUserByGoogleID(ctx, req.GoogleID)
	if err == nil {
		return u.signIn(user)
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, apperror.Wrap(err, "login with Google")
	}

	email := normalizeEmail(req.Email)

	user, err = u.userRepo.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		user, err = u.linkGoogleAccount(ctx, user, req)
		if err != nil {
			return nil, apperror.Wrap(err, "link Google account")
		}
	case errors.Is(err, repository.ErrNotFound):
		nickname := req.Name
		if nickname == "" {
			nickname = defaultNickname
		}

		user, err = u.userRepo.CreateUser(ctx, &model.User{
			Email:    email,
			Nickname: nickname,
			Avatar:   req.Picture,
			GoogleID: req.GoogleID,
		})
		if err != nil {
			if errors.Is(err, repository.ErrDuplicateEmail) {
				return nil, ErrEmailExists
			}
			return nil, apperror.Wrap(err, "login with Google")
		}
	default:
		return nil, apperror.Wrap(err, "login with Google")
	}

	return u.signIn(user)
}

func (u *authUsecase) Me(ctx context.Context, userID string) (*model.User, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}

	user, err := u.userRepo.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrInvalidID) {
			return nil, ErrUserNotFound
		}
		return nil, apperror.Wrap(err, "get user")
	}

	return user, nil
}

func (u *authUsecase) GetUserByEmail(ctx context.Context, req *payload.UserByEmailRequest) (*model.User, error) {
	if err := u.validator.Struct(req); err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetUserByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, apperror.Wrap(err, "get user")
	}

	return user, nil
}

func (u *authUsecase) linkGoogleAccount(
	ctx context.Context,
	user *model.User,
	req *payload.GoogleLoginRequest,
) (*model.User, error) {
	params := repository.UpdateUserParams{GoogleID: &req.GoogleID}
	if user.Avatar == "" && req.Picture != "" {
		params.Avatar = &req.Picture
	}

	return u.userRepo.UpdateUser(ctx, user.ID.Hex(), params)
}

// rehashPassword upgrades a legacy hash after a successful login. Failures
// are logged because the login itself already succeeded.
func (u *authUsecase) rehashPassword(ctx context.Context, user *model.User, password string) {
	passwordHash, err := security.HashPassword(password)
	if err == nil {
		_, err = u.userRepo.UpdateUser(ctx, user.ID.Hex(), repository.UpdateUserParams{PasswordHash: &passwordHash})
	}
	if err != nil {
		u.logger.Warn().Err(err).Str("user_id", user.ID.Hex()).Msg("failed to upgrade password hash")
	}
}

func (u *authUsecase) signIn(user *model.User) (*payload.AuthResponse, error) {
	claims := u.jwtAuth.NewSessionClaims(user.ID.Hex(), user.Email, u.apiConfig.Token.SessionTokenExpiresIn)

	token, err := u.jwtAuth.GenerateToken(claims, u.apiConfig.Token.Secret)
	if err != nil {
		return nil, apperror.Wrap(err, "generate session token")
	}

	return &payload.AuthResponse{Token: token, User: user}, nil
}
