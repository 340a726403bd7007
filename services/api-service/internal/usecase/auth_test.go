package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/config"
	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/model"
	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/payload"
	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/repository"
	repomocks "github.com/vasapolrittideah/streamhub-api/services/api-service/internal/repository/mocks"
	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/usecase"
	ucmocks "github.com/vasapolrittideah/streamhub-api/services/api-service/internal/usecase/mocks"
	"github.com/vasapolrittideah/streamhub-api/shared/apperror"
	"github.com/vasapolrittideah/streamhub-api/shared/auth"
	"github.com/vasapolrittideah/streamhub-api/shared/provider"
	"github.com/vasapolrittideah/streamhub-api/shared/security"
	"github.com/vasapolrittideah/streamhub-api/shared/validation"
)

func testConfig() *config.APIServiceConfig {
	return &config.APIServiceConfig{
		AppBaseURL: "https://streamhub.test",
		Token: config.TokenConfig{
			Secret:                      "test-secret",
			Issuer:                      "streamhub-api",
			Audience:                    "streamhub-web",
			SessionTokenExpiresIn:       7 * 24 * time.Hour,
			PasswordResetTokenExpiresIn: time.Hour,
		},
	}
}

func testValidator(t *testing.T) *validation.Validator {
	t.Helper()

	v, err := validation.New()
	require.NoError(t, err)
	return v
}

func testLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func mustHash(t *testing.T, password string) string {
	t.Helper()

	hash, err := security.HashPassword(password)
	require.NoError(t, err)
	return hash
}

func newAuthUsecase(t *testing.T, userRepo *repomocks.UserRepository, oauth usecase.OAuthProvider) usecase.AuthUsecase {
	t.Helper()

	cfg := testConfig()
	return usecase.NewAuthUsecase(
		userRepo,
		testValidator(t),
		auth.NewJWTAuthenticator(cfg.Token.Audience, cfg.Token.Issuer),
		oauth,
		cfg,
		testLogger(),
	)
}

func assertSessionToken(t *testing.T, token string, user *model.User) {
	t.Helper()

	cfg := testConfig()
	jwtAuth := auth.NewJWTAuthenticator(cfg.Token.Audience, cfg.Token.Issuer)

	claims, err := jwtAuth.ValidateSessionToken(token, cfg.Token.Secret)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestAuthUsecase_Register(t *testing.T) {
	type fields struct {
		userRepo *repomocks.UserRepository
	}
	tests := []struct {
		name     string
		req      *payload.RegisterRequest
		mockCall func(f fields)
		wantFail bool
		wantErr  error
		wantKind apperror.Kind
	}{
		{
			name: "success: email is lower-cased and nickname defaults to Guest",
			req:  &payload.RegisterRequest{Email: "Viewer@Example.COM", Password: "Secret1!"},
			mockCall: func(f fields) {
				f.userRepo.On("GetUserByEmail", mock.Anything, "viewer@example.com").
					Return(nil, repository.ErrNotFound).Once()
				f.userRepo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
					ok, _ := security.VerifyPassword("Secret1!", u.Password)
					return u.Email == "viewer@example.com" && u.Nickname == "Guest" && ok
				})).
					Return(func(_ context.Context, u *model.User) (*model.User, error) {
						u.ID = bson.NewObjectID()
						return u, nil
					}).Once()
			},
		},
		{
			name: "error: email already exists",
			req:  &payload.RegisterRequest{Email: "viewer@example.com", Password: "Secret1!"},
			mockCall: func(f fields) {
				f.userRepo.On("GetUserByEmail", mock.Anything, "viewer@example.com").
					Return(&model.User{Email: "viewer@example.com"}, nil).Once()
			},
			wantFail: true,
			wantErr:  usecase.ErrEmailExists,
			wantKind: apperror.KindBusiness,
		},
		{
			name: "error: concurrent registration hits the unique index",
			req:  &payload.RegisterRequest{Email: "viewer@example.com", Password: "Secret1!"},
			mockCall: func(f fields) {
				f.userRepo.On("GetUserByEmail", mock.Anything, "viewer@example.com").
					Return(nil, repository.ErrNotFound).Once()
				f.userRepo.On("CreateUser", mock.Anything, mock.Anything).
					Return(nil, repository.ErrDuplicateEmail).Once()
			},
			wantFail: true,
			wantErr:  usecase.ErrEmailExists,
			wantKind: apperror.KindBusiness,
		},
		{
			name:     "error: weak password",
			req:      &payload.RegisterRequest{Email: "viewer@example.com", Password: "secret"},
			mockCall: func(f fields) {},
			wantFail: true,
			wantKind: apperror.KindValidation,
		},
		{
			name:     "error: password longer than 72 bytes is a validation failure",
			req:      &payload.RegisterRequest{Email: "viewer@example.com", Password: "Secret1!" + strings.Repeat("x", 80)},
			mockCall: func(f fields) {},
			wantFail: true,
			wantKind: apperror.KindValidation,
		},
		{
			name:     "error: malformed email",
			req:      &payload.RegisterRequest{Email: "viewer.example.com", Password: "Secret1!"},
			mockCall: func(f fields) {},
			wantFail: true,
			wantKind: apperror.KindValidation,
		},
		{
			name: "error: database unavailable",
			req:  &payload.RegisterRequest{Email: "viewer@example.com", Password: "Secret1!"},
			mockCall: func(f fields) {
				f.userRepo.On("GetUserByEmail", mock.Anything, "viewer@example.com").
					Return(nil, errors.New("server selection timeout")).Once()
			},
			wantFail: true,
			wantKind: apperror.KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fields{userRepo: repomocks.NewUserRepository(t)}
			tt.mockCall(f)

			got, err := newAuthUsecase(t, f.userRepo, nil).Register(context.Background(), tt.req)

			if tt.wantFail {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, apperror.KindOf(err))
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				return
			}

			require.NoError(t, err)
			assertSessionToken(t, got.Token, got.User)
		})
	}
}

func TestAuthUsecase_Login(t *testing.T) {
	userID := bson.NewObjectID()
	stored := &model.User{ID: userID, Email: "a@b.com", Password: mustHash(t, "Right1!")}

	type fields struct {
		userRepo *repomocks.UserRepository
	}
	tests := []struct {
		name     string
		req      *payload.LoginRequest
		mockCall func(f fields)
		wantErr  error
	}{
		{
			name: "success",
			req:  &payload.LoginRequest{Email: "A@B.com", Password: "Right1!"},
			mockCall: func(f fields) {
				f.userRepo.On("GetUserByEmail", mock.Anything, "a@b.com").Return(stored, nil).Once()
			},
		},
		{
			name: "error: wrong password",
			req:  &payload.LoginRequest{Email: "a@b.com", Password: "Wrong1!"},
			mockCall: func(f fields) {
				f.userRepo.On("GetUserByEmail", mock.Anything, "a@b.com").Return(stored, nil).Once()
			},
			wantErr: usecase.ErrInvalidCredentials,
		},
		{
			name: "error: unknown email gives the same answer",
			req:  &payload.LoginRequest{Email: "nobody@b.com", Password: "Wrong1!"},
			mockCall: func(f fields) {
				f.userRepo.On("GetUserByEmail", mock.Anything, "nobody@b.com").Return(nil, repository.ErrNotFound).Once()
			},
			wantErr: usecase.ErrInvalidCredentials,
		},
		{
			name: "error: account created through Google has no password",
			req:  &payload.LoginRequest{Email: "a@b.com", Password: "Right1!"},
			mockCall: func(f fields) {
				f.userRepo.On("GetUserByEmail", mock.Anything, "a@b.com").
					Return(&model.User{ID: userID, Email: "a@b.com", GoogleID: "g-1"}, nil).Once()
			},
			wantErr: usecase.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fields{userRepo: repomocks.NewUserRepository(t)}
			tt.mockCall(f)

			got, err := newAuthUsecase(t, f.userRepo, nil).Login(context.Background(), tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, "Invalid email or password", apperror.Message(err))
				assert.Equal(t, apperror.KindBusiness, apperror.KindOf(err))
				return
			}

			require.NoError(t, err)
			assertSessionToken(t, got.Token, stored)
		})
	}
}

func TestAuthUsecase_GoogleAuth(t *testing.T) {
	profile := &provider.GoogleProfile{ID: "g-1", Email: "viewer@example.com", Name: "Viewer"}

	tests := []struct {
		name     string
		req      *payload.GoogleAuthRequest
		mockCall func(o *ucmocks.OAuthProvider)
		want     *provider.GoogleProfile
		wantMsg  string
		wantKind apperror.Kind
	}{
		{
			name: "success: authorization code",
			req:  &payload.GoogleAuthRequest{Code: "code-1", RedirectURI: "https://app/cb"},
			mockCall: func(o *ucmocks.OAuthProvider) {
				o.On("Exchange", mock.Anything, "code-1", "https://app/cb").Return(profile, nil).Once()
			},
			want: profile,
		},
		{
			name: "success: id token",
			req:  &payload.GoogleAuthRequest{IDToken: "id-token"},
			mockCall: func(o *ucmocks.OAuthProvider) {
				o.On("ValidateIDToken", mock.Anything, "id-token").Return(profile, nil).Once()
			},
			want: profile,
		},
		{
			name: "error: provider message is passed through",
			req:  &payload.GoogleAuthRequest{Code: "stale"},
			mockCall: func(o *ucmocks.OAuthProvider) {
				o.On("Exchange", mock.Anything, "stale", "").
					Return(nil, &provider.OAuthError{Message: "Bad Request"}).Once()
			},
			wantMsg:  "Bad Request",
			wantKind: apperror.KindBusiness,
		},
		{
			name:     "error: neither code nor id token",
			req:      &payload.GoogleAuthRequest{},
			mockCall: func(o *ucmocks.OAuthProvider) {},
			wantKind: apperror.KindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oauth := ucmocks.NewOAuthProvider(t)
			tt.mockCall(oauth)

			got, err := newAuthUsecase(t, repomocks.NewUserRepository(t), oauth).GoogleAuth(context.Background(), tt.req)
			if tt.want == nil {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, apperror.KindOf(err))
				if tt.wantMsg != "" {
					assert.Equal(t, tt.wantMsg, apperror.Message(err))
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuthUsecase_GoogleLogin(t *testing.T) {
	existingID := bson.NewObjectID()
	req := &payload.GoogleLoginRequest{GoogleID: "g-1", Email: "Viewer@example.com", Name: "Viewer", Picture: "https://p/1.png"}

	type fields struct {
		userRepo *repomocks.UserRepository
	}
	tests := []struct {
		name     string
		mockCall func(f fields)
	}{
		{
			name: "linked account signs in",
			mockCall: func(f fields) {
				f.userRepo.On("GetUserByGoogleID", mock.Anything, "g-1").
					Return(&model.User{ID: existingID, Email: "viewer@example.com", GoogleID: "g-1"}, nil).Once()
			},
		},
		{
			name: "password account is linked by email",
			mockCall: func(f fields) {
				f.userRepo.On("GetUserByGoogleID", mock.Anything, "g-1").Return(nil, repository.ErrNotFound).Once()
				f.userRepo.On("GetUserByEmail", mock.Anything, "viewer@example.com").
					Return(&model.User{ID: existingID, Email: "viewer@example.com"}, nil).Once()
				f.userRepo.On("UpdateUser", mock.Anything, existingID.Hex(), mock.MatchedBy(func(p repository.UpdateUserParams) bool {
					return *p.GoogleID == "g-1" && *p.Avatar == "https://p/1.png"
				})).Return(&model.User{ID: existingID, Email: "viewer@example.com", GoogleID: "g-1"}, nil).Once()
			},
		},
		{
			name: "new account is created from the profile",
			mockCall: func(f fields) {
				f.userRepo.On("GetUserByGoogleID", mock.Anything, "g-1").Return(nil, repository.ErrNotFound).Once()
				f.userRepo.On("GetUserByEmail", mock.Anything, "viewer@example.com").Return(nil, repository.ErrNotFound).Once()
				f.userRepo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
					return u.Nickname == "Viewer" && u.GoogleID == "g-1" && u.Password == "" && u.Avatar == "https://p/1.png"
				})).
					Return(func(_ context.Context, u *model.User) (*model.User, error) {
						u.ID = existingID
						return u, nil
					}).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fields{userRepo: repomocks.NewUserRepository(t)}
			tt.mockCall(f)

			got, err := newAuthUsecase(t, f.userRepo, nil).GoogleLogin(context.Background(), req)
			require.NoError(t, err)
			assert.Equal(t, existingID, got.User.ID)
			assertSessionToken(t, got.Token, got.User)
		})
	}
}

func TestAuthUsecase_Me(t *testing.T) {
	t.Run("without a session", func(t *testing.T) {
		_, err := newAuthUsecase(t, repomocks.NewUserRepository(t), nil).Me(context.Background(), "")
		assert.ErrorIs(t, err, usecase.ErrUnauthorized)
	})

	t.Run("deleted account", func(t *testing.T) {
		userRepo := repomocks.NewUserRepository(t)
		userRepo.On("GetUser", mock.Anything, "abc").Return(nil, repository.ErrInvalidID).Once()

		_, err := newAuthUsecase(t, userRepo, nil).Me(context.Background(), "abc")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}
