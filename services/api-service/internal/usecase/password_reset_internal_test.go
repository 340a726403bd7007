package usecase

import (
	"context"
	"errors"
	"regexp"
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
	ucmocks "github.com/vasapolrittideah/streamhub-api/services/api-service/internal/usecase/mocks"
	"github.com/vasapolrittideah/streamhub-api/shared/security"
	"github.com/vasapolrittideah/streamhub-api/shared/validation"
)

var resetTokenPattern = regexp.MustCompile(`^[0-9a-f]{64}$`)

func newTestPasswordResetUsecase(
	t *testing.T,
	userRepo *repomocks.UserRepository,
	sender EmailSender,
	now time.Time,
) *passwordResetUsecase {
	t.Helper()

	v, err := validation.New()
	require.NoError(t, err)

	logger := zerolog.Nop()
	return &passwordResetUsecase{
		userRepo:  userRepo,
		validator: v,
		mailer:    sender,
		apiConfig: &config.APIServiceConfig{
			AppBaseURL: "https://streamhub.test",
			Token:      config.TokenConfig{PasswordResetTokenExpiresIn: time.Hour},
		},
		logger: &logger,
		now:    func() time.Time { return now },
	}
}

func TestPasswordResetUsecase_RequestPasswordReset(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	userID := bson.NewObjectID()
	user := &model.User{ID: userID, Email: "viewer@example.com", Nickname: "Viewer"}

	type fields struct {
		userRepo *repomocks.UserRepository
		sender   *ucmocks.EmailSender
	}
	tests := []struct {
		name     string
		email    string
		mockCall func(f fields)
		wantErr  bool
	}{
		{
			name:  "unknown email performs no writes",
			email: "nobody@example.com",
			mockCall: func(f fields) {
				f.userRepo.On("GetUserByEmail", mock.Anything, "nobody@example.com").
					Return(nil, repository.ErrNotFound).Once()
			},
		},
		{
			name:  "known email stores a token and sends the link",
			email: "Viewer@Example.com",
			mockCall: func(f fields) {
				f.userRepo.On("GetUserByEmail", mock.Anything, "viewer@example.com").Return(user, nil).Once()
				f.userRepo.On("SetResetToken", mock.Anything, userID.Hex(),
					mock.MatchedBy(resetTokenPattern.MatchString), now.Add(time.Hour)).Return(nil).Once()
				f.sender.On("SendHTML", []string{"viewer@example.com"}, "Password Reset Request",
					mock.MatchedBy(func(body string) bool {
						return strings.Contains(body, "https://streamhub.test/reset-password?token=")
					})).Return(nil).Once()
			},
		},
		{
			name:  "email failure is not surfaced",
			email: "viewer@example.com",
			mockCall: func(f fields) {
				f.userRepo.On("GetUserByEmail", mock.Anything, "viewer@example.com").Return(user, nil).Once()
				f.userRepo.On("SetResetToken", mock.Anything, userID.Hex(), mock.Anything, mock.Anything).Return(nil).Once()
				f.sender.On("SendHTML", mock.Anything, mock.Anything, mock.Anything).
					Return(errors.New("535 authentication failed")).Once()
			},
		},
		{
			name:  "storage failure is surfaced",
			email: "viewer@example.com",
			mockCall: func(f fields) {
				f.userRepo.On("GetUserByEmail", mock.Anything, "viewer@example.com").
					Return(nil, errors.New("connection refused")).Once()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fields{userRepo: repomocks.NewUserRepository(t), sender: ucmocks.NewEmailSender(t)}
			tt.mockCall(f)

			u := newTestPasswordResetUsecase(t, f.userRepo, f.sender, now)

			got, err := u.RequestPasswordReset(context.Background(), &payload.ForgotPasswordRequest{Email: tt.email})
			if tt.wantErr {
				assert.ErrorContains(t, err, "Failed to request password reset")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, PasswordResetRequestedMessage, got.Message)
		})
	}
}

func TestPasswordResetUsecase_RequestPasswordReset_Idempotent(t *testing.T) {
	userRepo := repomocks.NewUserRepository(t)
	userRepo.On("GetUserByEmail", mock.Anything, "nobody@example.com").Return(nil, repository.ErrNotFound).Twice()

	u := newTestPasswordResetUsecase(t, userRepo, ucmocks.NewEmailSender(t), time.Now())
	req := &payload.ForgotPasswordRequest{Email: "nobody@example.com"}

	first, err := u.RequestPasswordReset(context.Background(), req)
	require.NoError(t, err)
	second, err := u.RequestPasswordReset(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPasswordResetUsecase_ResetPassword(t *testing.T) {
	expiry := time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC)
	userID := bson.NewObjectID()
	user := &model.User{ID: userID, Email: "viewer@example.com", ResetToken: "tok", ResetTokenExpiry: &expiry}

	type fields struct {
		userRepo *repomocks.UserRepository
	}
	tests := []struct {
		name     string
		now      time.Time
		mockCall func(f fields)
		wantErr  error
	}{
		{
			name: "success just before expiry",
			now:  expiry.Add(-time.Nanosecond),
			mockCall: func(f fields) {
				f.userRepo.On("GetUserByResetToken", mock.Anything, "tok").Return(user, nil).Once()
				f.userRepo.On("ResetPassword", mock.Anything, userID.Hex(), "tok", mock.MatchedBy(func(hash string) bool {
					ok, _ := security.VerifyPassword("Fresh1!x", hash)
					return ok
				})).Return(nil).Once()
			},
		},
		{
			name: "rejected exactly at expiry",
			now:  expiry,
			mockCall: func(f fields) {
				f.userRepo.On("GetUserByResetToken", mock.Anything, "tok").Return(user, nil).Once()
			},
			wantErr: ErrResetTokenExpired,
		},
		{
			name: "rejected after expiry",
			now:  expiry.Add(time.Minute),
			mockCall: func(f fields) {
				f.userRepo.On("GetUserByResetToken", mock.Anything, "tok").Return(user, nil).Once()
			},
			wantErr: ErrResetTokenExpired,
		},
		{
			name: "unknown token",
			now:  expiry.Add(-time.Minute),
			mockCall: func(f fields) {
				f.userRepo.On("GetUserByResetToken", mock.Anything, "tok").Return(nil, repository.ErrNotFound).Once()
			},
			wantErr: ErrResetTokenInvalid,
		},
		{
			name: "token replaced or consumed before the update",
			now:  expiry.Add(-time.Minute),
			mockCall: func(f fields) {
				f.userRepo.On("GetUserByResetToken", mock.Anything, "tok").Return(user, nil).Once()
				f.userRepo.On("ResetPassword", mock.Anything, userID.Hex(), "tok", mock.Anything).
					Return(repository.ErrNotFound).Once()
			},
			wantErr: ErrResetTokenInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fields{userRepo: repomocks.NewUserRepository(t)}
			tt.mockCall(f)

			u := newTestPasswordResetUsecase(t, f.userRepo, nil, tt.now)

			got, err := u.ResetPassword(context.Background(), &payload.ResetPasswordRequest{Token: "tok", Password: "Fresh1!x"})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, PasswordResetDoneMessage, got.Message)
		})
	}
}

func TestPasswordResetUsecase_ResetPassword_SingleUse(t *testing.T) {
	expiry := time.Now().Add(time.Hour)
	userID := bson.NewObjectID()

	userRepo := repomocks.NewUserRepository(t)
	userRepo.On("GetUserByResetToken", mock.Anything, "tok").
		Return(&model.User{ID: userID, ResetToken: "tok", ResetTokenExpiry: &expiry}, nil).Once()
	userRepo.On("ResetPassword", mock.Anything, userID.Hex(), "tok", mock.Anything).Return(nil).Once()
	userRepo.On("GetUserByResetToken", mock.Anything, "tok").Return(nil, repository.ErrNotFound).Once()

	u := newTestPasswordResetUsecase(t, userRepo, nil, time.Now())
	req := &payload.ResetPasswordRequest{Token: "tok", Password: "Fresh1!x"}

	_, err := u.ResetPassword(context.Background(), req)
	require.NoError(t, err)

	_, err = u.ResetPassword(context.Background(), req)
	assert.ErrorIs(t, err, ErrResetTokenInvalid)
}

func TestPasswordResetUsecase_CleanupExpiredTokens(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	userRepo := repomocks.NewUserRepository(t)
	userRepo.On("ClearExpiredResetTokens", mock.Anything, now).Return(int64(2), nil).Once()

	cleared, err := newTestPasswordResetUsecase(t, userRepo, nil, now).CleanupExpiredTokens(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), cleared)
}

func TestGenerateResetToken(t *testing.T) {
	first, err := generateResetToken()
	require.NoError(t, err)
	second, err := generateResetToken()
	require.NoError(t, err)

	assert.Regexp(t, resetTokenPattern, first)
	assert.NotEqual(t, first, second)
}
