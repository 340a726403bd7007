package repository

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/model"
	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/store"
)

// ErrDuplicateEmail is returned when a user with the same email already exists.
var ErrDuplicateEmail = errors.New("email already exists")

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	GetUser(ctx context.Context, id string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByGoogleID(ctx context.Context, googleID string) (*model.User, error)
	GetUserByResetToken(ctx context.Context, token string) (*model.User, error)
	UpdateUser(ctx context.Context, id string, params UpdateUserParams) (*model.User, error)
	SetResetToken(ctx context.Context, id string, token string, expiresAt time.Time) error
	ResetPassword(ctx context.Context, id string, token string, passwordHash string) error
	ClearExpiredResetTokens(ctx context.Context, now time.Time) (int64, error)
}

// UpdateUserParams defines the optional parameters for updating a user.
// Only the fields that are not nil will be updated.
type UpdateUserParams struct {
	Nickname       *string
	Avatar         *string
	AvatarPublicID *string
	Phone          *string
	Sex            *string
	DOB            *string
	GoogleID       *string
	PasswordHash   *string
}

func (p UpdateUserParams) setDocument() bson.M {
	set := bson.M{}
	fields := map[string]*string{
		"nickname":       p.Nickname,
		"avatar":         p.Avatar,
		"avatarPublicId": p.AvatarPublicID,
		"phone":          p.Phone,
		"sex":            p.Sex,
		"dob":            p.DOB,
		"google_id":      p.GoogleID,
		"password":       p.PasswordHash,
	}
	for key, value := range fields {
		if value != nil {
			set[key] = *value
		}
	}
	return set
}

type userRepository struct {
	store store.Store
}

func NewUserRepository(ctx context.Context, logger *zerolog.Logger, s store.Store) UserRepository {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "google_id", Value: 1}},
			Options: options.Index().SetSparse(true),
		},
		{
			Keys:    bson.D{{Key: "resetToken", Value: 1}},
			Options: options.Index().SetSparse(true),
		},
	}

	if err := s.EnsureIndexes(ctx, UserCollection, indexes); err != nil {
		logger.Fatal().Err(err).Msg("failed to create user indexes")
	}

	return &userRepository{store: s}
}

func (r *userRepository) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	id, err := saveDocument(ctx, r.store, UserCollection, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	user.ID = id
	return user, nil
}

func (r *userRepository) GetUser(ctx context.Context, id string) (*model.User, error) {
	return findByID[model.User](ctx, r.store, UserCollection, id)
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return findOne[model.User](ctx, r.store, UserCollection, bson.M{"email": email})
}

func (r *userRepository) GetUserByGoogleID(ctx context.Context, googleID string) (*model.User, error) {
	return findOne[model.User](ctx, r.store, UserCollection, bson.M{"google_id": googleID})
}

func (r *userRepository) GetUserByResetToken(ctx context.Context, token string) (*model.User, error) {
	return findOne[model.User](ctx, r.store, UserCollection, bson.M{"resetToken": token})
}

func (r *userRepository) UpdateUser(ctx context.Context, id string, params UpdateUserParams) (*model.User, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	set := params.setDocument()
	if len(set) == 0 {
		return nil, errors.New("no user fields to update")
	}
	set["updatedAt"] = time.Now()

	matched, err := r.store.Update(ctx, UserCollection, bson.M{"_id": objectID}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, ErrNotFound
	}

	return r.GetUser(ctx, id)
}

func (r *userRepository) SetResetToken(ctx context.Context, id string, token string, expiresAt time.Time) error {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	_, err = r.store.Update(ctx, UserCollection, bson.M{"_id": objectID}, bson.M{
		"$set": bson.M{
			"resetToken":       token,
			"resetTokenExpiry": expiresAt,
			"updatedAt":        time.Now(),
		},
	})
	return err
}

// ResetPassword stores a new password hash and consumes token. It returns
// ErrNotFound when token is no longer the user's current reset token.
func (r *userRepository) ResetPassword(ctx context.Context, id string, token string, passwordHash string) error {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	matched, err := r.store.Update(ctx, UserCollection,
		bson.M{"_id": objectID, "resetToken": token},
		bson.M{
			"$set":   bson.M{"password": passwordHash, "updatedAt": time.Now()},
			"$unset": bson.M{"resetToken": "", "resetTokenExpiry": ""},
		},
	)
	if err != nil {
		return err
	}
	if matched == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *userRepository) ClearExpiredResetTokens(ctx context.Context, now time.Time) (int64, error) {
	return r.store.UpdateMany(ctx, UserCollection,
		bson.M{"resetTokenExpiry": bson.M{"$lte": now}},
		bson.M{"$unset": bson.M{"resetToken": "", "resetTokenExpiry": ""}},
	)
}
