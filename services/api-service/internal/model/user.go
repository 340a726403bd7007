package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User is a viewer account. Email is stored lower-cased and is unique.
type User struct {
	ID               bson.ObjectID `bson:"_id,omitempty"              json:"_id"`
	Email            string        `bson:"email"                      json:"email"`
	Password         string        `bson:"password,omitempty"         json:"-"`
	Nickname         string        `bson:"nickname"                   json:"nickname"`
	Avatar           string        `bson:"avatar,omitempty"           json:"avatar,omitempty"`
	AvatarPublicID   string        `bson:"avatarPublicId,omitempty"   json:"-"`
	Phone            string        `bson:"phone,omitempty"            json:"phone,omitempty"`
	Sex              string        `bson:"sex,omitempty"              json:"sex,omitempty"`
	DOB              string        `bson:"dob,omitempty"              json:"dob,omitempty"`
	GoogleID         string        `bson:"google_id,omitempty"        json:"google_id,omitempty"`
	ResetToken       string        `bson:"resetToken,omitempty"       json:"-"`
	ResetTokenExpiry *time.Time    `bson:"resetTokenExpiry,omitempty" json:"-"`
	CreatedAt        time.Time     `bson:"createdAt"                  json:"createdAt"`
	UpdatedAt        time.Time     `bson:"updatedAt"                  json:"updatedAt"`
}

// HasPassword reports whether the account can sign in with a password.
func (u *User) HasPassword() bool {
	return u.Password != ""
}
