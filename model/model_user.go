package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type User struct {
	ID           bson.ObjectID `json:"id"                  bson:"_id,omitempty"`
	Email        string        `json:"email"               bson:"email"`
	PasswordHash string        `json:"-"                   bson:"password_hash"`
	DisplayName  string        `json:"displayName"         bson:"display_name,omitempty"`
	AvatarURL    string        `json:"avatarUrl,omitempty" bson:"avatar_url,omitempty"`
	CreatedAt    time.Time     `json:"createdAt"           bson:"created_at"`
}
