package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Comment is submitted by any visitor; the author field is free text,
// not tied to an account.
type Comment struct {
	ID        bson.ObjectID `json:"id"        bson:"_id,omitempty"`
	PostID    bson.ObjectID `json:"postId"    bson:"post_id"`
	Author    string        `json:"author"    bson:"author"`
	Text      string        `json:"text"      bson:"text"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
}
