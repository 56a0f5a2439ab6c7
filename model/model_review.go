package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Review keeps a snapshot of the submitter's display name at submission
// time; later profile renames do not rewrite old reviews.
type Review struct {
	ID        bson.ObjectID `json:"id"        bson:"_id,omitempty"`
	UserID    string        `json:"userId"    bson:"user_id"`
	UserName  string        `json:"userName"  bson:"user_name"`
	Text      string        `json:"text"      bson:"text"`
	Rating    int           `json:"rating"    bson:"rating"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
}
