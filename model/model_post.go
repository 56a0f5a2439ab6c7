package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Post struct {
	ID          bson.ObjectID `json:"id"                    bson:"_id,omitempty"`
	Title       string        `json:"title"                 bson:"title"`
	Description string        `json:"description,omitempty" bson:"description,omitempty"`
	Content     string        `json:"content"               bson:"content"`
	ImageURL    string        `json:"imageUrl,omitempty"    bson:"image_url,omitempty"`
	Tags        []string      `json:"tags"                  bson:"tags"`
	CreatedAt   time.Time     `json:"createdAt"             bson:"created_at"`
	UpdatedAt   *time.Time    `json:"updatedAt,omitempty"   bson:"updated_at,omitempty"`
	Views       int64         `json:"views"                 bson:"views"`
	Likes       []string      `json:"likes"                 bson:"likes"`
}

// HasTag reports whether the post carries the given tag label.
func (p Post) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// LikedBy reports whether the given visitor id is in the like set.
func (p Post) LikedBy(userID string) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}
