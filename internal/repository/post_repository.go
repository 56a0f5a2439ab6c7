package repository

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/stormcreate/stormblog/model"
)

type PostRepository struct {
	coll *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	if db == nil {
		return &PostRepository{}
	}
	return &PostRepository{coll: db.Collection("posts")}
}

// List returns posts newest first. The tag filter is applied at the
// query (array-contains), the limit at the query, and the text filter
// in memory AFTER the limited fetch, so a tight limit combined with a
// text query can return fewer matches than exist.
func (r *PostRepository) List(ctx context.Context, limit int64, tag, query string) []model.Post {
	if r.coll == nil {
		return nil
	}

	filter := bson.M{}
	if tag != "" {
		filter["tags"] = tag
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		log.Printf("list posts: %v", err)
		return nil
	}
	defer cur.Close(ctx)

	var posts []model.Post
	if err := cur.All(ctx, &posts); err != nil {
		log.Printf("decode posts: %v", err)
		return nil
	}
	return FilterByText(posts, query)
}

// FilterByText keeps posts whose title or content contains the query,
// case-insensitive. An empty query keeps everything, order preserved.
func FilterByText(posts []model.Post, query string) []model.Post {
	if query == "" {
		return posts
	}
	q := strings.ToLower(query)
	out := make([]model.Post, 0, len(posts))
	for _, p := range posts {
		if strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Content), q) {
			out = append(out, p)
		}
	}
	return out
}

// Get reports absence as (nil, nil); a missing post is a valid outcome.
func (r *PostRepository) Get(ctx context.Context, id bson.ObjectID) (*model.Post, error) {
	if r.coll == nil {
		return nil, nil
	}
	var post model.Post
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Create stamps the creation time and zeroes the counters before the
// insert, regardless of what the caller put in those fields.
func (r *PostRepository) Create(ctx context.Context, post *model.Post) (bson.ObjectID, error) {
	if r.coll == nil {
		return bson.NilObjectID, ErrBackendUnavailable
	}
	post.ID = bson.NewObjectID()
	post.CreatedAt = time.Now().UTC()
	post.UpdatedAt = nil
	post.Views = 0
	post.Likes = []string{}
	if post.Tags == nil {
		post.Tags = []string{}
	}
	if _, err := r.coll.InsertOne(ctx, post); err != nil {
		return bson.NilObjectID, err
	}
	return post.ID, nil
}

// Update rewrites the editor-owned fields and stamps the update time.
// Last write wins; there is no concurrency check.
func (r *PostRepository) Update(ctx context.Context, id bson.ObjectID, title, description, content, imageURL string, tags []string) error {
	if r.coll == nil {
		return ErrBackendUnavailable
	}
	if tags == nil {
		tags = []string{}
	}
	set := bson.M{
		"title":       title,
		"description": description,
		"content":     content,
		"image_url":   imageURL,
		"tags":        tags,
		"updated_at":  time.Now().UTC(),
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete is unconditional and does not cascade to comments.
func (r *PostRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	if r.coll == nil {
		return ErrBackendUnavailable
	}
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// IncrementViews is fire-and-forget: failures are logged, never
// surfaced, so a flaky counter cannot break the detail page.
func (r *PostRepository) IncrementViews(ctx context.Context, id bson.ObjectID) {
	if r.coll == nil {
		return
	}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"views": 1}}); err != nil {
		log.Printf("increment views %s: %v", id.Hex(), err)
	}
}

// ToggleLike flips the visitor's membership in the like set and returns
// the new state. Read-modify-write, not atomic: two concurrent toggles
// from different sessions can interleave, which is acceptable for a
// like counter.
func (r *PostRepository) ToggleLike(ctx context.Context, id bson.ObjectID, userID string) (bool, int, error) {
	if r.coll == nil {
		return false, 0, ErrBackendUnavailable
	}
	post, err := r.Get(ctx, id)
	if err != nil {
		return false, 0, err
	}
	if post == nil {
		return false, 0, ErrNotFound
	}
	likes, liked := ToggleMember(post.Likes, userID)
	if _, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"likes": likes}}); err != nil {
		return false, 0, err
	}
	return liked, len(likes), nil
}

// ToggleMember returns a copy of set with member added if absent or
// removed if present, plus the resulting membership state. Toggling
// twice with the same member restores the original set.
func ToggleMember(set []string, member string) ([]string, bool) {
	for i, m := range set {
		if m == member {
			out := make([]string, 0, len(set)-1)
			out = append(out, set[:i]...)
			return append(out, set[i+1:]...), false
		}
	}
	out := make([]string, 0, len(set)+1)
	return append(append(out, set...), member), true
}
