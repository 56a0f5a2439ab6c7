package repository

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/stormcreate/stormblog/model"
)

type CommentRepository struct {
	coll *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	if db == nil {
		return &CommentRepository{}
	}
	return &CommentRepository{coll: db.Collection("comments")}
}

// ListByPost returns a post's comments newest first. A broken backend
// degrades to an empty thread, not an error page.
func (r *CommentRepository) ListByPost(ctx context.Context, postID bson.ObjectID) []model.Comment {
	return r.list(ctx, bson.M{"post_id": postID})
}

// ListAll feeds the admin moderation table.
func (r *CommentRepository) ListAll(ctx context.Context) []model.Comment {
	return r.list(ctx, bson.M{})
}

func (r *CommentRepository) list(ctx context.Context, filter bson.M) []model.Comment {
	if r.coll == nil {
		return nil
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		log.Printf("list comments: %v", err)
		return nil
	}
	defer cur.Close(ctx)

	var comments []model.Comment
	if err := cur.All(ctx, &comments); err != nil {
		log.Printf("decode comments: %v", err)
		return nil
	}
	return comments
}

func (r *CommentRepository) Create(ctx context.Context, postID bson.ObjectID, author, text string) (*model.Comment, error) {
	if r.coll == nil {
		return nil, ErrBackendUnavailable
	}
	comment := model.Comment{
		ID:        bson.NewObjectID(),
		PostID:    postID,
		Author:    author,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := r.coll.InsertOne(ctx, comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	if r.coll == nil {
		return ErrBackendUnavailable
	}
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
