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

type ReviewRepository struct {
	coll *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	if db == nil {
		return &ReviewRepository{}
	}
	return &ReviewRepository{coll: db.Collection("reviews")}
}

func (r *ReviewRepository) List(ctx context.Context) []model.Review {
	if r.coll == nil {
		return nil
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		log.Printf("list reviews: %v", err)
		return nil
	}
	defer cur.Close(ctx)

	var reviews []model.Review
	if err := cur.All(ctx, &reviews); err != nil {
		log.Printf("decode reviews: %v", err)
		return nil
	}
	return reviews
}

// Create stores the submitter's display name as a snapshot. The rating
// range is the form's responsibility; the adapter does not clamp it.
func (r *ReviewRepository) Create(ctx context.Context, userID, userName, text string, rating int) (*model.Review, error) {
	if r.coll == nil {
		return nil, ErrBackendUnavailable
	}
	review := model.Review{
		ID:        bson.NewObjectID(),
		UserID:    userID,
		UserName:  userName,
		Text:      text,
		Rating:    rating,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := r.coll.InsertOne(ctx, review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	if r.coll == nil {
		return ErrBackendUnavailable
	}
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
