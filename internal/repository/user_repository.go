package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/stormcreate/stormblog/model"
)

// UserRepository is the identity store behind the session adapter.
// Unlike content reads, identity lookups hard-fail without a backend:
// an account cannot degrade to "empty".
type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	if db == nil {
		return &UserRepository{}
	}
	return &UserRepository{coll: db.Collection("users")}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	if r.coll == nil {
		return nil, ErrBackendUnavailable
	}
	var user model.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id bson.ObjectID) (*model.User, error) {
	if r.coll == nil {
		return nil, ErrBackendUnavailable
	}
	var user model.User
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	if r.coll == nil {
		return ErrBackendUnavailable
	}
	user.ID = bson.NewObjectID()
	user.CreatedAt = time.Now().UTC()
	_, err := r.coll.InsertOne(ctx, user)
	return err
}

// UpdateProfile sets the display name and, when non-empty, the avatar.
func (r *UserRepository) UpdateProfile(ctx context.Context, id bson.ObjectID, displayName, avatarURL string) error {
	if r.coll == nil {
		return ErrBackendUnavailable
	}
	set := bson.M{"display_name": displayName}
	if avatarURL != "" {
		set["avatar_url"] = avatarURL
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
