package identity

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ankit/temple-ledger-go/models"
)

type MongoStore struct {
	col *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{col: db.Collection("users")}
}

func (s *MongoStore) FindByUsername(ctx context.Context, username string) (models.User, error) {
	var user models.User
	err := s.col.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *MongoStore) Insert(ctx context.Context, user models.User) (models.User, error) {
	// lookup-then-insert, same as the original; the unique index on username
	// catches the remaining race
	if _, err := s.FindByUsername(ctx, user.Username); err == nil {
		return models.User{}, ErrUserExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return models.User{}, err
	}

	user.ID = primitive.NewObjectID()
	if _, err := s.col.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, ErrUserExists
		}
		return models.User{}, err
	}
	return user, nil
}
