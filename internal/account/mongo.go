package account

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/DHAIRYADHOLU/Metrosync/internal/models"
)

const usersCollection = "users"

// MongoStore keeps credentials in a MongoDB collection with a unique index
// on email.
type MongoStore struct {
	users *mongo.Collection
}

// NewMongoStore creates a store on the given database.
func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{users: db.Collection(usersCollection)}
}

// EnsureIndexes creates the unique email index. It must run before the
// store serves traffic; without it duplicate signups could race past the
// application-level check.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create email index: %w", err)
	}
	return nil
}

// FindByEmail looks up an account by its unique email.
func (s *MongoStore) FindByEmail(ctx context.Context, email string) (*models.UserAccount, error) {
	var acct models.UserAccount
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&acct)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return &acct, nil
}

// Insert stores a new account. A duplicate email is reported as
// ErrDuplicateEmail via the index violation.
func (s *MongoStore) Insert(ctx context.Context, account models.UserAccount) error {
	_, err := s.users.InsertOne(ctx, account)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateEmail
	}
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}
