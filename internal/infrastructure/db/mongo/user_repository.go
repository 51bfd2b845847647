package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/proposaldesk/intake-api/internal/core/domain"
)

type UserRepository struct {
	gw *Gateway
}

func NewUserRepository(gw *Gateway) *UserRepository {
	return &UserRepository{gw: gw}
}

// Insert stores user as a new document, even when the email already exists.
func (r *UserRepository) Insert(ctx context.Context, user *domain.User) (*domain.InsertResult, error) {
	col, err := r.gw.collection(collectionUsers)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := col.InsertOne(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &domain.InsertResult{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

// UpsertByEmail sets the non-empty fields of user on the document matching
// its email. Fields left empty are not touched because of their omitempty tags.
func (r *UserRepository) UpsertByEmail(ctx context.Context, user *domain.User) (*domain.UpdateResult, error) {
	return r.upsert(ctx, user.Email, user)
}

func (r *UserRepository) SetFieldsByEmail(ctx context.Context, email string, fields map[string]any) (*domain.UpdateResult, error) {
	return r.upsert(ctx, email, bson.M(fields))
}

func (r *UserRepository) upsert(ctx context.Context, email string, set any) (*domain.UpdateResult, error) {
	col, err := r.gw.collection(collectionUsers)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := col.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": set},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, fmt.Errorf("upsert user: %w", err)
	}
	return toUpdateResult(res), nil
}

// FindByEmail returns the first user stored under email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	col, err := r.gw.collection(collectionUsers)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var u domain.User
	if err := col.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}
