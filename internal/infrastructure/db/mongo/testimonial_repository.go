package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/proposaldesk/intake-api/internal/core/domain"
)

// TestimonialRepository stores testimonials as schemaless documents.
type TestimonialRepository struct {
	gw *Gateway
}

func NewTestimonialRepository(gw *Gateway) *TestimonialRepository {
	return &TestimonialRepository{gw: gw}
}

func (r *TestimonialRepository) Insert(ctx context.Context, t domain.Testimonial) (*domain.InsertResult, error) {
	col, err := r.gw.collection(collectionTestimonials)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := col.InsertOne(ctx, bson.M(t))
	if err != nil {
		return nil, fmt.Errorf("insert testimonial: %w", err)
	}
	return &domain.InsertResult{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

func (r *TestimonialRepository) FindAll(ctx context.Context) ([]domain.Testimonial, error) {
	return r.find(ctx, bson.M{})
}

func (r *TestimonialRepository) FindPending(ctx context.Context) ([]domain.Testimonial, error) {
	return r.find(ctx, bson.M{domain.TestimonialApprovedKey: bson.M{"$exists": false}})
}

func (r *TestimonialRepository) find(ctx context.Context, filter bson.M) ([]domain.Testimonial, error) {
	col, err := r.gw.collection(collectionTestimonials)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find testimonials: %w", err)
	}
	defer cur.Close(ctx)

	var docs []bson.M
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode testimonials: %w", err)
	}

	out := make([]domain.Testimonial, 0, len(docs))
	for _, d := range docs {
		out = append(out, domain.Testimonial(d))
	}
	return out, nil
}

// Approve upserts approved=true on the document with the given hex id.
func (r *TestimonialRepository) Approve(ctx context.Context, id string) (*domain.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("testimonial id %q: %w", id, err)
	}
	col, err := r.gw.collection(collectionTestimonials)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := col.UpdateOne(ctx,
		bson.M{domain.TestimonialIDKey: oid},
		bson.M{"$set": bson.M{domain.TestimonialApprovedKey: true}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, fmt.Errorf("approve testimonial: %w", err)
	}
	return toUpdateResult(res), nil
}

func (r *TestimonialRepository) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fmt.Errorf("testimonial id %q: %w", id, err)
	}
	col, err := r.gw.collection(collectionTestimonials)
	if err != nil {
		return 0, err
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := col.DeleteOne(ctx, bson.M{domain.TestimonialIDKey: oid})
	if err != nil {
		return 0, fmt.Errorf("delete testimonial: %w", err)
	}
	return res.DeletedCount, nil
}
