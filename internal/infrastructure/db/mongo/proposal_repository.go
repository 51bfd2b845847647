package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/proposaldesk/intake-api/internal/core/domain"
)

type ProposalRepository struct {
	gw *Gateway
}

func NewProposalRepository(gw *Gateway) *ProposalRepository {
	return &ProposalRepository{gw: gw}
}

// Insert stores p and copies the generated identifier back onto it.
func (r *ProposalRepository) Insert(ctx context.Context, p *domain.Proposal) (*domain.InsertResult, error) {
	col, err := r.gw.collection(collectionProposals)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := col.InsertOne(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("insert proposal: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid
	}
	return &domain.InsertResult{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

func (r *ProposalRepository) FindByEmail(ctx context.Context, email string) ([]*domain.Proposal, error) {
	return r.find(ctx, bson.M{"email": email})
}

func (r *ProposalRepository) FindAll(ctx context.Context) ([]*domain.Proposal, error) {
	return r.find(ctx, bson.M{})
}

func (r *ProposalRepository) find(ctx context.Context, filter bson.M) ([]*domain.Proposal, error) {
	col, err := r.gw.collection(collectionProposals)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find proposals: %w", err)
	}
	defer cur.Close(ctx)

	out := make([]*domain.Proposal, 0)
	for cur.Next(ctx) {
		var p domain.Proposal
		if err := cur.Decode(&p); err != nil {
			return nil, fmt.Errorf("decode proposal: %w", err)
		}
		out = append(out, &p)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate proposals: %w", err)
	}
	return out, nil
}
