package service

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/proposaldesk/intake-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory users
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byEmail   map[string]*domain.User
	findErr   error
	writeErr  error
	setCalls  int
	lastSet   map[string]any
	findCalls int
}

func newStubUserRepo(users ...*domain.User) *stubUserRepo {
	r := &stubUserRepo{byEmail: make(map[string]*domain.User)}
	for _, u := range users {
		clone := *u
		r.byEmail[u.Email] = &clone
	}
	return r
}

func (r *stubUserRepo) Insert(_ context.Context, u *domain.User) (*domain.InsertResult, error) {
	if r.writeErr != nil {
		return nil, r.writeErr
	}
	clone := *u
	clone.ID = primitive.NewObjectID()
	r.byEmail[u.Email] = &clone
	return &domain.InsertResult{Acknowledged: true, InsertedID: clone.ID}, nil
}

func (r *stubUserRepo) UpsertByEmail(_ context.Context, u *domain.User) (*domain.UpdateResult, error) {
	if r.writeErr != nil {
		return nil, r.writeErr
	}
	existing, ok := r.byEmail[u.Email]
	if !ok {
		clone := *u
		r.byEmail[u.Email] = &clone
		return &domain.UpdateResult{Acknowledged: true, UpsertedCount: 1}, nil
	}
	if u.Name != "" {
		existing.Name = u.Name
	}
	if u.Role != "" {
		existing.Role = u.Role
	}
	if u.PhoneNumber != "" {
		existing.PhoneNumber = u.PhoneNumber
	}
	return &domain.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (r *stubUserRepo) SetFieldsByEmail(_ context.Context, email string, fields map[string]any) (*domain.UpdateResult, error) {
	r.setCalls++
	r.lastSet = fields
	if r.writeErr != nil {
		return nil, r.writeErr
	}
	u, ok := r.byEmail[email]
	if !ok {
		u = &domain.User{Email: email}
		r.byEmail[email] = u
		applyProfile(u, fields)
		return &domain.UpdateResult{Acknowledged: true, UpsertedCount: 1}, nil
	}
	before := *u
	applyProfile(u, fields)
	res := &domain.UpdateResult{Acknowledged: true, MatchedCount: 1}
	if before != *u {
		res.ModifiedCount = 1
	}
	return res, nil
}

func applyProfile(u *domain.User, fields map[string]any) {
	if v, ok := fields["displayName"].(string); ok {
		u.DisplayName = v
	}
	if v, ok := fields["phoneNumber"].(string); ok {
		u.PhoneNumber = v
	}
	if v, ok := fields["country"].(string); ok {
		u.Country = v
	}
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.findCalls++
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

// ---------------------------------------------------------------------------
// In-memory testimonials (mirrors the upsert-enabled approval)
// ---------------------------------------------------------------------------

type stubTestimonialRepo struct {
	items   []domain.Testimonial
	nextID  int
	findErr error
}

func (r *stubTestimonialRepo) add(t domain.Testimonial) string {
	r.nextID++
	id := fmt.Sprintf("t%d", r.nextID)
	t[domain.TestimonialIDKey] = id
	r.items = append(r.items, t)
	return id
}

func (r *stubTestimonialRepo) Insert(_ context.Context, t domain.Testimonial) (*domain.InsertResult, error) {
	id := r.add(t)
	return &domain.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

func (r *stubTestimonialRepo) FindAll(_ context.Context) ([]domain.Testimonial, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return append([]domain.Testimonial{}, r.items...), nil
}

func (r *stubTestimonialRepo) FindPending(_ context.Context) ([]domain.Testimonial, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	out := []domain.Testimonial{}
	for _, t := range r.items {
		if t.Pending() {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *stubTestimonialRepo) Approve(_ context.Context, id string) (*domain.UpdateResult, error) {
	for _, t := range r.items {
		if t[domain.TestimonialIDKey] == id {
			if t.Approved() {
				return &domain.UpdateResult{Acknowledged: true, MatchedCount: 1}, nil
			}
			t[domain.TestimonialApprovedKey] = true
			return &domain.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	r.items = append(r.items, domain.Testimonial{domain.TestimonialIDKey: id, domain.TestimonialApprovedKey: true})
	return &domain.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: id}, nil
}

func (r *stubTestimonialRepo) Delete(_ context.Context, id string) (int64, error) {
	for i, t := range r.items {
		if t[domain.TestimonialIDKey] == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

// ---------------------------------------------------------------------------
// In-memory proposals
// ---------------------------------------------------------------------------

type stubProposalRepo struct {
	items     []*domain.Proposal
	insertErr error
}

func (r *stubProposalRepo) Insert(_ context.Context, p *domain.Proposal) (*domain.InsertResult, error) {
	if r.insertErr != nil {
		return nil, r.insertErr
	}
	p.ID = primitive.NewObjectID()
	clone := *p
	r.items = append(r.items, &clone)
	return &domain.InsertResult{Acknowledged: true, InsertedID: p.ID}, nil
}

func (r *stubProposalRepo) FindByEmail(_ context.Context, email string) ([]*domain.Proposal, error) {
	out := []*domain.Proposal{}
	for _, p := range r.items {
		if p.Email == email {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubProposalRepo) FindAll(_ context.Context) ([]*domain.Proposal, error) {
	return append([]*domain.Proposal{}, r.items...), nil
}

type stubNotifier struct {
	mu     sync.Mutex
	events []domain.ProposalSubmitted
}

func (n *stubNotifier) Notify(e domain.ProposalSubmitted) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, e)
}
