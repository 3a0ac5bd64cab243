package service

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/brightpixel/website-api/internal/core/domain"
	"github.com/brightpixel/website-api/internal/core/ports"
)

type stubContactRepo struct {
	submissions []*domain.ContactSubmission
	insertErr   error
}

func (r *stubContactRepo) Insert(_ context.Context, s *domain.ContactSubmission) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	clone := *s
	r.submissions = append(r.submissions, &clone)
	return nil
}

func (r *stubContactRepo) FindAll(_ context.Context) ([]*domain.ContactSubmission, error) {
	out := make([]*domain.ContactSubmission, len(r.submissions))
	copy(out, r.submissions)
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

func (r *stubContactRepo) DeleteByID(_ context.Context, id string) error {
	for i, s := range r.submissions {
		if s.ID == id {
			r.submissions = append(r.submissions[:i], r.submissions[i+1:]...)
			return nil
		}
	}
	return domain.ErrContactNotFound
}

type stubLimiter struct {
	allowed bool
	err     error
	calls   int
}

func (l *stubLimiter) Allow(_ context.Context, _ string) (bool, error) {
	l.calls++
	return l.allowed, l.err
}

func contactInput() ports.SubmitContactInput {
	return ports.SubmitContactInput{
		Name:            "Alice",
		Email:           "alice@example.com",
		Phone:           "+1 555 0100",
		ServiceInterest: "Web Development",
		Budget:          "$5k-$10k",
		Message:         "Need a new site.",
		RemoteAddr:      "203.0.113.9",
	}
}

func TestContactService_Submit(t *testing.T) {
	repo := &stubContactRepo{}
	svc := NewContactService(repo, nil, zerolog.Nop())

	got, err := svc.Submit(context.Background(), contactInput())
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if got.ID == "" {
		t.Fatalf("expected generated id")
	}
	if got.Timestamp.IsZero() {
		t.Fatalf("expected timestamp to be set")
	}
	if got.Name != "Alice" || got.ServiceInterest != "Web Development" {
		t.Fatalf("unexpected submission: %+v", got)
	}
	if len(repo.submissions) != 1 {
		t.Fatalf("expected 1 stored submission, got %d", len(repo.submissions))
	}
}

func TestContactService_ListAll_NewestFirst(t *testing.T) {
	repo := &stubContactRepo{}
	svc := NewContactService(repo, nil, zerolog.Nop())

	now := time.Now().UTC()
	for i, name := range []string{"first", "second", "third"} {
		repo.submissions = append(repo.submissions, &domain.ContactSubmission{
			ID:        name,
			Name:      name,
			Timestamp: now.Add(time.Duration(i) * time.Minute),
		})
	}

	got, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 submissions, got %d", len(got))
	}
	if got[0].Name != "third" || got[2].Name != "first" {
		t.Fatalf("expected newest first, got %s .. %s", got[0].Name, got[2].Name)
	}
}

func TestContactService_Delete(t *testing.T) {
	repo := &stubContactRepo{}
	svc := NewContactService(repo, nil, zerolog.Nop())

	created, err := svc.Submit(context.Background(), contactInput())
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	got, _ := svc.ListAll(context.Background())
	if len(got) != 0 {
		t.Fatalf("expected empty store after delete, got %d", len(got))
	}
}

func TestContactService_Delete_Unknown(t *testing.T) {
	repo := &stubContactRepo{}
	svc := NewContactService(repo, nil, zerolog.Nop())

	_, _ = svc.Submit(context.Background(), contactInput())

	if err := svc.Delete(context.Background(), "no-such-id"); err != domain.ErrContactNotFound {
		t.Fatalf("expected ErrContactNotFound, got %v", err)
	}
	got, _ := svc.ListAll(context.Background())
	if len(got) != 1 {
		t.Fatalf("store changed by failed delete: %d entries", len(got))
	}
}

func TestContactService_Submit_RateLimited(t *testing.T) {
	repo := &stubContactRepo{}
	limiter := &stubLimiter{allowed: false}
	svc := NewContactService(repo, limiter, zerolog.Nop())

	if _, err := svc.Submit(context.Background(), contactInput()); err != domain.ErrRateLimited {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
	if len(repo.submissions) != 0 {
		t.Fatalf("rejected submission was stored")
	}
	if limiter.calls != 1 {
		t.Fatalf("expected 1 limiter call, got %d", limiter.calls)
	}
}

func TestContactService_Submit_LimiterFailureFailsOpen(t *testing.T) {
	repo := &stubContactRepo{}
	limiter := &stubLimiter{err: errors.New("redis down")}
	svc := NewContactService(repo, limiter, zerolog.Nop())

	if _, err := svc.Submit(context.Background(), contactInput()); err != nil {
		t.Fatalf("expected fail-open submit, got %v", err)
	}
	if len(repo.submissions) != 1 {
		t.Fatalf("expected submission stored despite limiter failure")
	}
}
