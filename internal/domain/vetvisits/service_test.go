package vetvisits

import (
	"context"
	"errors"
	"testing"
	"time"
)

type testRepo struct {
	next   int64
	visits []VetVisit
}

func (r *testRepo) Create(ctx context.Context, v *VetVisit) error {
	r.next++
	v.ID = r.next
	r.visits = append(r.visits, *v)
	return nil
}

func (r *testRepo) List(ctx context.Context) ([]VetVisit, error) {
	out := make([]VetVisit, len(r.visits))
	copy(out, r.visits)
	return out, nil
}

type testSession struct {
	repo      *testRepo
	committed bool
	closed    bool
}

func (s *testSession) VetVisits() Repository { return s.repo }
func (s *testSession) Commit() error         { s.committed = true; return nil }
func (s *testSession) Close() error          { s.closed = true; return nil }

func newTestService() (*Service, *testRepo, *[]*testSession) {
	repo := &testRepo{}
	var sessions []*testSession
	svc := NewService(func(ctx context.Context) (Session, error) {
		s := &testSession{repo: repo}
		sessions = append(sessions, s)
		return s, nil
	})
	return svc, repo, &sessions
}

func TestService_Create_AndList(t *testing.T) {
	svc, _, sessions := newTestService()

	when := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	v, err := svc.Create(context.Background(), CreateInput{Date: when, Description: " Annual checkup "})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if v.ID != 1 {
		t.Fatalf("expected id 1, got %d", v.ID)
	}
	if v.Description != "Annual checkup" || !v.Date.Equal(when) {
		t.Fatalf("unexpected visit %#v", v)
	}

	s := (*sessions)[0]
	if !s.committed || !s.closed {
		t.Fatalf("expected committed and closed session")
	}

	if _, err := svc.Create(context.Background(), CreateInput{Date: when.Add(24 * time.Hour), Description: "Vaccine"}); err != nil {
		t.Fatalf("second Create error: %v", err)
	}

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 visits, got %d", len(list))
	}
	if list[0].ID != 1 || list[1].ID != 2 {
		t.Fatalf("expected insertion order, got %d,%d", list[0].ID, list[1].ID)
	}
}

func TestService_Create_Invalid(t *testing.T) {
	svc, repo, sessions := newTestService()

	cases := []CreateInput{
		{Date: time.Now(), Description: "  "},
		{Description: "Checkup"},
	}
	for _, in := range cases {
		if _, err := svc.Create(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %#v, got %v", in, err)
		}
	}
	if len(repo.visits) != 0 {
		t.Fatalf("expected no rows stored, got %d", len(repo.visits))
	}
	if len(*sessions) != 0 {
		t.Fatalf("expected no session opened")
	}
}
