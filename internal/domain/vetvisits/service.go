package vetvisits

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	open OpenSession
}

func NewService(open OpenSession) *Service {
	return &Service{open: open}
}

type CreateInput struct {
	Date        time.Time
	Description string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (VetVisit, error) {
	desc := strings.TrimSpace(in.Description)
	if desc == "" || in.Date.IsZero() {
		return VetVisit{}, ErrInvalidInput
	}

	sess, err := s.open(ctx)
	if err != nil {
		return VetVisit{}, err
	}
	defer sess.Close()

	v := VetVisit{
		Date:        in.Date,
		Description: desc,
	}
	if err := sess.VetVisits().Create(ctx, &v); err != nil {
		return VetVisit{}, err
	}
	if err := sess.Commit(); err != nil {
		return VetVisit{}, err
	}
	return v, nil
}

func (s *Service) List(ctx context.Context) ([]VetVisit, error) {
	sess, err := s.open(ctx)
	if err != nil {
		return nil, err
	}
	defer sess.Close()

	return sess.VetVisits().List(ctx)
}
