package tasks

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("task not found")
)

type Service struct {
	open OpenSession
	now  func() time.Time
}

func NewService(open OpenSession) *Service {
	return &Service{
		open: open,
		now:  time.Now,
	}
}

type CreateInput struct {
	Description string
	Date        *time.Time
	Completed   bool
	IsDaily     bool
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Task, error) {
	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		return Task{}, ErrInvalidInput
	}

	t := Task{
		Description: desc,
		Date:        in.Date,
		Completed:   in.Completed,
		IsDaily:     in.IsDaily,
	}

	err := s.withSession(ctx, func(repo Repository) error {
		return repo.Create(ctx, &t)
	})
	if err != nil {
		return Task{}, err
	}
	return t, nil
}

func (s *Service) List(ctx context.Context) ([]Task, error) {
	var out []Task
	err := s.withSession(ctx, func(repo Repository) error {
		var err error
		out, err = repo.List(ctx)
		return err
	})
	return out, err
}

// SetCompleted cambia solo el flag completed.
func (s *Service) SetCompleted(ctx context.Context, id int64, completed bool) (Task, error) {
	var out Task
	err := s.withSession(ctx, func(repo Repository) error {
		t, ok, err := repo.SetCompleted(ctx, id, completed)
		if err != nil {
			return err
		}
		if !ok {
			return ErrNotFound
		}
		out = t
		return nil
	})
	if err != nil {
		return Task{}, err
	}
	return out, nil
}

// Complete agrega una entrada al log de completions con la hora actual (UTC).
// No toca Task.Completed.
func (s *Service) Complete(ctx context.Context, taskID int64) (TaskCompletion, error) {
	var out TaskCompletion
	err := s.withSession(ctx, func(repo Repository) error {
		_, ok, err := repo.GetByID(ctx, taskID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrNotFound
		}

		c := TaskCompletion{
			TaskID: taskID,
			Date:   s.now().UTC(),
		}
		if err := repo.CreateCompletion(ctx, &c); err != nil {
			return err
		}
		out = c
		return nil
	})
	if err != nil {
		return TaskCompletion{}, err
	}
	return out, nil
}

// Completions no valida que la tarea exista: id desconocido => lista vacía.
func (s *Service) Completions(ctx context.Context, taskID int64) ([]TaskCompletion, error) {
	var out []TaskCompletion
	err := s.withSession(ctx, func(repo Repository) error {
		var err error
		out, err = repo.ListCompletions(ctx, taskID)
		return err
	})
	return out, err
}

// ResetDaily lo usa el job programado; devuelve cuántas tareas tocó.
func (s *Service) ResetDaily(ctx context.Context) (int64, error) {
	var n int64
	err := s.withSession(ctx, func(repo Repository) error {
		var err error
		n, err = repo.ResetDaily(ctx)
		return err
	})
	return n, err
}

// withSession abre una sesión, ejecuta fn y commitea si no hubo error.
// La sesión se cierra siempre.
func (s *Service) withSession(ctx context.Context, fn func(Repository) error) error {
	sess, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer sess.Close()

	if err := fn(sess.Tasks()); err != nil {
		return err
	}
	return sess.Commit()
}
