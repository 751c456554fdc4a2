package orm

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"petpal/internal/domain/tasks"
	"petpal/internal/domain/vetvisits"
	"petpal/internal/platform/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := OpenInMemory(context.Background(), logger.Discard())
	if err != nil {
		t.Fatalf("OpenInMemory: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestStore_TasksCRUD(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	sess, err := st.Begin(ctx)
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	defer sess.Close()

	repo := sess.Tasks()

	date := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	a := tasks.Task{Description: "Feed cat", Date: &date, IsDaily: true}
	if err := repo.Create(ctx, &a); err != nil {
		t.Fatalf("Create a: %v", err)
	}
	b := tasks.Task{Description: "Vaccine", Completed: true}
	if err := repo.Create(ctx, &b); err != nil {
		t.Fatalf("Create b: %v", err)
	}
	if a.ID == 0 || b.ID <= a.ID {
		t.Fatalf("expected increasing ids, got a=%d b=%d", a.ID, b.ID)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(list))
	}
	if list[0].ID != a.ID || list[0].Date == nil || !list[0].Date.Equal(date) {
		t.Fatalf("unexpected first task %#v", list[0])
	}
	if list[1].Date != nil {
		t.Fatalf("expected nil date for b, got %v", list[1].Date)
	}
	if !list[1].Completed || list[1].IsDaily {
		t.Fatalf("unexpected flags for b %#v", list[1])
	}

	got, ok, err := repo.SetCompleted(ctx, a.ID, true)
	if err != nil || !ok {
		t.Fatalf("SetCompleted: ok=%v err=%v", ok, err)
	}
	if !got.Completed || got.Description != "Feed cat" || !got.IsDaily {
		t.Fatalf("unexpected updated task %#v", got)
	}

	_, ok, err = repo.SetCompleted(ctx, 99999, true)
	if err != nil {
		t.Fatalf("SetCompleted unknown: %v", err)
	}
	if ok {
		t.Fatalf("expected ok=false for unknown id")
	}

	n, err := repo.ResetDaily(ctx)
	if err != nil {
		t.Fatalf("ResetDaily: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 row reset, got %d", n)
	}
	reloaded, _, _ := repo.GetByID(ctx, b.ID)
	if !reloaded.Completed {
		t.Fatalf("expected non-daily task to stay completed")
	}

	if err := sess.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}
}

func TestStore_Completions(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	sess, err := st.Begin(ctx)
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	defer sess.Close()
	repo := sess.Tasks()

	task := tasks.Task{Description: "Walk dog", IsDaily: true}
	if err := repo.Create(ctx, &task); err != nil {
		t.Fatalf("Create: %v", err)
	}

	now := time.Date(2025, 12, 22, 8, 15, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		c := tasks.TaskCompletion{TaskID: task.ID, Date: now.Add(time.Duration(i) * time.Hour)}
		if err := repo.CreateCompletion(ctx, &c); err != nil {
			t.Fatalf("CreateCompletion: %v", err)
		}
		if c.ID == 0 {
			t.Fatalf("expected id assigned")
		}
	}

	got, err := repo.ListCompletions(ctx, task.ID)
	if err != nil {
		t.Fatalf("ListCompletions: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 completions, got %d", len(got))
	}
	if !got[0].Date.Equal(now) {
		t.Fatalf("expected first date %v, got %v", now, got[0].Date)
	}

	// El flag de la tarea no cambia con el log.
	reloaded, _, _ := repo.GetByID(ctx, task.ID)
	if reloaded.Completed {
		t.Fatalf("expected completed=false")
	}

	none, err := repo.ListCompletions(ctx, 4242)
	if err != nil {
		t.Fatalf("ListCompletions unknown: %v", err)
	}
	if none == nil || len(none) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", none)
	}
}

func TestStore_CloseWithoutCommit_RollsBack(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	sess, err := st.Begin(ctx)
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	v := vetvisits.VetVisit{Date: time.Now().UTC(), Description: "Checkup"}
	if err := sess.VetVisits().Create(ctx, &v); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := sess.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	// Idempotente.
	if err := sess.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}

	sess2, err := st.Begin(ctx)
	if err != nil {
		t.Fatalf("Begin 2: %v", err)
	}
	defer sess2.Close()

	list, err := sess2.VetVisits().List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected rollback, got %d visits", len(list))
	}
}

func TestStore_CommitThenCommit_Fails(t *testing.T) {
	st := newTestStore(t)

	sess, err := st.Begin(context.Background())
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if err := sess.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if err := sess.Commit(); err == nil {
		t.Fatalf("expected error on second commit")
	}
	if err := sess.Close(); err != nil {
		t.Fatalf("Close after commit: %v", err)
	}
}

func TestStore_FileDatabase_PersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "petpal.db")
	ctx := context.Background()

	st, err := Open(ctx, Options{Driver: DriverSQLite, DSN: path, Logger: logger.Discard()})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	svc := vetvisits.NewService(st.VetVisitSessions())
	when := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	if _, err := svc.Create(ctx, vetvisits.CreateInput{Date: when, Description: "Dental"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	st2, err := Open(ctx, Options{DSN: path, Logger: logger.Discard()})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer st2.Close()

	list, err := vetvisits.NewService(st2.VetVisitSessions()).List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 || list[0].Description != "Dental" || !list[0].Date.Equal(when) {
		t.Fatalf("unexpected visits %#v", list)
	}
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	if _, err := Open(context.Background(), Options{Driver: "mysql", Logger: logger.Discard()}); err == nil {
		t.Fatalf("expected error for unsupported driver")
	}
}

func TestStore_TaskService_EndToEnd(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	svc := tasks.NewService(st.TaskSessions())

	created, err := svc.Create(ctx, tasks.CreateInput{Description: "Brush", IsDaily: true})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Complete(ctx, created.ID); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if _, err := svc.Complete(ctx, 99999); !errors.Is(err, tasks.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	got, err := svc.Completions(ctx, created.ID)
	if err != nil {
		t.Fatalf("Completions: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 completion, got %d", len(got))
	}
}
