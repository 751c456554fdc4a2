package orm

import (
	"context"
	"errors"
	"fmt"

	"petpal/internal/domain/tasks"

	"gorm.io/gorm"
)

type tasksRepo struct {
	db *gorm.DB
}

func (r *tasksRepo) Create(ctx context.Context, t *tasks.Task) error {
	rec := taskRecord{
		Description: t.Description,
		Date:        t.Date,
		Completed:   t.Completed,
		IsDaily:     t.IsDaily,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	*t = toTask(rec)
	return nil
}

func (r *tasksRepo) List(ctx context.Context) ([]tasks.Task, error) {
	var recs []taskRecord
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	out := make([]tasks.Task, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toTask(rec))
	}
	return out, nil
}

func (r *tasksRepo) GetByID(ctx context.Context, id int64) (tasks.Task, bool, error) {
	var rec taskRecord
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tasks.Task{}, false, nil
		}
		return tasks.Task{}, false, fmt.Errorf("get task %d: %w", id, err)
	}
	return toTask(rec), true, nil
}

// SetCompleted es read-modify-write sin chequeo de versiones (last write wins).
func (r *tasksRepo) SetCompleted(ctx context.Context, id int64, completed bool) (tasks.Task, bool, error) {
	t, ok, err := r.GetByID(ctx, id)
	if err != nil || !ok {
		return tasks.Task{}, ok, err
	}

	// Update con columna explícita: gorm no omite el false.
	err = r.db.WithContext(ctx).
		Model(&taskRecord{}).
		Where("id = ?", id).
		Update("completed", completed).Error
	if err != nil {
		return tasks.Task{}, false, fmt.Errorf("update task %d: %w", id, err)
	}

	t.Completed = completed
	return t, true, nil
}

func (r *tasksRepo) ResetDaily(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&taskRecord{}).
		Where("is_daily = ? AND completed = ?", true, true).
		Update("completed", false)
	if res.Error != nil {
		return 0, fmt.Errorf("reset daily tasks: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func (r *tasksRepo) CreateCompletion(ctx context.Context, c *tasks.TaskCompletion) error {
	rec := taskCompletionRecord{
		TaskID: c.TaskID,
		Date:   c.Date,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("create task completion: %w", err)
	}
	*c = toCompletion(rec)
	return nil
}

func (r *tasksRepo) ListCompletions(ctx context.Context, taskID int64) ([]tasks.TaskCompletion, error) {
	var recs []taskCompletionRecord
	err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("id ASC").
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("list task completions: %w", err)
	}

	out := make([]tasks.TaskCompletion, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toCompletion(rec))
	}
	return out, nil
}

func toTask(rec taskRecord) tasks.Task {
	return tasks.Task{
		ID:          rec.ID,
		Description: rec.Description,
		Date:        rec.Date,
		Completed:   rec.Completed,
		IsDaily:     rec.IsDaily,
	}
}

func toCompletion(rec taskCompletionRecord) tasks.TaskCompletion {
	return tasks.TaskCompletion{
		ID:     rec.ID,
		TaskID: rec.TaskID,
		Date:   rec.Date,
	}
}
