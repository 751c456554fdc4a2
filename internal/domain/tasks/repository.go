package tasks

import "context"

// Repository es el acceso a datos de tareas, atado a una sesión abierta.
type Repository interface {
	Create(ctx context.Context, t *Task) error
	List(ctx context.Context) ([]Task, error)

	// GetByID devuelve ok=false si la tarea no existe (no es error).
	GetByID(ctx context.Context, id int64) (Task, bool, error)

	// SetCompleted solo escribe la columna completed. ok=false si no existe.
	SetCompleted(ctx context.Context, id int64, completed bool) (Task, bool, error)

	// ResetDaily pone completed=false en todas las tareas diarias.
	ResetDaily(ctx context.Context) (int64, error)

	CreateCompletion(ctx context.Context, c *TaskCompletion) error
	ListCompletions(ctx context.Context, taskID int64) ([]TaskCompletion, error)
}

// Session es una unidad de trabajo sobre el store.
// Close siempre debe llamarse; descarta lo no commiteado.
type Session interface {
	Tasks() Repository
	Commit() error
	Close() error
}

// OpenSession abre una sesión nueva. La construye el router a partir del store.
type OpenSession func(ctx context.Context) (Session, error)
