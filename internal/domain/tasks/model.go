package tasks

import "time"

// Task es una tarea de cuidado de la mascota, opcionalmente diaria (recurrente).
type Task struct {
	ID          int64
	Description string

	// Date es opcional; nil = tarea sin fecha.
	Date *time.Time

	// Completed es el estado actual. No se reconcilia con el log de completions.
	Completed bool
	IsDaily   bool
}

// TaskCompletion registra una vez que la tarea se marcó como hecha.
// Append-only: nunca se actualiza ni se borra.
type TaskCompletion struct {
	ID     int64
	TaskID int64
	Date   time.Time
}
