package orm

import "time"

// Registros gorm. El dominio no conoce gorm; los repos mapean ida y vuelta.

type taskRecord struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Description string `gorm:"not null"`
	Date        *time.Time
	Completed   bool `gorm:"not null"`
	IsDaily     bool `gorm:"not null"`
}

func (taskRecord) TableName() string { return "tasks" }

type vetVisitRecord struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Date        time.Time `gorm:"not null"`
	Description string    `gorm:"not null"`
}

func (vetVisitRecord) TableName() string { return "vet_visits" }

// task_id no tiene FK: el log no valida la existencia de la tarea.
type taskCompletionRecord struct {
	ID     int64     `gorm:"primaryKey;autoIncrement"`
	TaskID int64     `gorm:"not null;index"`
	Date   time.Time `gorm:"not null"`
}

func (taskCompletionRecord) TableName() string { return "task_completions" }

func schema() []any {
	return []any{&taskRecord{}, &vetVisitRecord{}, &taskCompletionRecord{}}
}
