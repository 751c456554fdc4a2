// Package orm es el acceso a datos vía gorm. Un Store se construye en main
// (o en tests) y se pasa explícitamente; cada request usa su propia Session.
package orm

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"petpal/internal/adapters/storage/postgres"
	"petpal/internal/adapters/storage/sqlite"
	"petpal/internal/domain/tasks"
	"petpal/internal/domain/vetvisits"
	"petpal/internal/platform/logger"

	gormpg "gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Options struct {
	// Driver: sqlite (default) o postgres.
	Driver string
	// DSN: path del archivo SQLite (vacío = :memory:) o DSN de Postgres.
	DSN string

	Logger        logger.Logger
	SlowThreshold time.Duration
}

type Store struct {
	db     *gorm.DB
	sqlDB  *sql.DB
	driver string
}

// Open abre la base, crea el schema si no existe y devuelve el Store.
func Open(ctx context.Context, opts Options) (*Store, error) {
	driver := strings.ToLower(strings.TrimSpace(opts.Driver))
	if driver == "" {
		driver = DriverSQLite
	}

	var (
		sqlDB     *sql.DB
		dialector gorm.Dialector
		err       error
	)
	switch driver {
	case DriverSQLite:
		sqlDB, err = sqlite.Open(ctx, opts.DSN)
		if err != nil {
			return nil, err
		}
		dialector = gormsqlite.New(gormsqlite.Config{
			DriverName: sqlite.DriverName,
			Conn:       sqlDB,
		})
	case DriverPostgres, "pgx", "postgresql":
		driver = DriverPostgres
		sqlDB, err = postgres.Open(ctx, opts.DSN)
		if err != nil {
			return nil, err
		}
		dialector = gormpg.New(gormpg.Config{Conn: sqlDB})
	default:
		return nil, fmt.Errorf("orm: unsupported driver %q", opts.Driver)
	}

	log := opts.Logger
	if log == nil {
		log = logger.NewFromEnv()
	}
	slow := opts.SlowThreshold
	if slow <= 0 {
		slow = time.Second
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: newGormLogger(log.With(map[string]any{"component": "orm", "driver": driver}), slow),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("orm: open %s: %w", driver, err)
	}

	if err := db.WithContext(ctx).AutoMigrate(schema()...); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("orm: create schema: %w", err)
	}

	return &Store{db: db, sqlDB: sqlDB, driver: driver}, nil
}

// OpenInMemory es un atajo para dev/tests: SQLite en memoria.
func OpenInMemory(ctx context.Context, log logger.Logger) (*Store, error) {
	return Open(ctx, Options{Driver: DriverSQLite, DSN: sqlite.MemoryDSN, Logger: log})
}

func (s *Store) Driver() string { return s.driver }

func (s *Store) Ping(ctx context.Context) error {
	return s.sqlDB.PingContext(ctx)
}

func (s *Store) Close() error {
	return s.sqlDB.Close()
}

// Begin abre una sesión (transacción). El llamador debe hacer defer Close().
func (s *Store) Begin(ctx context.Context) (*Session, error) {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("orm: begin: %w", tx.Error)
	}
	return &Session{tx: tx}, nil
}

// TaskSessions adapta Begin al tipo que espera el servicio de tareas.
func (s *Store) TaskSessions() tasks.OpenSession {
	return func(ctx context.Context) (tasks.Session, error) {
		sess, err := s.Begin(ctx)
		if err != nil {
			return nil, err
		}
		return sess, nil
	}
}

func (s *Store) VetVisitSessions() vetvisits.OpenSession {
	return func(ctx context.Context) (vetvisits.Session, error) {
		sess, err := s.Begin(ctx)
		if err != nil {
			return nil, err
		}
		return sess, nil
	}
}

// Session envuelve una transacción gorm. Implementa tasks.Session y vetvisits.Session.
type Session struct {
	tx   *gorm.DB
	done bool
}

func (s *Session) Tasks() tasks.Repository {
	return &tasksRepo{db: s.tx}
}

func (s *Session) VetVisits() vetvisits.Repository {
	return &vetVisitsRepo{db: s.tx}
}

func (s *Session) Commit() error {
	if s.done {
		return fmt.Errorf("orm: session already closed")
	}
	s.done = true
	if err := s.tx.Commit().Error; err != nil {
		return fmt.Errorf("orm: commit: %w", err)
	}
	return nil
}

// Close hace rollback si la sesión no fue commiteada. Idempotente.
func (s *Session) Close() error {
	if s.done {
		return nil
	}
	s.done = true
	if err := s.tx.Rollback().Error; err != nil {
		return fmt.Errorf("orm: rollback: %w", err)
	}
	return nil
}
