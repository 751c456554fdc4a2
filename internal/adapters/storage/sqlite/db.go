package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

const (
	// DriverName es el nombre con el que modernc registra el driver.
	DriverName = "sqlite"

	MemoryDSN = ":memory:"
)

// Open abre una base SQLite (archivo o :memory:) con el driver pure-Go.
// Se usa una sola conexión: :memory: vive mientras la conexión siga abierta
// y los writers no compiten por el lock del archivo.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = MemoryDSN
	}

	if err := ensureDir(path); err != nil {
		return nil, err
	}

	db, err := sql.Open(DriverName, withPragmas(path))
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: ping: %w", err)
	}
	return db, nil
}

// withPragmas agrega busy_timeout y un formato de tiempo que el driver sabe leer.
func withPragmas(path string) string {
	params := url.Values{}
	params.Add("_pragma", "busy_timeout(5000)")
	params.Add("_time_format", "sqlite")

	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	if path == MemoryDSN {
		return "file::memory:" + sep + params.Encode()
	}
	if !strings.HasPrefix(path, "file:") {
		path = "file:" + path
	}
	return path + sep + params.Encode()
}

// ensureDir crea el directorio padre del archivo si hace falta.
func ensureDir(path string) error {
	if strings.Contains(path, ":memory:") || strings.Contains(path, "mode=memory") {
		return nil
	}
	clean := strings.TrimPrefix(path, "file:")
	clean = strings.Split(clean, "?")[0]
	dir := filepath.Dir(clean)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil && !errors.Is(err, os.ErrExist) {
		return fmt.Errorf("sqlite: create dir %q: %w", dir, err)
	}
	return nil
}
