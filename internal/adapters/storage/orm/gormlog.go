package orm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"petpal/internal/platform/logger"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// gormLogger manda los logs de gorm al logger de la app.
// Por defecto: errores y queries lentas; record-not-found se ignora.
type gormLogger struct {
	log   logger.Logger
	slow  time.Duration
	level gormlogger.LogLevel
}

func newGormLogger(log logger.Logger, slow time.Duration) gormlogger.Interface {
	return &gormLogger{log: log, slow: slow, level: gormlogger.Warn}
}

func (l *gormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	c := *l
	c.level = level
	return &c
}

func (l *gormLogger) Info(_ context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Info {
		l.log.Info(fmt.Sprintf(msg, args...), nil)
	}
}

func (l *gormLogger) Warn(_ context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Warn {
		l.log.Warn(fmt.Sprintf(msg, args...), nil)
	}
}

func (l *gormLogger) Error(_ context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Error {
		l.log.Error(fmt.Sprintf(msg, args...), nil)
	}
}

func (l *gormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && l.level >= gormlogger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		sql, rows := fc()
		l.log.Error("orm: query failed", map[string]any{
			"sql":         sql,
			"rows":        rows,
			"duration_ms": elapsed.Milliseconds(),
			"error":       err.Error(),
		})
	case l.slow > 0 && elapsed > l.slow && l.level >= gormlogger.Warn:
		sql, rows := fc()
		l.log.Warn("orm: slow query", map[string]any{
			"sql":         sql,
			"rows":        rows,
			"duration_ms": elapsed.Milliseconds(),
		})
	case l.level >= gormlogger.Info:
		sql, rows := fc()
		l.log.Debug("orm: query", map[string]any{
			"sql":         sql,
			"rows":        rows,
			"duration_ms": elapsed.Milliseconds(),
		})
	}
}
