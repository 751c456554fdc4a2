// Package scheduler envuelve robfig/cron para jobs periódicos (p.ej. el reset
// diario de tareas recurrentes).
package scheduler

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"petpal/internal/platform/logger"

	"github.com/robfig/cron/v3"
)

// Job recibe un contexto con timeout propio por ejecución.
type Job func(ctx context.Context) error

type Scheduler struct {
	cron    *cron.Cron
	log     logger.Logger
	timeout time.Duration
}

func New(loc *time.Location, log logger.Logger) *Scheduler {
	if loc == nil {
		loc = time.Local
	}
	return &Scheduler{
		cron:    cron.New(cron.WithLocation(loc), cron.WithSeconds()),
		log:     log,
		timeout: 30 * time.Second,
	}
}

// ScheduleDaily registra job a la hora "HH:MM" (en la location del scheduler).
func (s *Scheduler) ScheduleDaily(name, hhmm string, job Job) (cron.EntryID, error) {
	spec, err := DailySpec(hhmm)
	if err != nil {
		return 0, err
	}
	return s.cron.AddFunc(spec, s.wrap(name, job))
}

// ScheduleInterval registra job cada interval (mínimo 1s).
func (s *Scheduler) ScheduleInterval(name string, interval time.Duration, job Job) (cron.EntryID, error) {
	if interval <= 0 {
		return 0, fmt.Errorf("scheduler: interval must be positive")
	}
	seconds := int(interval.Seconds())
	if seconds <= 0 {
		seconds = 1
	}
	return s.cron.AddFunc(fmt.Sprintf("@every %ds", seconds), s.wrap(name, job))
}

func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop espera a que terminen los jobs en curso.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) wrap(name string, job Job) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		start := time.Now()
		if err := job(ctx); err != nil {
			s.log.Error("job failed", map[string]any{
				"job":         name,
				"error":       err.Error(),
				"duration_ms": time.Since(start).Milliseconds(),
			})
			return
		}
		s.log.Info("job done", map[string]any{
			"job":         name,
			"duration_ms": time.Since(start).Milliseconds(),
		})
	}
}

// DailySpec convierte "HH:MM" en un spec cron con segundos.
func DailySpec(hhmm string) (string, error) {
	parts := strings.Split(strings.TrimSpace(hhmm), ":")
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid time %q, expected HH:MM", hhmm)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return "", fmt.Errorf("invalid hour in %q", hhmm)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return "", fmt.Errorf("invalid minute in %q", hhmm)
	}
	// segundo minuto hora dom mes dow
	return fmt.Sprintf("0 %d %d * * *", minute, hour), nil
}
