package models

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	gorm_logger "gorm.io/gorm/logger"
)

// slowQueryThreshold is the duration after which queries are logged as warnings.
const slowQueryThreshold = 200 * time.Millisecond

// gormLogger sends gorm's output to zerolog, tagged as coming from the database.
type gormLogger struct {
	log   zerolog.Logger
	level gorm_logger.LogLevel
}

func newGormLogger(l zerolog.Logger) *gormLogger {
	return &gormLogger{
		log:   l.With().Str("component", "database").Logger(),
		level: gorm_logger.Info,
	}
}

func (l *gormLogger) LogMode(level gorm_logger.LogLevel) gorm_logger.Interface {
	c := *l
	c.level = level
	return &c
}

func (l *gormLogger) Info(_ context.Context, s string, args ...interface{}) {
	if l.level >= gorm_logger.Info {
		l.log.Info().Msgf(s, args...)
	}
}

func (l *gormLogger) Warn(_ context.Context, s string, args ...interface{}) {
	if l.level >= gorm_logger.Warn {
		l.log.Warn().Msgf(s, args...)
	}
}

func (l *gormLogger) Error(_ context.Context, s string, args ...interface{}) {
	if l.level >= gorm_logger.Error {
		l.log.Error().Msgf(s, args...)
	}
}

// Trace logs every statement. Missing rows and lost races for invoice or
// transaction numbers are expected and never logged as errors.
func (l *gormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gorm_logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	fields := map[string]interface{}{
		"sql":      sql,
		"rows":     rows,
		"duration": elapsed,
	}

	switch {
	case err == nil:
	case errors.Is(err, ErrResourceNotFound), errors.Is(err, gorm_logger.ErrRecordNotFound):
		err = nil
	case errors.Is(err, ErrSequenceConflict), errors.Is(err, ErrDefaultConflict):
		l.log.Warn().Err(err).Fields(fields).Msg("write conflict")
		return
	default:
		l.log.Error().Err(err).Fields(fields).Msg("query failed")
		return
	}

	if elapsed > slowQueryThreshold {
		l.log.Warn().Fields(fields).Msg("slow query")
		return
	}

	l.log.Debug().Fields(fields).Msg("query")
}
