package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-turnos/internal/models"
)

// Logger persists events to the audit_logs table.
type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Handle(ctx context.Context, ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		Actor:    ev.Actor,
		Metadata: metaJSON,
	}

	return l.db.WithContext(ctx).Create(&entry).Error
}

// LogSink writes events to the process log. Used when there is no database.
type LogSink struct{}

func (LogSink) Handle(_ context.Context, ev Event) error {
	e := log.Info().
		Str("action", ev.Action).
		Str("entity", ev.Entity).
		Str("actor", ev.Actor)
	if ev.EntityID != nil {
		e = e.Uint("entity_id", *ev.EntityID)
	}
	if ev.Metadata != nil {
		e = e.Interface("metadata", ev.Metadata)
	}
	e.Msg("audit")
	return nil
}

// ListFilter narrows an audit log query. Zero values are ignored.
type ListFilter struct {
	Action string
	Entity string
	From   time.Time
	To     time.Time
	Page   int
	Limit  int
}

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// Normalize clamps the paging values.
func (f *ListFilter) Normalize() {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > maxListLimit {
		f.Limit = defaultListLimit
	}
}

// List returns one page of entries, newest first, and the total count.
func (l *Logger) List(ctx context.Context, f ListFilter) ([]models.AuditLog, int64, error) {
	f.Normalize()

	q := l.db.WithContext(ctx).Model(&models.AuditLog{})

	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}
	if !f.From.IsZero() {
		q = q.Where("created_at >= ?", f.From)
	}
	if !f.To.IsZero() {
		q = q.Where("created_at < ?", f.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	logs := make([]models.AuditLog, 0)
	if err := q.
		Order("created_at DESC").
		Limit(f.Limit).
		Offset((f.Page - 1) * f.Limit).
		Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}
