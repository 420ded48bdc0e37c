package audit

import (
	"context"
	"time"

	"github.com/BruksfildServices01/customer-service/internal/models"
)

const (
	DefaultPageLimit = 50
	MaxPageLimit     = 200
)

// Filter narrows a listing to one actor. Zero-valued optional fields are ignored.
type Filter struct {
	CustomerID uint
	Action     string
	Entity     string
	From       *time.Time
	// To is inclusive of the whole day.
	To *time.Time

	Page  int
	Limit int
}

func (f *Filter) normalize() {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > MaxPageLimit {
		f.Limit = DefaultPageLimit
	}
}

// List returns the newest entries first together with the filtered total.
func (l *Logger) List(ctx context.Context, f Filter) ([]models.AuditLog, int64, error) {
	f.normalize()

	// --------------------------------------------------
	// Query base (sempre restrita ao cliente)
	// --------------------------------------------------
	q := l.db.WithContext(ctx).
		Model(&models.AuditLog{}).
		Where("customer_id = ?", f.CustomerID)

	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at < ?", f.To.Add(24*time.Hour))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Order("id DESC").
		Limit(f.Limit).
		Offset((f.Page - 1) * f.Limit).
		Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}
