package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/huamanraj/visitLogger-backend/internal/identity"
	"github.com/huamanraj/visitLogger-backend/internal/model"
	"gorm.io/gorm"
)

var ErrMissingScriptID = errors.New("scriptId required")

// InsertVisitEvent appends one visit-event record. Records are append-only:
// nothing in the service updates or deletes them, and repeated identical
// beacons (double unload fires) intentionally produce separate rows.
func InsertVisitEvent(ctx context.Context, db *gorm.DB, row *model.VisitEvent) error {
	if db == nil || row == nil {
		return gorm.ErrInvalidData
	}
	if strings.TrimSpace(row.ScriptID) == "" {
		return ErrMissingScriptID
	}
	return db.WithContext(ctx).Create(row).Error
}

// ListVisitEventsByScript returns one page of events for a script, most
// recently created first. The id tie-break keeps paging stable when rows
// share a creation timestamp.
func ListVisitEventsByScript(ctx context.Context, db *gorm.DB, scriptID string, offset, limit int) ([]model.VisitEvent, error) {
	if db == nil {
		return nil, gorm.ErrInvalidData
	}
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = 10
	}
	var rows []model.VisitEvent
	err := db.WithContext(ctx).
		Where("script_id = ?", scriptID).
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CountVisitEvents returns the total number of stored events across all
// scripts. The status endpoint uses it as a cheap liveness probe.
func CountVisitEvents(ctx context.Context, db *gorm.DB) (int64, error) {
	if db == nil {
		return 0, gorm.ErrInvalidData
	}
	var n int64
	err := db.WithContext(ctx).Model(&model.VisitEvent{}).Count(&n).Error
	return n, err
}

func CountVisitEventsByScript(ctx context.Context, db *gorm.DB, scriptID string) (int64, error) {
	if db == nil {
		return 0, gorm.ErrInvalidData
	}
	var n int64
	err := db.WithContext(ctx).
		Model(&model.VisitEvent{}).
		Where("script_id = ?", scriptID).
		Count(&n).Error
	return n, err
}

// ClientDayCountsSince counts a script's events per calendar day. Rows are
// filtered by the server-assigned creation time, but each row lands in the
// bucket of its client-reported timestamp, so the two can disagree when the
// client clock is off. Days with no events are simply absent from the map.
func ClientDayCountsSince(ctx context.Context, db *gorm.DB, scriptID string, since time.Time) (map[string]int64, error) {
	if db == nil {
		return nil, gorm.ErrInvalidData
	}
	type row struct {
		Timestamp string
		CreatedAt time.Time
	}
	var rows []row
	err := db.WithContext(ctx).
		Model(&model.VisitEvent{}).
		Select("timestamp, created_at").
		Where("script_id = ? AND created_at >= ?", scriptID, since.UTC()).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[identity.ClientDay(r.Timestamp, r.CreatedAt)]++
	}
	return counts, nil
}
