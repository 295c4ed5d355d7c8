package store

import (
	"context"
	"strings"

	"github.com/huamanraj/visitLogger-backend/internal/model"
	"gorm.io/gorm"
)

// InsertTrackingScript persists a freshly issued script record. scriptId is
// generated by the caller and is the primary key; script names are not
// deduplicated, so the same owner can issue many scripts under one name.
func InsertTrackingScript(ctx context.Context, db *gorm.DB, row *model.TrackingScript) error {
	if db == nil || row == nil {
		return gorm.ErrInvalidData
	}
	if strings.TrimSpace(row.ScriptID) == "" {
		return ErrMissingScriptID
	}
	return db.WithContext(ctx).Create(row).Error
}
