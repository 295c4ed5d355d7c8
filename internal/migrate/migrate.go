package migrate

import (
	"context"

	"github.com/huamanraj/visitLogger-backend/internal/model"
	"gorm.io/gorm"
)

func AutoMigrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(&model.VisitEvent{}, &model.TrackingScript{})
}
