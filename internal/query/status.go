package query

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/huamanraj/visitLogger-backend/internal/obs"
	"github.com/huamanraj/visitLogger-backend/internal/store"
)

type SystemStatus string

const (
	SystemStatusRunning     SystemStatus = "running"
	SystemStatusMaintenance SystemStatus = "maintenance"
	SystemStatusException   SystemStatus = "exception"
)

// StatusHandler reports service health plus the in-process counters. The
// database check is a bounded count so a hung connection turns into an
// "exception" status instead of a hung endpoint.
func StatusHandler(db *gorm.DB, maintenanceMode bool, started time.Time, stats *obs.Stats) gin.HandlerFunc {
	return func(c *gin.Context) {
		body := gin.H{
			"uptime": time.Since(started).Round(time.Second).String(),
			"stats":  stats.Snapshot(),
		}

		if maintenanceMode {
			body["status"] = SystemStatusMaintenance
			body["message"] = "maintenance"
			c.JSON(http.StatusOK, body)
			return
		}
		if db == nil {
			body["status"] = SystemStatusException
			body["message"] = "database not configured"
			c.JSON(http.StatusOK, body)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		n, err := store.CountVisitEvents(ctx, db)
		if err != nil {
			body["status"] = SystemStatusException
			body["message"] = "database unavailable"
			c.JSON(http.StatusOK, body)
			return
		}

		body["status"] = SystemStatusRunning
		body["visitsTotal"] = n
		c.JSON(http.StatusOK, body)
	}
}
