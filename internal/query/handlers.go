package query

import (
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/huamanraj/visitLogger-backend/internal/store"
	"gorm.io/gorm"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
	// maxPage keeps page*limit far from integer overflow for absurd
	// query values.
	maxPage     = 1000000
	defaultDays = 5
	maxDays     = 90
)

// AnalyticsHandler serves the paginated reverse-chronological listing for
// one script. An unknown scriptId is an empty page with total 0, not a 404:
// a freshly issued script with no traffic yet is a normal state for the
// dashboard.
func AnalyticsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		scriptID := strings.TrimSpace(c.Param("scriptId"))
		if scriptID == "" {
			respondError(c, http.StatusBadRequest, "scriptId is required")
			return
		}
		page := parsePositive(c.Query("page"), 1, maxPage)
		limit := parsePositive(c.Query("limit"), defaultPageSize, maxPageSize)
		offset := (page - 1) * limit

		ctx := c.Request.Context()
		rows, err := store.ListVisitEventsByScript(ctx, db, scriptID, offset, limit)
		if err != nil {
			log.Printf("analytics: list visit events: %v", err)
			respondError(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		total, err := store.CountVisitEventsByScript(ctx, db, scriptID)
		if err != nil {
			log.Printf("analytics: count visit events: %v", err)
			respondError(c, http.StatusInternalServerError, "Internal server error")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"documents": rows,
			"total":     total,
			"page":      page,
			"limit":     limit,
		})
	}
}

// GraphHandler serves the daily visit-count series for the last N days.
// Rows enter the window by server creation time; each row buckets by its
// client-reported date, and days without visits appear with count 0.
func GraphHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		scriptID := strings.TrimSpace(c.Param("scriptId"))
		if scriptID == "" {
			respondError(c, http.StatusBadRequest, "scriptId is required")
			return
		}
		days := parsePositive(c.Query("days"), defaultDays, maxDays)

		now := time.Now().UTC()
		counts, err := store.ClientDayCountsSince(c.Request.Context(), db, scriptID, WindowStart(now, days))
		if err != nil {
			log.Printf("graph: count visits by day: %v", err)
			respondError(c, http.StatusInternalServerError, "Internal server error")
			return
		}

		c.JSON(http.StatusOK, gin.H{"graphData": DailySeries(counts, days, now)})
	}
}

func parsePositive(s string, def, max int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return def
	}
	if max > 0 && n > max {
		return max
	}
	return n
}

func respondError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}
