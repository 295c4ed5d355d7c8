package ingest

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/huamanraj/visitLogger-backend/internal/enrich"
	"github.com/huamanraj/visitLogger-backend/internal/model"
	"github.com/huamanraj/visitLogger-backend/internal/obs"
	"github.com/huamanraj/visitLogger-backend/internal/store"
	"gorm.io/gorm"
)

// TrackVisitHandler ingests one visit beacon: validate, normalize, assign
// an id, insert. One row per call; duplicate beacons become duplicate rows.
func TrackVisitHandler(db *gorm.DB, geoip *enrich.GeoIP, stats *obs.Stats) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload TrackPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := payload.Validate(); err != nil {
			respondError(c, http.StatusBadRequest, "Missing required fields")
			return
		}

		row := payload.Normalize()
		row.ID = uuid.New()
		fillMissingGeo(&row, geoip, c.ClientIP())

		if err := store.InsertVisitEvent(c.Request.Context(), db, &row); err != nil {
			stats.ObserveVisitStored(err)
			log.Printf("track: insert visit event: %v", err)
			respondError(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		stats.ObserveVisitStored(nil)

		c.JSON(http.StatusOK, gin.H{"message": "Tracking data saved successfully"})
	}
}

// fillMissingGeo backfills geolocation from the caller address when the
// snippet's own ipapi lookup came back empty. The beacon's ipAddress field
// is usually a hostname, so the lookup uses the transport-level IP instead.
func fillMissingGeo(row *model.VisitEvent, geoip *enrich.GeoIP, clientIP string) {
	missingCity := row.City == "Unknown"
	missingCoords := row.Latitude == "0" && row.Longitude == "0"
	if !missingCity && !missingCoords {
		return
	}
	geo, ok := geoip.Lookup(clientIP)
	if !ok {
		return
	}
	if missingCity && geo.City != "" {
		row.City = geo.City
	}
	if missingCoords && geo.Latitude != "" {
		row.Latitude = geo.Latitude
		row.Longitude = geo.Longitude
	}
}

type scriptRequest struct {
	UserID     string `json:"userId"`
	ScriptName string `json:"scriptName"`
}

// IssueScriptHandler creates a TrackingScript and returns the snippet URL
// the owner embeds. Names are not unique; every call issues a fresh id.
func IssueScriptHandler(db *gorm.DB, baseURL string, stats *obs.Stats) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req scriptRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid request body")
			return
		}
		req.UserID = strings.TrimSpace(req.UserID)
		req.ScriptName = strings.TrimSpace(req.ScriptName)
		if req.UserID == "" || req.ScriptName == "" {
			respondError(c, http.StatusBadRequest, "userId and scriptName are required")
			return
		}

		scriptID := uuid.NewString()
		scriptURL := SnippetURL(baseURL, scriptID, req.UserID)

		row := model.TrackingScript{
			ScriptID:   scriptID,
			UserID:     req.UserID,
			ScriptName: req.ScriptName,
			ScriptURL:  scriptURL,
		}
		if err := store.InsertTrackingScript(c.Request.Context(), db, &row); err != nil {
			log.Printf("script: insert tracking script: %v", err)
			respondError(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		stats.ObserveScriptIssued()

		c.JSON(http.StatusOK, gin.H{
			"scriptUrl":  scriptURL,
			"scriptId":   scriptID,
			"scriptName": req.ScriptName,
			"userId":     req.UserID,
		})
	}
}

func respondError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}
