package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swgui "github.com/swaggest/swgui/v3"
	"gorm.io/gorm"

	"github.com/huamanraj/visitLogger-backend/internal/config"
	"github.com/huamanraj/visitLogger-backend/internal/enrich"
	"github.com/huamanraj/visitLogger-backend/internal/ingest"
	"github.com/huamanraj/visitLogger-backend/internal/obs"
	"github.com/huamanraj/visitLogger-backend/internal/openapi"
	"github.com/huamanraj/visitLogger-backend/internal/query"
	"github.com/huamanraj/visitLogger-backend/internal/ratelimit"
)

const homePage = `<!doctype html>
<html>
<head><title>visitLogger</title></head>
<body>
<h1>visitLogger</h1>
<p>Visitor analytics collection service.</p>
<ul>
<li><code>POST /script</code> register a site and get an embeddable snippet URL</li>
<li><code>GET /track.js</code> the tracking snippet</li>
<li><code>POST /track</code> beacon ingestion</li>
<li><code>GET /analytics/:scriptId</code> paginated visit listing</li>
<li><code>GET /analytics/graph/:scriptId</code> daily visit series</li>
<li><a href="/docs/">API docs</a></li>
</ul>
</body>
</html>`

// New builds the HTTP server with every route wired. The limiter may be
// nil, in which case no ceiling is enforced.
func New(cfg config.Config, db *gorm.DB, limiter *ratelimit.Limiter, geoip *enrich.GeoIP, stats *obs.Stats) *http.Server {
	started := time.Now()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(securityHeadersMiddleware())
	router.Use(corsMiddleware())
	router.Use(maintenanceMiddleware(cfg.MaintenanceMode))
	router.Use(timeoutMiddleware(cfg.RequestTimeout))
	router.Use(observabilityMiddleware(stats))

	router.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(homePage))
	})
	router.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/api/status", query.StatusHandler(db, cfg.MaintenanceMode, started, stats))

	router.GET("/openapi.json", func(c *gin.Context) { c.JSON(http.StatusOK, openapi.Spec()) })
	router.GET("/docs/*any", gin.WrapH(swgui.New("visitLogger API", "/openapi.json", "/docs")))

	// The beacon and snippet paths carry the tighter ceiling since every
	// page load on every tracked site hits them.
	trackLimit := rateLimitMiddleware(limiter, stats, "track", cfg.TrackRatePerMin)
	apiLimit := rateLimitMiddleware(limiter, stats, "api", cfg.RatePerMin)

	router.POST("/track", trackLimit, ingest.TrackVisitHandler(db, geoip, stats))
	router.GET("/track.js", trackLimit, ingest.SnippetHandler(cfg.PublicBaseURL))

	router.POST("/script", apiLimit, ingest.IssueScriptHandler(db, cfg.PublicBaseURL, stats))
	router.GET("/analytics/:scriptId", apiLimit, query.AnalyticsHandler(db))
	router.GET("/analytics/graph/:scriptId", apiLimit, query.GraphHandler(db))

	return &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
