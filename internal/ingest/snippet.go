package ingest

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

const snippetContentType = "application/javascript; charset=utf-8"

// SnippetURL is the hosted .js endpoint a site owner embeds, parameterized
// so the snippet can self-report both ids on every beacon.
func SnippetURL(baseURL, scriptID, userID string) string {
	return fmt.Sprintf("%s/track.js?scriptId=%s&userId=%s",
		strings.TrimRight(baseURL, "/"),
		url.QueryEscape(scriptID),
		url.QueryEscape(userID),
	)
}

// SnippetHandler serves the client tracking script. The snippet measures
// time on page, best-effort geolocates via ipapi.co, and reports a beacon
// on unload; unload can fire more than once and the server keeps every
// beacon. Missing query params degrade to a JS comment rather than JSON
// so a broken embed stays silent in the page.
func SnippetHandler(baseURL string) gin.HandlerFunc {
	trackURL := strings.TrimRight(baseURL, "/") + "/track"
	return func(c *gin.Context) {
		scriptID := strings.TrimSpace(c.Query("scriptId"))
		userID := strings.TrimSpace(c.Query("userId"))
		if scriptID == "" || userID == "" {
			c.Data(http.StatusBadRequest, snippetContentType, []byte("// Missing scriptId or userId\n"))
			return
		}

		// %q keeps injected values inside their JS string literals.
		body := fmt.Sprintf(snippetTemplate, scriptID, userID, trackURL)
		c.Data(http.StatusOK, snippetContentType, []byte(body))
	}
}

const snippetTemplate = `(function() {
  const scriptId = %[1]q;
  const userId = %[2]q;
  const trackUrl = %[3]q;
  const ipAddress = window.location.hostname;
  const startTime = Date.now();
  let locationData = { city: "Unknown", latitude: "0", longitude: "0" };
  let pageViews = 1;

  async function initializeLocation() {
    try {
      const response = await fetch("https://ipapi.co/json/");
      const data = await response.json();
      locationData = {
        city: data.city || "Unknown",
        latitude: data.latitude ? data.latitude.toString() : "0",
        longitude: data.longitude ? data.longitude.toString() : "0"
      };
    } catch (error) {
      console.error("Error fetching location:", error);
    }
  }

  initializeLocation();

  window.addEventListener("beforeunload", function() {
    const endTime = Date.now();
    const timeSpent = ((endTime - startTime) / 1000).toFixed(2);

    const data = {
      scriptId,
      userId,
      ipAddress,
      timestamp: new Date().toISOString(),
      userAgent: navigator.userAgent,
      timeSpent: timeSpent.toString(),
      city: locationData.city,
      latitude: locationData.latitude,
      longitude: locationData.longitude,
      pageViews: pageViews.toString()
    };

    navigator.sendBeacon(trackUrl, JSON.stringify(data));
  });
})();
`
