package enrich

import (
	"net"
	"strconv"
	"strings"

	"github.com/oschwald/geoip2-golang"
)

// Geo carries the coarse location a beacon gets when the client-side
// ipapi lookup failed or was blocked. Values are pre-stringified to match
// the stored wire format.
type Geo struct {
	City      string
	Latitude  string
	Longitude string
}

type GeoIP struct {
	city *geoip2.Reader
}

// NewGeoIP opens the MaxMind city database at mmdbPath. An empty path
// returns (nil, nil): lookups on a nil *GeoIP simply report no match.
func NewGeoIP(mmdbPath string) (*GeoIP, error) {
	mmdbPath = strings.TrimSpace(mmdbPath)
	if mmdbPath == "" {
		return nil, nil
	}
	r, err := geoip2.Open(mmdbPath)
	if err != nil {
		return nil, err
	}
	return &GeoIP{city: r}, nil
}

func (g *GeoIP) Close() error {
	if g == nil || g.city == nil {
		return nil
	}
	return g.city.Close()
}

// Lookup resolves a caller IP to city and coordinates. The identity field
// of a beacon is often a hostname rather than an IP; those simply miss.
func (g *GeoIP) Lookup(ipStr string) (Geo, bool) {
	if g == nil || g.city == nil {
		return Geo{}, false
	}
	ip := net.ParseIP(strings.TrimSpace(ipStr))
	if ip == nil {
		return Geo{}, false
	}

	rec, err := g.city.City(ip)
	if err != nil {
		return Geo{}, false
	}

	out := Geo{}
	ok := false
	if rec.City.Names != nil {
		if name := strings.TrimSpace(rec.City.Names["en"]); name != "" {
			out.City = name
			ok = true
		}
	}
	if rec.Location.Latitude != 0 || rec.Location.Longitude != 0 {
		out.Latitude = strconv.FormatFloat(rec.Location.Latitude, 'f', 4, 64)
		out.Longitude = strconv.FormatFloat(rec.Location.Longitude, 'f', 4, 64)
		ok = true
	}
	return out, ok
}
