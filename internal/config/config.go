package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	HTTPAddr      string
	PublicBaseURL string
	PostgresURL   string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Requests per minute per client IP. TrackRatePerMin is the tighter
	// ceiling applied to the beacon and snippet-serving paths on top of the
	// general one. Both are ignored when RedisAddr is empty.
	RatePerMin      int
	TrackRatePerMin int

	RequestTimeout time.Duration

	GeoIPCityMMDB string

	MaintenanceMode bool
}

func FromEnv() (Config, error) {
	cfg := Config{
		HTTPAddr:        getenvDefault("HTTP_ADDR", ":8080"),
		PublicBaseURL:   strings.TrimRight(getenvDefault("PUBLIC_BASE_URL", "http://localhost:8080"), "/"),
		PostgresURL:     strings.TrimSpace(os.Getenv("POSTGRES_URL")),
		RedisAddr:       strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:         parseIntDefault(getenvDefault("REDIS_DB", "0"), 0),
		RatePerMin:      parseIntDefault(getenvDefault("RATE_LIMIT_PER_MIN", "120"), 120),
		TrackRatePerMin: parseIntDefault(getenvDefault("TRACK_RATE_LIMIT_PER_MIN", "60"), 60),
		RequestTimeout:  parseDurationDefault(getenvDefault("REQUEST_TIMEOUT", "10s"), 10*time.Second),
		GeoIPCityMMDB:   strings.TrimSpace(os.Getenv("GEOIP_CITY_MMDB")),
		MaintenanceMode: parseBoolDefault(getenvDefault("MAINTENANCE_MODE", "false"), false),
	}

	if cfg.PostgresURL == "" {
		return Config{}, errors.New("POSTGRES_URL is required")
	}
	if _, err := url.Parse(cfg.PublicBaseURL); err != nil {
		return Config{}, errors.New("invalid PUBLIC_BASE_URL")
	}
	if cfg.RatePerMin <= 0 {
		cfg.RatePerMin = 120
	}
	if cfg.TrackRatePerMin <= 0 {
		cfg.TrackRatePerMin = 60
	}
	return cfg, nil
}

func getenvDefault(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value
}

func parseBoolDefault(value string, defaultValue bool) bool {
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return defaultValue
	}
	return parsed
}

func parseIntDefault(value string, defaultValue int) int {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return defaultValue
	}
	return parsed
}

func parseDurationDefault(value string, defaultValue time.Duration) time.Duration {
	parsed, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return defaultValue
	}
	return parsed
}

func (c Config) String() string {
	return fmt.Sprintf(
		"http=%s base=%s pg=%s redis=%s rate=%d/%d timeout=%s geoip=%v maintenance=%v",
		c.HTTPAddr,
		c.PublicBaseURL,
		redactPostgresURL(c.PostgresURL),
		redactRedis(c.RedisAddr),
		c.RatePerMin,
		c.TrackRatePerMin,
		c.RequestTimeout,
		c.GeoIPCityMMDB != "",
		c.MaintenanceMode,
	)
}

func redactPostgresURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "<none>"
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "<set>"
	}
	user := ""
	if u.User != nil {
		user = u.User.Username()
	}
	host := u.Host
	dbName := strings.TrimPrefix(u.Path, "/")
	if user == "" && host == "" && dbName == "" {
		return "<set>"
	}
	if user == "" {
		user = "?"
	}
	if host == "" {
		host = "?"
	}
	if dbName == "" {
		dbName = "?"
	}
	return fmt.Sprintf("%s@%s/%s", user, host, dbName)
}

func redactRedis(addr string) string {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return "<none>"
	}
	return addr
}
