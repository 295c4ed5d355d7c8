package model

import (
	"time"

	"github.com/google/uuid"
)

// VisitEvent is one tracked page-visit beacon. Geolocation, time-spent and
// page-view counters are stored as strings to keep the wire contract of the
// hosted collection this service replaced (numbers serialized as text).
type VisitEvent struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	ScriptID  string    `gorm:"type:varchar(64);not null;index:idx_visit_events_script_created,priority:1;column:script_id" json:"scriptId"`
	UserID    string    `gorm:"type:varchar(64);not null;column:user_id" json:"userId"`
	IPAddress string    `gorm:"type:varchar(255);not null;column:ip_address" json:"ipAddress"`
	// Timestamp is the client-reported ISO-8601 string, stored verbatim.
	// Display-date bucketing uses this; ordering and range filters use CreatedAt.
	Timestamp string    `gorm:"type:varchar(64);not null;column:timestamp" json:"timestamp"`
	UserAgent string    `gorm:"type:text;not null;column:user_agent" json:"userAgent"`
	TimeSpent string    `gorm:"type:varchar(32);not null;default:'0';column:time_spent" json:"timeSpent"`
	City      string    `gorm:"type:varchar(255);not null;default:'Unknown';column:city" json:"city"`
	Latitude  string    `gorm:"type:varchar(32);not null;default:'0';column:latitude" json:"latitude"`
	Longitude string    `gorm:"type:varchar(32);not null;default:'0';column:longitude" json:"longitude"`
	PageViews string    `gorm:"type:varchar(32);not null;default:'1';column:page_views" json:"pageViews"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime;index:idx_visit_events_script_created,priority:2,sort:desc;column:created_at" json:"createdAt"`
}

func (VisitEvent) TableName() string { return "visit_events" }

// TrackingScript is a site-owner-issued script record. Immutable after
// creation; its scriptId is embedded in every VisitEvent the snippet emits.
type TrackingScript struct {
	ScriptID   string    `gorm:"type:varchar(64);primaryKey;column:script_id" json:"scriptId"`
	UserID     string    `gorm:"type:varchar(64);not null;index;column:user_id" json:"userId"`
	ScriptName string    `gorm:"type:varchar(200);not null;column:script_name" json:"scriptName"`
	ScriptURL  string    `gorm:"type:text;not null;column:script_url" json:"scriptUrl"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime;column:created_at" json:"createdAt"`
}

func (TrackingScript) TableName() string { return "tracking_scripts" }
