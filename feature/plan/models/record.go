package models

import (
	"encoding/json"
	"time"
)

// PlanRecord is one stored plan run.
type PlanRecord struct {
	ID            string          `gorm:"column:id;primaryKey;size:36" json:"id"`
	Network       string          `gorm:"column:network;size:32;index" json:"network"`
	Live          bool            `gorm:"column:live" json:"live"`
	AccessControl int             `gorm:"column:access_control" json:"access_control"`
	Ownership     int             `gorm:"column:ownership" json:"ownership"`
	PriceFeeds    int             `gorm:"column:price_feeds" json:"price_feeds"`
	Total         int             `gorm:"column:total" json:"total"`
	Payload       json.RawMessage `gorm:"column:payload;type:longtext" json:"payload"`
	CreatedAt     time.Time       `gorm:"column:created_at;index" json:"created_at"`
}

// TableName overrides the table name.
func (PlanRecord) TableName() string {
	return "plan_records"
}

// PlanRecordColumns are the columns the store reads and writes.
var PlanRecordColumns = []string{
	"id", "network", "live", "access_control", "ownership", "price_feeds", "total", "payload", "created_at",
}
