package models

import "time"

// Report statuses. A report starts out pending and is moved by community
// votes to confirmed or denied.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusDenied    = "denied"
)

// Report represents a geotagged flood incident record. The ID is
// client-generated and immutable once the record has been written.
type Report struct {
	ID               string    `bson:"_id" json:"id" gorm:"primaryKey;column:id"`
	OwnerID          string    `bson:"ownerId" json:"ownerId" gorm:"column:owner_id"`
	Latitude         float64   `bson:"latitude" json:"latitude" gorm:"column:latitude;index:idx_reports_lat"`
	Longitude        float64   `bson:"longitude" json:"longitude" gorm:"column:longitude;index:idx_reports_lon"`
	Description      string    `bson:"description" json:"description" gorm:"column:description"`
	PhotoRefs        []string  `bson:"photoRefs,omitempty" json:"photoRefs,omitempty" gorm:"column:photo_refs;serializer:json"`
	Status           string    `bson:"status" json:"status" gorm:"column:status"`
	Severity         string    `bson:"severity" json:"severity" gorm:"column:severity"`
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt" gorm:"column:created_at"`
	UpdatedAt        time.Time `bson:"updatedAt" json:"updatedAt" gorm:"column:updated_at"`
	IsManualLocation bool      `bson:"isManualLocation" json:"isManualLocation" gorm:"column:is_manual_location"`
	ConfirmedCount   int       `bson:"confirmedCount" json:"confirmedCount" gorm:"column:confirmed_count"`
	DeniedCount      int       `bson:"deniedCount" json:"deniedCount" gorm:"column:denied_count"`
}

// TableName keeps the cache table name aligned with the remote collection.
func (Report) TableName() string { return "reports" }
