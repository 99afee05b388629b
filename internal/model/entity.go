package model

import (
	"time"

	"gorm.io/gorm"
)

// Entity types.
const (
	TypeSite   = "site"
	TypeUser   = "user"
	TypeGroup  = "group"
	TypeObject = "object"
)

// Entity is the common row every domain object shares. Users, groups and
// content objects all hang off an entity guid.
type Entity struct {
	GUID          int64          `gorm:"primaryKey;autoIncrement" json:"guid"`
	Type          string         `gorm:"size:16;not null;index" json:"type"`
	Subtype       string         `gorm:"size:32;index" json:"subtype"`
	OwnerGUID     int64          `gorm:"index" json:"ownerGuid"`
	ContainerGUID int64          `gorm:"index" json:"containerGuid"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName maps Entity to its table.
func (Entity) TableName() string {
	return "entities"
}
