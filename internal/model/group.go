package model

import (
	"time"
)

// Group holds the group-specific columns for a group entity. GUID references
// the entity row of type "group".
type Group struct {
	GUID        int64     `gorm:"primaryKey" json:"guid"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `gorm:"size:500" json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName maps Group to its table.
func (Group) TableName() string {
	return "groups"
}
