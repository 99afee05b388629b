package model

import (
	"time"
)

// User holds the user-specific columns for a user entity. GUID references
// the entity row of type "user".
type User struct {
	GUID      int64     `gorm:"primaryKey" json:"guid"`
	Username  string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Name      string    `gorm:"size:100" json:"name"`
	Email     string    `gorm:"size:100" json:"email"`
	Avatar    string    `gorm:"size:255" json:"avatar"`
	Banned    bool      `gorm:"default:false" json:"banned"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName maps User to its table.
func (User) TableName() string {
	return "users"
}
