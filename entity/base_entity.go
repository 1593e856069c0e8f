package entity

import (
	"time"
)

// BaseEntity carries the generated primary key and server-assigned
// timestamps. ID is zero before persistence and immutable after.
type BaseEntity struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}
