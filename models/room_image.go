package models

import "time"

type RoomImage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	RoomID    uint      `json:"roomId" gorm:"index"`
	URL       string    `json:"url"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
