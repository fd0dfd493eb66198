package models

import (
	"time"
)

type Hospital struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"unique;not null"`
	Address   string    `json:"address"`
	Photo     string    `json:"photo"` // URL ảnh trên Cloudinary
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Rooms     []Room    `json:"rooms,omitempty" gorm:"foreignKey:HospitalID"`
}
