package models

import (
	"time"
)

type Room struct {
	RoomId      uint        `json:"id" gorm:"primaryKey"`
	HospitalID  uint        `json:"hospitalId" gorm:"index"`
	RoomType    string      `json:"roomType" gorm:"index"`
	Price       int         `json:"price"`
	Description string      `json:"description"`
	IsBooked    bool        `json:"isBooked" gorm:"default:false"` // cờ hiển thị, lịch phòng thật nằm ở bookings
	Avatar      string      `json:"avatar"`
	CreatedAt   time.Time   `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time   `gorm:"autoUpdateTime" json:"updatedAt"`
	Hospital    *Hospital   `json:"hospital,omitempty" gorm:"foreignKey:HospitalID"`
	Images      []RoomImage `json:"images,omitempty" gorm:"foreignKey:RoomID"`
	Bookings    []Booking   `json:"-" gorm:"foreignKey:RoomID"`
}
