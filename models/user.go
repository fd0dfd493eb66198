package models

import (
	"time"

	"github.com/lib/pq"
)

type User struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
	Name        string        `gorm:"default:New User" json:"name"`
	Email       string        `gorm:"unique" json:"email"`
	Password    string        `json:"-"`
	PhoneNumber string        `gorm:"type:varchar(11)" json:"phoneNumber"`
	Role        int           `gorm:"default:0" json:"role"`
	Status      int           `gorm:"default:1" json:"status"`
	HospitalIDs pq.Int64Array `json:"hospitalIds" gorm:"type:integer[]"` // bệnh viện admin này quản lý
}
