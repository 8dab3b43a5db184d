package models

import "time"

type Student struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	FirstName   string `gorm:"size:100;not null" json:"first_name"`
	LastName    string `gorm:"size:100;not null" json:"last_name"`
	PhoneNumber string `gorm:"size:20" json:"phone_number"`
	Email       string `gorm:"size:255;not null;unique" json:"email"`
	Password    string `gorm:"not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
