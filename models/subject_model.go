package models

type Subject struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;not null;unique" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}
