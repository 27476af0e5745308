package models

import "time"

type Category struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"unique;not null" json:"nome"`
	Position  int       `gorm:"default:0" json:"ordem"`
	Active    bool      `gorm:"default:true" json:"ativo"`
	Products  []Product `gorm:"foreignKey:CategoryID" json:"produtos,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
