package models

type PaymentMethod struct {
	ID     uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name   string `gorm:"unique;not null" json:"nome"`
	Active bool   `gorm:"default:true" json:"ativo"`
}
