package models

import "time"

// User is a back-office account. Storefront shoppers are anonymous and never
// get a row here.
type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"not null" json:"nome"`
	Email        string    `gorm:"unique;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	RoleID       uint      `json:"roleId"`
	Role         Role      `gorm:"foreignKey:RoleID" json:"role"`
	Active       bool      `gorm:"default:true" json:"ativo"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Role struct {
	ID             uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string `gorm:"unique;not null" json:"nome"`
	ManageCatalog  bool   `json:"gerenciaCardapio"`
	ManageOrders   bool   `json:"gerenciaPedidos"`
	ManageSettings bool   `json:"gerenciaConfig"`
	ManageUsers    bool   `json:"gerenciaUsuarios"`
}
