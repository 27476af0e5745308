package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"not null" json:"nome"`
	Description string          `json:"descricao"`
	BasePrice   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"valorProduto"`
	Image       string          `json:"image"`
	Active      bool            `gorm:"default:true" json:"ativo"`
	Position    int             `gorm:"default:0" json:"ordem"`
	CategoryID  uint            `gorm:"index" json:"categoriaId"`
	Groups      []OptionGroup   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"subProdutos"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`
}

// OptionGroup is a set of choices attached to a product, bounded by a
// minimum and maximum number of simultaneous selections.
type OptionGroup struct {
	ID         uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID  uint     `gorm:"index" json:"produtoId"`
	Name       string   `gorm:"not null" json:"nome"`
	MinChoices int      `gorm:"default:0" json:"minEscolhas"`
	MaxChoices int      `gorm:"default:1" json:"maxEscolhas"`
	Position   int      `gorm:"default:0" json:"ordem"`
	Options    []Option `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE" json:"opcoes"`
}

type Option struct {
	ID         uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	GroupID    uint            `gorm:"index" json:"subProdutoId"`
	Name       string          `gorm:"not null" json:"nome"`
	ExtraPrice decimal.Decimal `gorm:"type:decimal(10,2)" json:"valorAdicional"`
	Active     bool            `gorm:"default:true" json:"ativo"`
}
