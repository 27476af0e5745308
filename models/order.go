package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	// Order statuses (kitchen flow)
	OrderStatusPending        OrderStatus = "pending"          // Order placed, awaiting confirmation
	OrderStatusConfirmed      OrderStatus = "confirmed"        // Accepted by the store
	OrderStatusPreparing      OrderStatus = "preparing"        // In the kitchen
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery" // Courier on the way
	OrderStatusReadyForPickup OrderStatus = "ready_for_pickup" // Waiting at the counter
	OrderStatusCompleted      OrderStatus = "completed"        // Delivered or picked up
	OrderStatusCancelled      OrderStatus = "cancelled"        // Cancelled by store or customer
)

type Order struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	OrderRef        string          `gorm:"uniqueIndex" json:"referencia"`
	CustomerName    string          `gorm:"not null" json:"nomeCliente"`
	CustomerPhone   string          `gorm:"not null" json:"telefoneCliente"`
	Pickup          bool            `json:"retirada"`
	Address         Address         `gorm:"embedded;embeddedPrefix:addr_" json:"endereco"`
	PaymentMethodID uint            `json:"formaPagamentoId"`
	PaymentMethod   PaymentMethod   `gorm:"foreignKey:PaymentMethodID" json:"formaPagamento"`
	DeliveryFee     decimal.Decimal `gorm:"type:decimal(10,2)" json:"taxaEntrega"`
	Total           decimal.Decimal `gorm:"type:decimal(10,2)" json:"valorTotal"`
	Note            string          `json:"observacao"`
	Status          OrderStatus     `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"itens"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type OrderItem struct {
	ID          uint                 `gorm:"primaryKey" json:"id"`
	OrderID     uint                 `gorm:"index" json:"-"`
	ProductID   uint                 `json:"produtoId"`
	ProductName string               `json:"nomeProduto"`
	UnitPrice   decimal.Decimal      `gorm:"type:decimal(10,2)" json:"valorUnitario"`
	Quantity    int                  `json:"quantidade"`
	Note        string               `json:"observacaoItem"`
	Selections  []OrderItemSelection `gorm:"foreignKey:OrderItemID;constraint:OnDelete:CASCADE" json:"subProdutos"`
}

// OrderItemSelection is one chosen option recorded against an order line,
// with the option name and price frozen at order time.
type OrderItemSelection struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	OrderItemID uint            `gorm:"index" json:"-"`
	OptionID    uint            `json:"subProdutoId"`
	OptionName  string          `json:"nome"`
	ExtraPrice  decimal.Decimal `gorm:"type:decimal(10,2)" json:"valorAdicional"`
	Quantity    int             `json:"quantidade"`
}

// Address is embedded in Order; delivery orders require the core fields.
type Address struct {
	Street     string `json:"rua"`
	Number     string `json:"numero"`
	District   string `json:"bairro"`
	City       string `json:"cidade"`
	ZipCode    string `json:"cep"`
	Complement string `json:"complemento"`
}
