package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StoreConfig is a single-row table holding the store configuration, split
// into one typed section per settings domain.
type StoreConfig struct {
	ID         uint               `gorm:"primaryKey" json:"id"`
	Appearance AppearanceSettings `gorm:"embedded;embeddedPrefix:appearance_" json:"aparencia"`
	Fiscal     FiscalSettings     `gorm:"embedded;embeddedPrefix:fiscal_" json:"fiscal"`
	Printing   PrintingSettings   `gorm:"embedded;embeddedPrefix:printing_" json:"impressao"`
	Messaging  MessagingSettings  `gorm:"embedded;embeddedPrefix:messaging_" json:"mensagens"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

type AppearanceSettings struct {
	StoreName    string `json:"nomeFantasia"`
	LogoURL      string `json:"logo"`
	PrimaryColor string `json:"corPrimaria"`
	AccentColor  string `json:"corDestaque"`
}

type FiscalSettings struct {
	CNPJ          string          `json:"cnpj"`
	CorporateName string          `json:"razaoSocial"`
	StoreAddress  string          `json:"enderecoLoja"`
	DeliveryFee   decimal.Decimal `gorm:"type:decimal(10,2)" json:"taxaEntrega"`
	MinimumOrder  decimal.Decimal `gorm:"type:decimal(10,2)" json:"pedidoMinimo"`
}

type PrintingSettings struct {
	Enabled     bool   `json:"habilitada"`
	PrinterName string `json:"impressora"`
	Copies      int    `gorm:"default:1" json:"vias"`
	AutoPrint   bool   `json:"automatica"`
}

type MessagingSettings struct {
	WhatsAppEnabled bool   `json:"whatsappHabilitado"`
	WhatsAppNumber  string `json:"numeroWhatsapp"`
	OrderTemplate   string `json:"modeloMensagem"`
}

// OpeningHour is one weekday row of the store schedule (0 = Sunday).
type OpeningHour struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Weekday int    `gorm:"uniqueIndex;check:weekday >= 0 AND weekday <= 6" json:"diaSemana"`
	Opens   string `json:"abre"`
	Closes  string `json:"fecha"`
	Closed  bool   `json:"fechado"`
}

// LoadStoreConfig fetches the singleton config row, creating it on first use.
func LoadStoreConfig(db *gorm.DB) (*StoreConfig, error) {
	var cfg StoreConfig
	if err := db.FirstOrCreate(&cfg, StoreConfig{ID: 1}).Error; err != nil {
		return nil, err
	}
	return &cfg, nil
}
