package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountReport là tổng tích lũy trọn đời của một người chơi dưới một link
type AccountReport struct {
	ID                       uint            `gorm:"primaryKey" json:"id"`
	LinkID                   uint            `gorm:"not null;uniqueIndex:idx_account_link_punter" json:"linkId"`
	PunterID                 string          `gorm:"type:varchar(100);not null;uniqueIndex:idx_account_link_punter" json:"punterId"`
	PartnerLinkAccumulatedID *uint           `gorm:"index" json:"partnerLinkAccumulatedId"`
	Deposit                  decimal.Decimal `gorm:"type:decimal(20,6);not null;default:0" json:"deposit"`
	Stake                    decimal.Decimal `gorm:"type:decimal(20,6);not null;default:0" json:"stake"`
	NetRevenue               decimal.Decimal `gorm:"type:decimal(20,6);not null;default:0" json:"netRevenue"`
	RevenueShare             decimal.Decimal `gorm:"type:decimal(20,6);not null;default:0" json:"revenueShare"`
	RevenueShareCPA          decimal.Decimal `gorm:"type:decimal(20,6);not null;default:0" json:"revenueShareCpa"`
	FixedIncome              decimal.Decimal `gorm:"type:decimal(20,6);not null;default:0" json:"fixedIncome"`
	CurrencyFixedIncome      string          `gorm:"type:varchar(3)" json:"currencyFixedIncome"`
	CPABetenlace             int             `gorm:"not null;default:0" json:"cpaBetenlace"`
	CPAPartner               int             `gorm:"not null;default:0" json:"cpaPartner"`
	CPAAt                    *time.Time      `gorm:"type:date" json:"cpaAt"`
	RegisteredAt             *time.Time      `gorm:"type:date" json:"registeredAt"`
	FirstDepositAt           *time.Time      `gorm:"type:date" json:"firstDepositAt"`
	CreatedAt                time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt                time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (a *AccountReport) IsQualified() bool {
	return a.CPABetenlace == 1
}
