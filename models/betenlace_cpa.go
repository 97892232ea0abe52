package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BetenlaceCPA là tổng tháng (phía nhà cái) của một link
type BetenlaceCPA struct {
	ID                uint            `gorm:"primaryKey" json:"id"`
	LinkID            uint            `gorm:"not null;uniqueIndex" json:"linkId"`
	Deposit           decimal.Decimal `gorm:"type:decimal(20,6);not null;default:0" json:"deposit"`
	Stake             decimal.Decimal `gorm:"type:decimal(20,6);not null;default:0" json:"stake"`
	NetRevenue        decimal.Decimal `gorm:"type:decimal(20,6);not null;default:0" json:"netRevenue"`
	RevenueShare      decimal.Decimal `gorm:"type:decimal(20,6);not null;default:0" json:"revenueShare"`
	FixedIncome       decimal.Decimal `gorm:"type:decimal(20,6);not null;default:0" json:"fixedIncome"`
	RegisteredCount   uint32          `gorm:"not null;default:0" json:"registeredCount"`
	CPACount          uint32          `gorm:"not null;default:0" json:"cpaCount"`
	FirstDepositCount uint32          `gorm:"not null;default:0" json:"firstDepositCount"`
	WageringCount     uint32          `gorm:"not null;default:0" json:"wageringCount"`
	CreatedAt         time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (BetenlaceCPA) TableName() string {
	return "betenlace_cpa"
}
