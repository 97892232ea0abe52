package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type AccountDailyReport struct {
	ID                  uint            `gorm:"primaryKey" json:"id"`
	AccountReportID     uint            `gorm:"not null;uniqueIndex:idx_account_daily_account_day" json:"accountReportId"`
	Day                 time.Time       `gorm:"type:date;not null;uniqueIndex:idx_account_daily_account_day" json:"day"`
	Deposit             decimal.Decimal `gorm:"type:decimal(20,6);not null;default:0" json:"deposit"`
	Stake               decimal.Decimal `gorm:"type:decimal(20,6);not null;default:0" json:"stake"`
	NetRevenue          decimal.Decimal `gorm:"type:decimal(20,6);not null;default:0" json:"netRevenue"`
	RevenueShare        decimal.Decimal `gorm:"type:decimal(20,6);not null;default:0" json:"revenueShare"`
	IsCPABetenlace      bool            `gorm:"default:false" json:"isCpaBetenlace"`
	IsCPAPartner        bool            `gorm:"default:false" json:"isCpaPartner"`
	IsFirstDepositCount bool            `gorm:"default:false" json:"isFirstDepositCount"`
	CreatedAt           time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt           time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}
