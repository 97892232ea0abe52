package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type BetenlaceDailyReport struct {
	ID                  uint            `gorm:"primaryKey" json:"id"`
	LinkID              uint            `gorm:"not null;uniqueIndex:idx_betenlace_daily_link_day" json:"linkId"`
	BetenlaceCPAID      uint            `gorm:"column:betenlace_cpa_id;not null;index" json:"betenlaceCpaId"`
	Day                 time.Time       `gorm:"type:date;not null;uniqueIndex:idx_betenlace_daily_link_day" json:"day"`
	CurrencyCondition   string          `gorm:"type:varchar(3)" json:"currencyCondition"`
	CurrencyFixedIncome string          `gorm:"type:varchar(3)" json:"currencyFixedIncome"`
	Deposit             decimal.Decimal `gorm:"type:decimal(20,6);not null;default:0" json:"deposit"`
	Stake               decimal.Decimal `gorm:"type:decimal(20,6);not null;default:0" json:"stake"`
	NetRevenue          decimal.Decimal `gorm:"type:decimal(20,6);not null;default:0" json:"netRevenue"`
	RevenueShare        decimal.Decimal `gorm:"type:decimal(20,6);not null;default:0" json:"revenueShare"`
	FixedIncome         decimal.Decimal `gorm:"type:decimal(20,6);not null;default:0" json:"fixedIncome"`
	FixedIncomeUnitary  decimal.Decimal `gorm:"type:decimal(20,6);not null;default:0" json:"fixedIncomeUnitary"`
	RegisteredCount     uint32          `gorm:"not null;default:0" json:"registeredCount"`
	CPACount            *uint32         `json:"cpaCount"`
	FirstDepositCount   uint32          `gorm:"not null;default:0" json:"firstDepositCount"`
	WageringCount       uint32          `gorm:"not null;default:0" json:"wageringCount"`
	FxPartnerID         *uint           `gorm:"index" json:"fxPartnerId"`
	CreatedAt           time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt           time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}

// CPACountValue trả về cpa_count, 0 nếu NULL
func (r *BetenlaceDailyReport) CPACountValue() uint32 {
	if r.CPACount == nil {
		return 0
	}
	return *r.CPACount
}
