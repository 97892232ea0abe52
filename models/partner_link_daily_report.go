package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PartnerLinkDailyReport là bản ghi chi trả theo ngày cho partner, kèm cascade adviser/referrer
type PartnerLinkDailyReport struct {
	ID                       uint      `gorm:"primaryKey" json:"id"`
	BetenlaceDailyReportID   uint      `gorm:"not null;uniqueIndex:idx_partner_daily_bdr_pla" json:"betenlaceDailyReportId"`
	PartnerLinkAccumulatedID uint      `gorm:"not null;uniqueIndex:idx_partner_daily_bdr_pla" json:"partnerLinkAccumulatedId"`
	PartnerID                uint      `gorm:"not null;index" json:"partnerId"`
	Day                      time.Time `gorm:"type:date;not null;index" json:"day"`

	CurrencyFixedIncome     string          `gorm:"type:varchar(3)" json:"currencyFixedIncome"`
	CurrencyLocal           string          `gorm:"type:varchar(3)" json:"currencyLocal"`
	PercentageCPA           decimal.Decimal `gorm:"type:decimal(10,6);not null;default:0" json:"percentageCpa"`
	FixedIncome             decimal.Decimal `gorm:"type:decimal(20,6);not null;default:0" json:"fixedIncome"`
	FixedIncomeUnitary      decimal.Decimal `gorm:"type:decimal(20,6);not null;default:0" json:"fixedIncomeUnitary"`
	FixedIncomeLocal        decimal.Decimal `gorm:"type:decimal(20,6);not null;default:0" json:"fixedIncomeLocal"`
	FixedIncomeUnitaryLocal decimal.Decimal `gorm:"type:decimal(20,6);not null;default:0" json:"fixedIncomeUnitaryLocal"`
	FxBookLocal             decimal.Decimal `gorm:"type:decimal(20,10);not null;default:1" json:"fxBookLocal"`
	FxBookNetRevenueLocal   decimal.Decimal `gorm:"type:decimal(20,10);not null;default:1" json:"fxBookNetRevenueLocal"`
	FxPercentage            decimal.Decimal `gorm:"type:decimal(10,6);not null;default:1" json:"fxPercentage"`

	Deposit           decimal.Decimal `gorm:"type:decimal(20,6);not null;default:0" json:"deposit"`
	RegisteredCount   uint32          `gorm:"not null;default:0" json:"registeredCount"`
	CPACount          uint32          `gorm:"not null;default:0" json:"cpaCount"`
	FirstDepositCount uint32          `gorm:"not null;default:0" json:"firstDepositCount"`
	WageringCount     uint32          `gorm:"not null;default:0" json:"wageringCount"`

	Tracker                  decimal.Decimal `gorm:"type:decimal(10,6);not null;default:1" json:"tracker"`
	TrackerDeposit           decimal.Decimal `gorm:"type:decimal(10,6);not null;default:1" json:"trackerDeposit"`
	TrackerRegisteredCount   decimal.Decimal `gorm:"type:decimal(10,6);not null;default:1" json:"trackerRegisteredCount"`
	TrackerFirstDepositCount decimal.Decimal `gorm:"type:decimal(10,6);not null;default:1" json:"trackerFirstDepositCount"`
	TrackerWageringCount     decimal.Decimal `gorm:"type:decimal(10,6);not null;default:1" json:"trackerWageringCount"`

	AdviserID                    *uint               `gorm:"index" json:"adviserId"`
	FixedIncomeAdviserPercentage decimal.NullDecimal `gorm:"type:decimal(10,6)" json:"fixedIncomeAdviserPercentage"`
	NetRevenueAdviserPercentage  decimal.NullDecimal `gorm:"type:decimal(10,6)" json:"netRevenueAdviserPercentage"`
	FixedIncomeAdviser           decimal.NullDecimal `gorm:"type:decimal(20,6)" json:"fixedIncomeAdviser"`
	FixedIncomeAdviserLocal      decimal.NullDecimal `gorm:"type:decimal(20,6)" json:"fixedIncomeAdviserLocal"`
	NetRevenueAdviser            decimal.NullDecimal `gorm:"type:decimal(20,6)" json:"netRevenueAdviser"`
	NetRevenueAdviserLocal       decimal.NullDecimal `gorm:"type:decimal(20,6)" json:"netRevenueAdviserLocal"`

	ReferredBy                    *uint               `gorm:"index" json:"referredBy"`
	FixedIncomeReferredPercentage decimal.NullDecimal `gorm:"type:decimal(10,6)" json:"fixedIncomeReferredPercentage"`
	NetRevenueReferredPercentage  decimal.NullDecimal `gorm:"type:decimal(10,6)" json:"netRevenueReferredPercentage"`
	FixedIncomeReferred           decimal.NullDecimal `gorm:"type:decimal(20,6)" json:"fixedIncomeReferred"`
	FixedIncomeReferredLocal      decimal.NullDecimal `gorm:"type:decimal(20,6)" json:"fixedIncomeReferredLocal"`
	NetRevenueReferred            decimal.NullDecimal `gorm:"type:decimal(20,6)" json:"netRevenueReferred"`
	NetRevenueReferredLocal       decimal.NullDecimal `gorm:"type:decimal(20,6)" json:"netRevenueReferredLocal"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
