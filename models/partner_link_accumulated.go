package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PartnerLinkAccumulated là tích lũy theo tháng của cặp partner-link
type PartnerLinkAccumulated struct {
	ID                       uint            `gorm:"primaryKey" json:"id"`
	PartnerID                uint            `gorm:"not null;index" json:"partnerId"`
	Status                   int             `gorm:"default:0" json:"status"`
	PercentageCPA            decimal.Decimal `gorm:"type:decimal(10,6);not null;default:0" json:"percentageCpa"`
	CurrencyLocal            string          `gorm:"type:varchar(3);not null" json:"currencyLocal"`
	CPACount                 uint32          `gorm:"not null;default:0" json:"cpaCount"`
	FixedIncome              decimal.Decimal `gorm:"type:decimal(20,6);not null;default:0" json:"fixedIncome"`
	FixedIncomeLocal         decimal.Decimal `gorm:"type:decimal(20,6);not null;default:0" json:"fixedIncomeLocal"`
	Tracker                  decimal.Decimal `gorm:"type:decimal(10,6);not null;default:1" json:"tracker"`
	TrackerDeposit           decimal.Decimal `gorm:"type:decimal(10,6);not null;default:1" json:"trackerDeposit"`
	TrackerRegisteredCount   decimal.Decimal `gorm:"type:decimal(10,6);not null;default:1" json:"trackerRegisteredCount"`
	TrackerFirstDepositCount decimal.Decimal `gorm:"type:decimal(10,6);not null;default:1" json:"trackerFirstDepositCount"`
	TrackerWageringCount     decimal.Decimal `gorm:"type:decimal(10,6);not null;default:1" json:"trackerWageringCount"`
	CreatedAt                time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt                time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`

	Partner *Partner `gorm:"foreignKey:PartnerID" json:"partner,omitempty"`
}

func (PartnerLinkAccumulated) TableName() string {
	return "partner_link_accumulated"
}
