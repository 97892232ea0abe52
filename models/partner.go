package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Partner chỉ chứa các field pipeline cần; hồ sơ đầy đủ do hệ thống khác quản lý
type Partner struct {
	ID                            uint                `gorm:"primaryKey" json:"id"`
	Name                          string              `gorm:"type:varchar(150)" json:"name"`
	AdviserID                     *uint               `gorm:"index" json:"adviserId"`
	ReferredBy                    *uint               `gorm:"index" json:"referredBy"`
	FixedIncomeAdviserPercentage  decimal.NullDecimal `gorm:"type:decimal(10,6)" json:"fixedIncomeAdviserPercentage"`
	NetRevenueAdviserPercentage   decimal.NullDecimal `gorm:"type:decimal(10,6)" json:"netRevenueAdviserPercentage"`
	FixedIncomeReferredPercentage decimal.NullDecimal `gorm:"type:decimal(10,6)" json:"fixedIncomeReferredPercentage"`
	NetRevenueReferredPercentage  decimal.NullDecimal `gorm:"type:decimal(10,6)" json:"netRevenueReferredPercentage"`
	CreatedAt                     time.Time           `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt                     time.Time           `gorm:"autoUpdateTime" json:"updatedAt"`
}
