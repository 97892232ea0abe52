package models

import (
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"betenlace/constants"
)

type Campaign struct {
	ID                  uint            `gorm:"primaryKey" json:"id"`
	Bookmaker           string          `gorm:"type:varchar(100);not null;uniqueIndex:idx_campaign_bookmaker_title" json:"bookmaker"`
	Title               string          `gorm:"type:varchar(100);not null;uniqueIndex:idx_campaign_bookmaker_title" json:"title"`
	Aliases             pq.StringArray  `gorm:"type:text[]" json:"aliases"`
	CurrencyCondition   string          `gorm:"type:varchar(3);not null" json:"currencyCondition"`
	CurrencyFixedIncome string          `gorm:"type:varchar(3);not null" json:"currencyFixedIncome"`
	FixedIncomeUnitary  decimal.Decimal `gorm:"type:decimal(20,6);not null;default:0" json:"fixedIncomeUnitary"`
	Status              int             `gorm:"default:1" json:"status"`
	LastInactiveAt      *time.Time      `json:"lastInactiveAt"`
	CreatedAt           time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt           time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Name là tên hiển thị "<bookmaker> <title>", ví dụ "yajuego 50"
func (c *Campaign) Name() string {
	return strings.TrimSpace(c.Bookmaker + " " + c.Title)
}

func (c *Campaign) IsActive() bool {
	return c.Status == constants.CampaignStatusActive
}
