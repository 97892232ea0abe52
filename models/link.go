package models

import "time"

type Link struct {
	ID                       uint      `gorm:"primaryKey" json:"id"`
	CampaignID               uint      `gorm:"not null;uniqueIndex:idx_link_campaign_prom_code" json:"campaignId"`
	PromCode                 string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_link_campaign_prom_code" json:"promCode"`
	PartnerLinkAccumulatedID *uint     `gorm:"index" json:"partnerLinkAccumulatedId"`
	CreatedAt                time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt                time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	Campaign               *Campaign               `gorm:"foreignKey:CampaignID" json:"campaign,omitempty"`
	PartnerLinkAccumulated *PartnerLinkAccumulated `gorm:"foreignKey:PartnerLinkAccumulatedID" json:"partnerLinkAccumulated,omitempty"`
}
