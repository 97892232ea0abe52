package accrual

import (
	"time"

	"betenlace/constants"
	"betenlace/models"
)

// IsEffective cho biết PLA có hiệu lực trong ngày day hay không.
// ACTIVE luôn hiệu lực; BY_CAMPAIGN theo trạng thái campaign, hoặc day trước last_inactive_at.
func IsEffective(pla *models.PartnerLinkAccumulated, campaign *models.Campaign, day time.Time) bool {
	if pla == nil {
		return false
	}
	switch pla.Status {
	case constants.PartnerLinkStatusActive:
		return true
	case constants.PartnerLinkStatusByCampaign:
		if campaign.IsActive() {
			return true
		}
		return campaign.LastInactiveAt != nil && day.Before(*campaign.LastInactiveAt)
	default:
		return false
	}
}
