package constants

// Campaign status
const (
	CampaignStatusInactive = 0
	CampaignStatusActive   = 1
)

// PartnerLinkAccumulated status
const (
	PartnerLinkStatusByCampaign = 0
	PartnerLinkStatusInactive   = 1
	PartnerLinkStatusActive     = 2
)

// Loại ingestor
const (
	IngestorKindAccount  = "account"
	IngestorKindNetrefer = "netrefer"
)

// Nguồn tính net revenue cho adviser/referrer
const (
	NetRevenueSourceNetRevenue   = "net_revenue"
	NetRevenueSourceRevenueShare = "revenue_share"
)

const (
	DateLayout                = "2006-01-02"
	DefaultOperatorTimezone   = "America/Bogota"
	DefaultMinCPATrackerDay   = 2
	DefaultBulkBatchSize      = 500
	LegacyCurrencyFixedIncome = "COP"
)

// Role trong claim userinfo.role của token
const (
	RoleSuperAdmin = 1
	RoleAdmin      = 2
)
