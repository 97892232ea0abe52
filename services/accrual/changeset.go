package accrual

import "betenlace/models"

// PendingAccountDaily giữ ADR cùng AR chủ; AR mới chỉ có ID sau khi insert
type PendingAccountDaily struct {
	Account *models.AccountReport
	Daily   *models.AccountDailyReport
}

// PendingPartnerDaily giữ PLDR cùng BDR chủ
type PendingPartnerDaily struct {
	DailyReport  *models.BetenlaceDailyReport
	PartnerDaily *models.PartnerLinkDailyReport
}

// ChangeSet gom mọi bản ghi bị tạo/sửa trong một lần upload, ghi một lần ở cuối
type ChangeSet struct {
	Accounts       []*models.AccountReport
	AccountDailies []PendingAccountDaily
	BetenlaceCPAs  []*models.BetenlaceCPA
	DailyReports   []*models.BetenlaceDailyReport
	PartnerLinks   []*models.PartnerLinkAccumulated
	PartnerDailies []PendingPartnerDaily

	seen map[interface{}]bool
}

func NewChangeSet() *ChangeSet {
	return &ChangeSet{seen: make(map[interface{}]bool)}
}

func (c *ChangeSet) first(ptr interface{}) bool {
	if c.seen[ptr] {
		return false
	}
	c.seen[ptr] = true
	return true
}

func (c *ChangeSet) TouchAccount(ar *models.AccountReport) {
	if c.first(ar) {
		c.Accounts = append(c.Accounts, ar)
	}
}

func (c *ChangeSet) TouchAccountDaily(ar *models.AccountReport, adr *models.AccountDailyReport) {
	if c.first(adr) {
		c.AccountDailies = append(c.AccountDailies, PendingAccountDaily{Account: ar, Daily: adr})
	}
}

func (c *ChangeSet) TouchBetenlaceCPA(bc *models.BetenlaceCPA) {
	if c.first(bc) {
		c.BetenlaceCPAs = append(c.BetenlaceCPAs, bc)
	}
}

func (c *ChangeSet) TouchDailyReport(bdr *models.BetenlaceDailyReport) {
	if c.first(bdr) {
		c.DailyReports = append(c.DailyReports, bdr)
	}
}

func (c *ChangeSet) TouchPartnerLink(pla *models.PartnerLinkAccumulated) {
	if c.first(pla) {
		c.PartnerLinks = append(c.PartnerLinks, pla)
	}
}

func (c *ChangeSet) TouchPartnerDaily(bdr *models.BetenlaceDailyReport, pldr *models.PartnerLinkDailyReport) {
	if c.first(pldr) {
		c.PartnerDailies = append(c.PartnerDailies, PendingPartnerDaily{DailyReport: bdr, PartnerDaily: pldr})
	}
}

// IsEmpty cho biết không có gì cần ghi
func (c *ChangeSet) IsEmpty() bool {
	return len(c.Accounts) == 0 && len(c.AccountDailies) == 0 && len(c.BetenlaceCPAs) == 0 &&
		len(c.DailyReports) == 0 && len(c.PartnerLinks) == 0 && len(c.PartnerDailies) == 0
}
