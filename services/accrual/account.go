package accrual

import (
	"betenlace/constants"
	"betenlace/dto"
	"betenlace/models"
	"betenlace/utils"
)

// ApplyAccount cập nhật AR/ADR từ một dòng account và xét điều kiện CPA.
// Upload lại cùng ngày thay thế giá trị cũ, không cộng dồn.
func (e *Engine) ApplyAccount(link *LinkState, acc *AccountState, row dto.AccountRow) {
	ar := acc.Account
	adr := acc.Daily

	deposit, stake, netRevenue, revenueShare := row.Deposit, row.Stake, row.NetRevenue, row.RevenueShare
	if adr == nil {
		adr = &models.AccountDailyReport{Day: e.day}
		acc.Daily = adr
	} else {
		deposit = deposit.Sub(adr.Deposit)
		stake = stake.Sub(adr.Stake)
		netRevenue = netRevenue.Sub(adr.NetRevenue)
		revenueShare = revenueShare.Sub(adr.RevenueShare)
	}

	ar.Deposit = ar.Deposit.Add(deposit)
	ar.Stake = ar.Stake.Add(stake)
	ar.NetRevenue = ar.NetRevenue.Add(netRevenue)
	ar.RevenueShare = ar.RevenueShare.Add(revenueShare)
	if !ar.IsQualified() || utils.SameDay(ar.CPAAt, e.day) {
		ar.RevenueShareCPA = ar.RevenueShareCPA.Add(revenueShare)
	}

	adr.Deposit = row.Deposit
	adr.Stake = row.Stake
	adr.NetRevenue = row.NetRevenue
	adr.RevenueShare = row.RevenueShare

	if row.RegisteredAt != nil {
		ar.RegisteredAt = row.RegisteredAt
	}
	if row.FirstDepositAt != nil {
		ar.FirstDepositAt = row.FirstDepositAt
	}
	adr.IsFirstDepositCount = ar.FirstDepositAt != nil

	e.qualify(link, ar, adr, row)
	e.checkRevenueSharePercentage(row)

	e.changes.TouchAccount(ar)
	e.changes.TouchAccountDaily(ar, adr)
}

func (e *Engine) qualify(link *LinkState, ar *models.AccountReport, adr *models.AccountDailyReport, row dto.AccountRow) {
	switch {
	case row.CPAAt != nil && row.CPAAt.Before(LegacyCutoff):
		cpaAt := utils.DateOnly(*row.CPAAt)
		ar.CPABetenlace = 1
		ar.CPAPartner = 0
		ar.CPAAt = &cpaAt
		ar.FixedIncome = LegacyFixedIncome
		ar.CurrencyFixedIncome = constants.LegacyCurrencyFixedIncome
		ar.PartnerLinkAccumulatedID = nil
		adr.IsCPABetenlace = false
		adr.IsCPAPartner = false

	case !ar.IsQualified() && ar.RevenueShareCPA.GreaterThanOrEqual(e.settings.CPACondition):
		day := e.day
		ar.CPABetenlace = 1
		ar.CPAAt = &day
		ar.FixedIncome = e.campaign.FixedIncomeUnitary
		ar.CurrencyFixedIncome = e.campaign.CurrencyFixedIncome
		e.markQualified(link, ar, adr)

	case ar.IsQualified() && utils.SameDay(ar.CPAAt, e.day):
		// đã đạt CPA trong chính ngày này ở lần upload trước
		e.markQualified(link, ar, adr)
	}
}

func (e *Engine) markQualified(link *LinkState, ar *models.AccountReport, adr *models.AccountDailyReport) {
	adr.IsCPABetenlace = true
	if pla := e.partnerLink(link); pla != nil {
		id := pla.ID
		ar.PartnerLinkAccumulatedID = &id
		ar.CPAPartner = 1
		adr.IsCPAPartner = true
	} else {
		ar.PartnerLinkAccumulatedID = nil
		ar.CPAPartner = 0
		adr.IsCPAPartner = false
	}

	promCode := link.Link.PromCode
	if _, ok := e.queues[promCode]; !ok {
		e.queueOrder = append(e.queueOrder, promCode)
	}
	e.queues[promCode] = append(e.queues[promCode], &Qualification{Account: ar, Daily: adr})
}

// checkRevenueSharePercentage chỉ cảnh báo, không chặn dòng
func (e *Engine) checkRevenueSharePercentage(row dto.AccountRow) {
	if row.NetRevenue.IsZero() || row.RevenueShare.IsZero() {
		return
	}
	got := row.RevenueShare.Div(row.NetRevenue).Round(2)
	want := e.settings.RevenueSharePercentage.Round(2)
	if !got.Equal(want) {
		e.logger.Error("revenue share %s/%s = %s khác %s (prom_code %s, punter %s, dòng %d)",
			row.RevenueShare, row.NetRevenue, got, want, row.PromCode, row.PunterID, row.Line)
	}
}
