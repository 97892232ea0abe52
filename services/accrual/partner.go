package accrual

import (
	"github.com/shopspring/decimal"

	"betenlace/builders"
	"betenlace/models"
)

// applyPartner cập nhật PLA (tháng) và PLDR (ngày) cho partner, kèm cascade adviser/referrer
func (e *Engine) applyPartner(link *LinkState, pla *models.PartnerLinkAccumulated, bdr *models.BetenlaceDailyReport, tracked TrackedData) {
	cpaCount := countDecimal(tracked.CPACount)

	unitary := e.campaign.FixedIncomeUnitary.Mul(pla.PercentageCPA)
	fixedIncome := cpaCount.Mul(unitary)
	fxFixedIncome := e.fx.Rate(e.campaign.CurrencyFixedIncome, pla.CurrencyLocal)
	fxCondition := e.fx.Rate(e.campaign.CurrencyCondition, pla.CurrencyLocal)
	unitaryLocal := unitary.Mul(fxFixedIncome)
	fixedIncomeLocal := cpaCount.Mul(unitaryLocal)

	pldr := link.PartnerDaily
	if pldr != nil {
		pla.CPACount = subCount(pla.CPACount, pldr.CPACount)
		pla.FixedIncome = clampZero(pla.FixedIncome.Sub(pldr.FixedIncome))
		pla.FixedIncomeLocal = clampZero(pla.FixedIncomeLocal.Sub(pldr.FixedIncomeLocal))
	}
	pla.CPACount += tracked.CPACount
	pla.FixedIncome = pla.FixedIncome.Add(fixedIncome)
	pla.FixedIncomeLocal = pla.FixedIncomeLocal.Add(fixedIncomeLocal)

	netRevenueBase := bdr.NetRevenue
	if e.settings.netRevenueFromShare() {
		netRevenueBase = bdr.RevenueShare
	}
	cascade := builders.Cascade{
		FixedIncome:        fixedIncome,
		NetRevenueBase:     netRevenueBase,
		FxFixedIncomeLocal: fxFixedIncome,
		FxConditionLocal:   fxCondition,
	}

	fxPercentage := decimal.NewFromInt(1)
	if snapshot := e.fx.Snapshot(); snapshot != nil {
		fxPercentage = snapshot.FxPercentage
	}

	pldr = builders.NewPartnerDailyBuilder(pldr).
		WithOwner(e.day, bdr, pla).
		WithFixedIncome(e.campaign.CurrencyFixedIncome, unitary, fixedIncome, unitaryLocal, fixedIncomeLocal).
		WithFx(fxFixedIncome, fxCondition, fxPercentage).
		WithTracked(tracked.Deposit, tracked.RegisteredCount, tracked.CPACount, tracked.FirstDepositCount, tracked.WageringCount).
		WithTrackers(pla).
		WithAdviser(pla.Partner, cascade).
		WithReferrer(pla.Partner, cascade).
		Build()
	link.PartnerDaily = pldr

	e.changes.TouchPartnerLink(pla)
	e.changes.TouchPartnerDaily(bdr, pldr)
}

// revokePartner gỡ phần PLDR đã ghi trong ngày khi PLA không còn hiệu lực ở lần upload lại
func (e *Engine) revokePartner(link *LinkState, bdr *models.BetenlaceDailyReport) {
	pla, pldr := link.PartnerLink, link.PartnerDaily
	if pla == nil || pldr == nil {
		return
	}

	pla.CPACount = subCount(pla.CPACount, pldr.CPACount)
	pla.FixedIncome = clampZero(pla.FixedIncome.Sub(pldr.FixedIncome))
	pla.FixedIncomeLocal = clampZero(pla.FixedIncomeLocal.Sub(pldr.FixedIncomeLocal))

	builders.NewPartnerDailyBuilder(pldr).
		WithFixedIncome(pldr.CurrencyFixedIncome, decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero).
		WithTracked(decimal.Zero, 0, 0, 0, 0).
		WithAdviser(nil, builders.Cascade{}).
		WithReferrer(nil, builders.Cascade{}).
		Build()
	e.logger.Warn("PLA %d hết hiệu lực, gỡ PLDR ngày của link %d", pla.ID, link.Link.ID)

	e.changes.TouchPartnerLink(pla)
	e.changes.TouchPartnerDaily(bdr, pldr)
}
