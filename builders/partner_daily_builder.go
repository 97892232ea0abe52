package builders

import (
	"time"

	"github.com/shopspring/decimal"

	"betenlace/models"
)

// PartnerDailyBuilder điền PartnerLinkDailyReport theo từng bước
type PartnerDailyBuilder struct {
	report *models.PartnerLinkDailyReport
}

// NewPartnerDailyBuilder nhận bản ghi có sẵn (upload lại) hoặc nil để tạo mới
func NewPartnerDailyBuilder(existing *models.PartnerLinkDailyReport) *PartnerDailyBuilder {
	if existing == nil {
		existing = &models.PartnerLinkDailyReport{}
	}
	return &PartnerDailyBuilder{report: existing}
}

// WithOwner gắn ngày, BDR và PLA
func (b *PartnerDailyBuilder) WithOwner(day time.Time, bdr *models.BetenlaceDailyReport, pla *models.PartnerLinkAccumulated) *PartnerDailyBuilder {
	b.report.Day = day
	b.report.BetenlaceDailyReportID = bdr.ID
	b.report.PartnerLinkAccumulatedID = pla.ID
	b.report.PartnerID = pla.PartnerID
	b.report.CurrencyLocal = pla.CurrencyLocal
	b.report.PercentageCPA = pla.PercentageCPA
	return b
}

// WithFixedIncome thêm thu nhập cố định (tiền tệ nhà cái và tiền tệ partner)
func (b *PartnerDailyBuilder) WithFixedIncome(currency string, unitary, total, unitaryLocal, totalLocal decimal.Decimal) *PartnerDailyBuilder {
	b.report.CurrencyFixedIncome = currency
	b.report.FixedIncomeUnitary = unitary
	b.report.FixedIncome = total
	b.report.FixedIncomeUnitaryLocal = unitaryLocal
	b.report.FixedIncomeLocal = totalLocal
	return b
}

// WithFx lưu snapshot tỷ giá đã dùng
func (b *PartnerDailyBuilder) WithFx(bookLocal, netRevenueLocal, percentage decimal.Decimal) *PartnerDailyBuilder {
	b.report.FxBookLocal = bookLocal
	b.report.FxBookNetRevenueLocal = netRevenueLocal
	b.report.FxPercentage = percentage
	return b
}

// WithTracked thêm số liệu sau tracker
func (b *PartnerDailyBuilder) WithTracked(deposit decimal.Decimal, registered, cpa, firstDeposit, wagering uint32) *PartnerDailyBuilder {
	b.report.Deposit = deposit
	b.report.RegisteredCount = registered
	b.report.CPACount = cpa
	b.report.FirstDepositCount = firstDeposit
	b.report.WageringCount = wagering
	return b
}

// WithTrackers chụp lại 5 tracker của PLA tại thời điểm ingest
func (b *PartnerDailyBuilder) WithTrackers(pla *models.PartnerLinkAccumulated) *PartnerDailyBuilder {
	b.report.Tracker = pla.Tracker
	b.report.TrackerDeposit = pla.TrackerDeposit
	b.report.TrackerRegisteredCount = pla.TrackerRegisteredCount
	b.report.TrackerFirstDepositCount = pla.TrackerFirstDepositCount
	b.report.TrackerWageringCount = pla.TrackerWageringCount
	return b
}

// Cascade là đầu vào chung cho adviser và referrer
type Cascade struct {
	FixedIncome        decimal.Decimal
	NetRevenueBase     decimal.Decimal
	FxFixedIncomeLocal decimal.Decimal
	FxConditionLocal   decimal.Decimal
}

type cascadeResult struct {
	fixedIncomePercentage decimal.NullDecimal
	netRevenuePercentage  decimal.NullDecimal
	fixedIncome           decimal.NullDecimal
	fixedIncomeLocal      decimal.NullDecimal
	netRevenue            decimal.NullDecimal
	netRevenueLocal       decimal.NullDecimal
}

func computeCascade(beneficiary *uint, fixedIncomePct, netRevenuePct decimal.NullDecimal, in Cascade) cascadeResult {
	var res cascadeResult
	if beneficiary == nil {
		return res
	}
	res.fixedIncomePercentage = fixedIncomePct
	res.netRevenuePercentage = netRevenuePct
	if fixedIncomePct.Valid {
		amount := in.FixedIncome.Mul(fixedIncomePct.Decimal)
		res.fixedIncome = decimal.NewNullDecimal(amount)
		res.fixedIncomeLocal = decimal.NewNullDecimal(amount.Mul(in.FxFixedIncomeLocal))
	}
	if netRevenuePct.Valid {
		amount := in.NetRevenueBase.Mul(netRevenuePct.Decimal)
		res.netRevenue = decimal.NewNullDecimal(amount)
		res.netRevenueLocal = decimal.NewNullDecimal(amount.Mul(in.FxConditionLocal))
	}
	return res
}

// WithAdviser tính cascade cho adviser; thiếu adviser hoặc phần trăm thì field tương ứng là NULL
func (b *PartnerDailyBuilder) WithAdviser(partner *models.Partner, in Cascade) *PartnerDailyBuilder {
	var res cascadeResult
	var adviserID *uint
	if partner != nil {
		adviserID = partner.AdviserID
		res = computeCascade(adviserID, partner.FixedIncomeAdviserPercentage, partner.NetRevenueAdviserPercentage, in)
	}
	b.report.AdviserID = adviserID
	b.report.FixedIncomeAdviserPercentage = res.fixedIncomePercentage
	b.report.NetRevenueAdviserPercentage = res.netRevenuePercentage
	b.report.FixedIncomeAdviser = res.fixedIncome
	b.report.FixedIncomeAdviserLocal = res.fixedIncomeLocal
	b.report.NetRevenueAdviser = res.netRevenue
	b.report.NetRevenueAdviserLocal = res.netRevenueLocal
	return b
}

// WithReferrer tính cascade cho người giới thiệu
func (b *PartnerDailyBuilder) WithReferrer(partner *models.Partner, in Cascade) *PartnerDailyBuilder {
	var res cascadeResult
	var referredBy *uint
	if partner != nil {
		referredBy = partner.ReferredBy
		res = computeCascade(referredBy, partner.FixedIncomeReferredPercentage, partner.NetRevenueReferredPercentage, in)
	}
	b.report.ReferredBy = referredBy
	b.report.FixedIncomeReferredPercentage = res.fixedIncomePercentage
	b.report.NetRevenueReferredPercentage = res.netRevenuePercentage
	b.report.FixedIncomeReferred = res.fixedIncome
	b.report.FixedIncomeReferredLocal = res.fixedIncomeLocal
	b.report.NetRevenueReferred = res.netRevenue
	b.report.NetRevenueReferredLocal = res.netRevenueLocal
	return b
}

// Build trả về bản ghi hoàn chỉnh
func (b *PartnerDailyBuilder) Build() *models.PartnerLinkDailyReport {
	return b.report
}
